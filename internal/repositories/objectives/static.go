package objectives

import (
	"context"
	"sort"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
)

const (
	errStrategyIDEmpty = "strategy ID cannot be empty"
	errSchemeIDEmpty   = "scheme ID cannot be empty"
)

// Gaining Grounds season strategies. One is declared per game.
var strategies = map[string]*malifaux.Strategy{
	"plant_explosives": {
		ID:          "plant_explosives",
		Name:        "Plant Explosives",
		Description: "Drop bomb markers on the enemy half and guard them",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers:     3,
			malifaux.CapMobility:          2,
			malifaux.CapSurvivability:     2,
			malifaux.CapActivationControl: 1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner, malifaux.RoleSupport},
	},
	"boundary_dispute": {
		ID:          "boundary_dispute",
		Name:        "Boundary Dispute",
		Description: "Kick strategy markers into enemy territory",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSurvivability: 3,
			malifaux.CapMelee:         2,
			malifaux.CapMobility:      1,
		},
		FavorsRoles:     []string{malifaux.RoleBeater, malifaux.RoleControl},
		RequiresKilling: true,
	},
	"recover_evidence": {
		ID:          "recover_evidence",
		Name:        "Recover Evidence",
		Description: "Collect markers dropped by killed enemy models",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapDamage:        2,
			malifaux.CapMobility:      2,
			malifaux.CapSchemeMarkers: 1,
			malifaux.CapKidnap:        1,
		},
		FavorsRoles:     []string{malifaux.RoleBeater, malifaux.RoleSchemeRunner},
		RequiresKilling: true,
	},
	"informants": {
		ID:          "informants",
		Name:        "Informants",
		Description: "Control strategy markers across the board",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSurvivability:     3,
			malifaux.CapSpread:            2,
			malifaux.CapActivationControl: 2,
		},
		FavorsRoles: []string{malifaux.RoleControl, malifaux.RoleSupport},
	},
}

// Gaining Grounds season schemes. BranchesTo encodes the season's
// branching tree: scoring a scheme opens its branches for the next pick.
var schemes = map[string]*malifaux.Scheme{
	"breakthrough": {
		ID:          "breakthrough",
		Name:        "Breakthrough",
		Description: "Scheme markers in the enemy deployment zone",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers: 3,
			malifaux.CapMobility:      3,
			malifaux.CapSurvivability: 1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner},
		BranchesTo:  []string{"assassinate", "public_demonstration", "frame_job"},
	},
	"harness_the_leyline": {
		ID:          "harness_the_leyline",
		Name:        "Harness the Leyline",
		Description: "Scheme markers on the centerline, 6 inches apart",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers: 2,
			malifaux.CapSpread:        2,
			malifaux.CapBoardControl:  1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner, malifaux.RoleControl},
		BranchesTo:  []string{"assassinate", "scout_the_rooftops", "grave_robbing"},
	},
	"search_the_area": {
		ID:          "search_the_area",
		Name:        "Search the Area",
		Description: "Three scheme markers near terrain on the enemy half",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers: 3,
			malifaux.CapMobility:      2,
			malifaux.CapInteract:      1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner},
		BranchesTo:  []string{"breakthrough", "frame_job", "harness_the_leyline"},
	},
	"detonate_charges": {
		ID:          "detonate_charges",
		Name:        "Detonate Charges",
		Description: "Scheme markers within 2 inches of enemies",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers: 2,
			malifaux.CapMobility:      2,
			malifaux.CapSurvivability: 1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner},
		BranchesTo:  []string{"grave_robbing", "runic_binding", "take_the_highground"},
	},
	"runic_binding": {
		ID:          "runic_binding",
		Name:        "Runic Binding",
		Description: "Triangle of three markers with an enemy inside",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers: 3,
			malifaux.CapSpread:        3,
			malifaux.CapPositioning:   1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner},
		BranchesTo:  []string{"leave_your_mark", "take_the_highground", "ensnare"},
	},
	"reshape_the_land": {
		ID:          "reshape_the_land",
		Name:        "Reshape the Land",
		Description: "Four to five friendly markers on the enemy half",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapMarkerCreation: 3,
			malifaux.CapMobility:       2,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner, malifaux.RoleSummoner},
		BranchesTo:  []string{"search_the_area", "breakthrough", "public_demonstration"},
	},
	"leave_your_mark": {
		ID:          "leave_your_mark",
		Name:        "Leave Your Mark",
		Description: "More scheme markers at the centerpoint than the enemy",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers: 2,
			malifaux.CapBoardControl:  2,
			malifaux.CapDontMindMe:    1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner, malifaux.RoleControl},
		BranchesTo:  []string{"take_the_highground", "reshape_the_land", "make_it_look_like_an_accident"},
	},
	"scout_the_rooftops": {
		ID:          "scout_the_rooftops",
		Name:        "Scout the Rooftops",
		Description: "Scheme markers at elevation on different terrain pieces",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapMobility:      3,
			malifaux.CapFlight:        2,
			malifaux.CapSchemeMarkers: 2,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner},
		BranchesTo:  []string{"detonate_charges", "grave_robbing", "leave_your_mark"},
	},
	"take_the_highground": {
		ID:          "take_the_highground",
		Name:        "Take the Highground",
		Description: "Control two to three height-2+ terrain pieces",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapMobility:      2,
			malifaux.CapFlight:        1,
			malifaux.CapSurvivability: 2,
			malifaux.CapSpread:        2,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner, malifaux.RoleControl},
		BranchesTo:  []string{"make_it_look_like_an_accident", "ensnare", "search_the_area"},
	},
	"make_it_look_like_an_accident": {
		ID:          "make_it_look_like_an_accident",
		Name:        "Make It Look Like an Accident",
		Description: "Enemy takes falling damage, then kill or half them",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapPushPull: 3,
			malifaux.CapDamage:   1,
		},
		FavorsRoles:     []string{malifaux.RoleControl, malifaux.RoleBeater},
		BranchesTo:      []string{"ensnare", "reshape_the_land", "breakthrough"},
		RequiresKilling: true,
	},
	"assassinate": {
		ID:          "assassinate",
		Name:        "Assassinate",
		Description: "Reduce a unique enemy to half, then kill it",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapDamage:      3,
			malifaux.CapMobility:    2,
			malifaux.CapAlphaStrike: 2,
		},
		FavorsRoles:     []string{malifaux.RoleBeater},
		BranchesTo:      []string{"scout_the_rooftops", "detonate_charges", "runic_binding"},
		RequiresKilling: true,
	},
	"grave_robbing": {
		ID:          "grave_robbing",
		Name:        "Grave Robbing",
		Description: "Kill near a chosen marker type, collect the remains",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapDamage:            2,
			malifaux.CapMarkerInteraction: 2,
			malifaux.CapCorpseMarkers:     1,
		},
		FavorsRoles:     []string{malifaux.RoleBeater, malifaux.RoleSummoner},
		BranchesTo:      []string{"runic_binding", "leave_your_mark", "make_it_look_like_an_accident"},
		RequiresKilling: true,
	},
	"frame_job": {
		ID:          "frame_job",
		Name:        "Frame Job",
		Description: "A friendly model takes damage from an enemy on their half",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSurvivability: 2,
			malifaux.CapMobility:      2,
			malifaux.CapSchemeMarkers: 1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner},
		BranchesTo:  []string{"public_demonstration", "harness_the_leyline", "scout_the_rooftops"},
	},
	"ensnare": {
		ID:          "ensnare",
		Name:        "Ensnare",
		Description: "Two scheme markers within 2 inches of a unique enemy",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapSchemeMarkers:    2,
			malifaux.CapEngagement:       2,
			malifaux.CapCheapActivations: 1,
		},
		FavorsRoles: []string{malifaux.RoleSchemeRunner, malifaux.RoleControl},
		BranchesTo:  []string{"reshape_the_land", "search_the_area", "frame_job"},
	},
	"public_demonstration": {
		ID:          "public_demonstration",
		Name:        "Public Demonstration",
		Description: "Two or more friendly minions engaging a unique enemy",
		Requirements: map[malifaux.Capability]int{
			malifaux.CapMinionHeavy:   3,
			malifaux.CapEngagement:    2,
			malifaux.CapSurvivability: 1,
		},
		FavorsRoles: []string{malifaux.RoleControl},
		BranchesTo:  []string{"harness_the_leyline", "assassinate", "detonate_charges"},
	},
}

type staticRepository struct{}

// NewStaticRepository returns the repository backed by the compiled-in
// season tables
func NewStaticRepository() Repository {
	return &staticRepository{}
}

func (r *staticRepository) GetStrategy(_ context.Context, input GetStrategyInput) (*GetStrategyOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errStrategyIDEmpty)
	}
	strategy, ok := strategies[input.ID]
	if !ok {
		return nil, errors.NotFoundf("strategy %s not found", input.ID)
	}
	return &GetStrategyOutput{Strategy: strategy}, nil
}

func (r *staticRepository) ListStrategies(_ context.Context, _ ListStrategiesInput) (*ListStrategiesOutput, error) {
	out := make([]*malifaux.Strategy, 0, len(strategies))
	for _, s := range strategies {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &ListStrategiesOutput{Strategies: out}, nil
}

func (r *staticRepository) GetScheme(_ context.Context, input GetSchemeInput) (*GetSchemeOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSchemeIDEmpty)
	}
	scheme, ok := schemes[input.ID]
	if !ok {
		return nil, errors.NotFoundf("scheme %s not found", input.ID)
	}
	return &GetSchemeOutput{Scheme: scheme}, nil
}

func (r *staticRepository) ListSchemes(_ context.Context, _ ListSchemesInput) (*ListSchemesOutput, error) {
	out := make([]*malifaux.Scheme, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &ListSchemesOutput{Schemes: out}, nil
}

package engine

import (
	"sort"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	"github.com/breachside/crew-api/internal/pkg/idgen"
)

// Spend targets. The suggester fills toward budget minus the soulstone
// cache cap, and treats two stones under that as the acceptable floor.
const (
	cachePoolCap     = 6
	minSpendSlack    = 8
	backfillAttempts = 20
)

// Station base values in the greedy score. Minions scale off their cost
// instead of a flat value.
const (
	tierValueTotem     = 2.5
	tierValueHenchman  = 2.0
	tierValueEnforcer  = 1.5
	minionCostFactor   = 0.15
	ookPenalty         = 0.5
	costEfficiencyStep = 0.05
)

// Suggester builds legal rosters with a greedy constructive heuristic
type Suggester struct {
	idGen idgen.Generator
}

// SuggesterConfig holds the dependencies for the crew suggester
type SuggesterConfig struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *SuggesterConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// NewSuggester creates a new crew suggester
func NewSuggester(cfg *SuggesterConfig) (*Suggester, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Suggester{idGen: cfg.IDGenerator}, nil
}

// SuggestInput carries the pools and objective context for one suggestion
type SuggestInput struct {
	Leader        *malifaux.Card
	Budget        int
	KeywordPool   []*malifaux.Card
	VersatilePool []*malifaux.Card
	StrategyRoles []string
	SchemeRoles   []string
}

// candidateScore pairs a card with its greedy score
type candidateScore struct {
	card  *malifaux.Card
	score float64
}

// Suggest builds a roster for the leader in four phases: keyword totem,
// greedy unique picks by score, minion-duplicate backfill, and a final
// anything-legal pass. Every addition re-checks hiring legality, so the
// result is always a legal crew; it may come in under the spend floor
// when the pools run dry. Scoring is deterministic and ties keep the
// stable order the pools arrived in.
func (s *Suggester) Suggest(input SuggestInput) []malifaux.RosterEntry {
	budget := input.Budget
	if budget <= 0 {
		budget = malifaux.DefaultBudget
	}
	targetSpend := budget - cachePoolCap
	minSpend := budget - minSpendSlack

	state := &malifaux.CrewState{
		Leader: input.Leader,
		Budget: budget,
	}

	pool := make([]*malifaux.Card, 0, len(input.KeywordPool)+len(input.VersatilePool))
	pool = append(pool, input.KeywordPool...)
	pool = append(pool, input.VersatilePool...)

	// Phase 1: the keyword totem is close to an auto-take.
	for _, card := range input.KeywordPool {
		if card.Station() == malifaux.StationTotem && CanHire(card, state) {
			s.add(state, card)
			break
		}
	}

	// Phase 2: greedy unique picks until the target spend.
	scored := s.scorePool(pool, input)
	for _, cs := range scored {
		if spend(state) >= targetSpend {
			break
		}
		if state.CountByName(cs.card.Name) > 0 {
			continue
		}
		if CanHire(cs.card, state) {
			s.add(state, cs.card)
		}
	}

	// Phase 3: backfill with minion duplicates.
	for attempt := 0; attempt < backfillAttempts && spend(state) < minSpend; attempt++ {
		added := false
		for _, cs := range scored {
			if cs.card.Station() != malifaux.StationMinion {
				continue
			}
			if CanHire(cs.card, state) {
				s.add(state, cs.card)
				added = true
				break
			}
		}
		if !added {
			break
		}
	}

	// Phase 4: anything legal until the floor is met or nothing fits.
	for spend(state) < minSpend {
		added := false
		for _, cs := range scored {
			if CanHire(cs.card, state) {
				s.add(state, cs.card)
				added = true
				break
			}
		}
		if !added {
			break
		}
	}

	return state.Roster
}

func (s *Suggester) add(state *malifaux.CrewState, card *malifaux.Card) {
	state.Roster = append(state.Roster, malifaux.RosterEntry{
		RosterID: s.idGen.Generate(),
		Card:     card,
	})
}

func spend(state *malifaux.CrewState) int {
	return ComputeCrewMath(state.Leader, state.Roster).TotalCost
}

// scorePool scores every candidate and returns them highest first,
// preserving input order among equals
func (s *Suggester) scorePool(pool []*malifaux.Card, input SuggestInput) []candidateScore {
	scored := make([]candidateScore, 0, len(pool))
	for _, card := range pool {
		scored = append(scored, candidateScore{
			card:  card,
			score: scoreCandidate(card, input),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}

// scoreCandidate is the greedy objective: strategy-role fit dominates,
// then scheme-role fit, then station tier, with small adjustments for
// keyword membership and cost efficiency.
func scoreCandidate(card *malifaux.Card, input SuggestInput) float64 {
	score := 0.0
	matchedRoles := map[string]bool{}

	for _, role := range input.StrategyRoles {
		if card.HasRole(role) {
			score += 3
			matchedRoles[role] = true
		}
	}
	for _, role := range input.SchemeRoles {
		if card.HasRole(role) {
			score++
			matchedRoles[role] = true
		}
	}
	if len(matchedRoles) >= 2 {
		score++
	}

	switch card.Station() {
	case malifaux.StationTotem:
		score += tierValueTotem
	case malifaux.StationHenchman:
		score += tierValueHenchman
	case malifaux.StationEnforcer:
		score += tierValueEnforcer
	case malifaux.StationMinion:
		score += float64(card.HireCost()) * minionCostFactor
	}

	if IsOutOfKeyword(card, input.Leader) {
		score -= ookPenalty
	}

	score += float64(10-card.HireCost()) * costEfficiencyStep

	return score
}

package malifaux

// Crew composition limits. The out-of-keyword cap and the per-name minion
// cap are hard hiring rules; the scheme caps come from the encounter setup.
const (
	DefaultBudget     = 50
	OOKLimit          = 2
	OOKTax            = 1
	SchemePoolLimit   = 5
	ChosenSchemeLimit = 2
)

// RosterEntry is one hired copy of a card. RosterID disambiguates
// duplicate minions within a single crew.
type RosterEntry struct {
	RosterID string `json:"roster_id"`
	Card     *Card  `json:"card"`
}

// CrewState is the in-memory crew being built. It is owned by a single
// session and mutated only through the crew orchestrator.
type CrewState struct {
	ID              string        `json:"id"`
	PlayerID        string        `json:"player_id"`
	Leader          *Card         `json:"leader"`
	Budget          int           `json:"budget"`
	Roster          []RosterEntry `json:"roster"`
	StrategyID      string        `json:"strategy_id"`
	SchemePoolIDs   []string      `json:"scheme_pool_ids"`
	ChosenSchemeIDs []string      `json:"chosen_scheme_ids"`
	CreatedAt       int64         `json:"created_at"`
	UpdatedAt       int64         `json:"updated_at"`
}

// Clone returns a deep copy of the crew for handing outside the
// orchestrator's lock. Card pointers are shared; the catalog is
// immutable after load.
func (s *CrewState) Clone() *CrewState {
	c := *s
	c.Roster = append([]RosterEntry(nil), s.Roster...)
	c.SchemePoolIDs = append([]string(nil), s.SchemePoolIDs...)
	c.ChosenSchemeIDs = append([]string(nil), s.ChosenSchemeIDs...)
	return &c
}

// Models returns the leader plus every roster card, the unit most
// analyzers operate on.
func (s *CrewState) Models() []*Card {
	models := make([]*Card, 0, len(s.Roster)+1)
	if s.Leader != nil {
		models = append(models, s.Leader)
	}
	for _, e := range s.Roster {
		models = append(models, e.Card)
	}
	return models
}

// CountByName returns how many copies of the named card are in the roster
func (s *CrewState) CountByName(name string) int {
	n := 0
	for _, e := range s.Roster {
		if e.Card.Name == name {
			n++
		}
	}
	return n
}

// CrewSnapshot is the compact persisted form of a CrewState. Only ids are
// stored; hydration re-resolves them against the live card and objective
// stores and silently drops anything stale.
type CrewSnapshot struct {
	ID              string   `json:"id"`
	PlayerID        string   `json:"player_id"`
	LeaderID        string   `json:"leader_id"`
	Budget          int      `json:"budget"`
	RosterCardIDs   []string `json:"roster_card_ids"`
	StrategyID      string   `json:"strategy_id,omitempty"`
	SchemePoolIDs   []string `json:"scheme_pool_ids,omitempty"`
	ChosenSchemeIDs []string `json:"chosen_scheme_ids,omitempty"`
	CreatedAt       int64    `json:"created_at"`
	UpdatedAt       int64    `json:"updated_at"`
}

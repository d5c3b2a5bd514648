package engine

import (
	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// BlockReason explains why a card cannot be hired right now
type BlockReason string

// Hire block reasons. BlockNone means the hire is legal.
const (
	BlockNone         BlockReason = "none"
	BlockBudget       BlockReason = "budget"
	BlockOOKLimit     BlockReason = "ook-limit"
	BlockMinionLimit  BlockReason = "minion-limit"
	BlockAlreadyHired BlockReason = "already-hired"
)

// CrewMath is the cost breakdown of a crew under the hiring rules
type CrewMath struct {
	BaseCost     int            `json:"base_cost"`
	OOKTax       int            `json:"ook_tax"`
	TotalCost    int            `json:"total_cost"`
	OOKCount     int            `json:"ook_count"`
	OOKLimit     int            `json:"ook_limit"`
	MinionCounts map[string]int `json:"minion_counts"`
}

// SynergyReport is the full pairwise analysis of a crew
type SynergyReport struct {
	Synergies      []malifaux.SynergyEdge `json:"synergies"`
	AntiSynergies  []malifaux.SynergyEdge `json:"anti_synergies"`
	TotalScore     float64                `json:"total_score"`
	PerModelCounts map[string]int         `json:"per_model_counts"`
}

// GapSeverity grades how badly a capability requirement is missed
type GapSeverity string

// Gap severities
const (
	SeverityCritical GapSeverity = "critical"
	SeverityWarning  GapSeverity = "warning"
)

// Gap is one capability the crew cannot cover for the declared objectives
type Gap struct {
	Capability malifaux.Capability `json:"capability"`
	Needed     int                 `json:"needed"`
	Have       int                 `json:"have"`
	Shortfall  int                 `json:"shortfall"`
	Severity   GapSeverity         `json:"severity"`
}

// Strength is a capability the crew covers with room to spare
type Strength struct {
	Capability malifaux.Capability `json:"capability"`
	Have       int                 `json:"have"`
	Needed     int                 `json:"needed"`
}

// GapReport pairs the open gaps with the crew's surpluses
type GapReport struct {
	Gaps      []Gap      `json:"gaps"`
	Strengths []Strength `json:"strengths"`
}

// Recommendation is a candidate hire scored against the open gaps
type Recommendation struct {
	Card  *malifaux.Card `json:"card"`
	Score int            `json:"score"`
}

// PlayerProfile summarizes a crew for counter-crew analysis
type PlayerProfile struct {
	ConditionsApplied  []string `json:"conditions_applied"`
	ConditionsRequired []string `json:"conditions_required"`
	WeakToConditions   []string `json:"weak_to_conditions"`
	Roles              []string `json:"roles"`
	AvgDefense         float64  `json:"avg_defense"`
	AvgWillpower       float64  `json:"avg_willpower"`
	AvgSpeed           float64  `json:"avg_speed"`
	HasHealing         bool     `json:"has_healing"`
	HasArmor           bool     `json:"has_armor"`
	SlowCrew           bool     `json:"slow_crew"`
}

// CounterPick is a scored opposing-leader candidate
type CounterPick struct {
	Leader  *malifaux.Card `json:"leader"`
	Score   float64        `json:"score"`
	Reasons []string       `json:"reasons"`
}

package malifaux

// Role constants. Coarse archetype tags assigned to cards by the data
// pipeline; the engine treats them as opaque strings from this set.
const (
	RoleBeater              = "beater"
	RoleTank                = "tank"
	RoleSupport             = "support"
	RoleSchemeRunner        = "scheme_runner"
	RoleControl             = "control"
	RoleSummoner            = "summoner"
	RoleConditionSpecialist = "condition_specialist"
	RoleMarkerManipulation  = "marker_manipulation"
)

// Faction constants
const (
	FactionArcanists        = "Arcanists"
	FactionBayou            = "Bayou"
	FactionGuild            = "Guild"
	FactionNeverborn        = "Neverborn"
	FactionOutcasts         = "Outcasts"
	FactionResurrectionists = "Resurrectionists"
	FactionTenThunders      = "Ten Thunders"
	FactionExplorers        = "Explorer's Society"
)

// Condition constants. Status conditions models can apply to or require
// from other models, recognized in ability text.
const (
	ConditionSlow       = "slow"
	ConditionStunned    = "stunned"
	ConditionStaggered  = "staggered"
	ConditionDistracted = "distracted"
	ConditionBurning    = "burning"
	ConditionPoison     = "poison"
	ConditionInjured    = "injured"
	ConditionAdversary  = "adversary"
	ConditionFocused    = "focused"
	ConditionShielded   = "shielded"
	ConditionFast       = "fast"
	ConditionBolstered  = "bolstered"
)

// AllConditions lists every condition the text scanners recognize
var AllConditions = []string{
	ConditionSlow,
	ConditionStunned,
	ConditionStaggered,
	ConditionDistracted,
	ConditionBurning,
	ConditionPoison,
	ConditionInjured,
	ConditionAdversary,
	ConditionFocused,
	ConditionShielded,
	ConditionFast,
	ConditionBolstered,
}

// ConditionTiers weights conditions by in-game impact. Control conditions
// that deny actions sit at the top, situational buffs at the bottom.
var ConditionTiers = map[string]float64{
	ConditionSlow:       2.0,
	ConditionStunned:    2.0,
	ConditionStaggered:  1.75,
	ConditionDistracted: 1.75,
	ConditionBurning:    1.5,
	ConditionPoison:     1.5,
	ConditionInjured:    1.5,
	ConditionAdversary:  1.5,
	ConditionFocused:    1.25,
	ConditionShielded:   1.25,
	ConditionFast:       1.25,
	ConditionBolstered:  1.25,
}

// ConditionTier returns the impact multiplier for a condition,
// defaulting to 1.0 for anything unranked.
func ConditionTier(condition string) float64 {
	if t, ok := ConditionTiers[condition]; ok {
		return t
	}
	return 1.0
}

package engine

import (
	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// IsOutOfKeyword reports whether a card is hired outside the leader's
// primary keyword. Versatile models draw from their own hiring pool in
// the UI but still count against the out-of-keyword limit and pay the
// tax, which is why this is a single explicit predicate instead of
// ad hoc checks at each call site.
func IsOutOfKeyword(card *malifaux.Card, leader *malifaux.Card) bool {
	if leader == nil {
		return false
	}
	primary := leader.PrimaryKeyword()
	if primary == "" {
		return true
	}
	return !card.HasKeyword(primary)
}

// EffectiveCost is a card's printed cost plus the out-of-keyword tax
// when hired by the given leader
func EffectiveCost(card *malifaux.Card, leader *malifaux.Card) int {
	cost := card.HireCost()
	if IsOutOfKeyword(card, leader) {
		cost += malifaux.OOKTax
	}
	return cost
}

// ComputeCrewMath totals a roster's cost under the hiring rules: base
// soulstone cost, one stone of tax per out-of-keyword hire, and per-name
// minion counts. Cards with no printed cost count as zero here; the card
// store flags them as data issues at load time.
func ComputeCrewMath(leader *malifaux.Card, roster []malifaux.RosterEntry) CrewMath {
	math := CrewMath{
		OOKLimit:     malifaux.OOKLimit,
		MinionCounts: make(map[string]int),
	}
	for _, entry := range roster {
		math.BaseCost += entry.Card.HireCost()
		if IsOutOfKeyword(entry.Card, leader) {
			math.OOKCount++
			math.OOKTax += malifaux.OOKTax
		}
		if entry.Card.Station() == malifaux.StationMinion {
			math.MinionCounts[entry.Card.Name]++
		}
	}
	math.TotalCost = math.BaseCost + math.OOKTax
	return math
}

// RemainingBudget is the crew's unspent soulstones
func RemainingBudget(state *malifaux.CrewState) int {
	math := ComputeCrewMath(state.Leader, state.Roster)
	return state.Budget - math.TotalCost
}

// CheckHire evaluates whether a card may legally be added to the crew.
// Checks run in a fixed order: out-of-keyword limit, then budget, then
// duplicate limits. Failure is a reason code, never an error; callers
// are expected to gate mutation on the result.
func CheckHire(card *malifaux.Card, state *malifaux.CrewState) BlockReason {
	math := ComputeCrewMath(state.Leader, state.Roster)

	if IsOutOfKeyword(card, state.Leader) && math.OOKCount >= malifaux.OOKLimit {
		return BlockOOKLimit
	}

	if EffectiveCost(card, state.Leader) > state.Budget-math.TotalCost {
		return BlockBudget
	}

	hired := state.CountByName(card.Name)
	if hired >= card.DuplicateLimit() {
		if card.Station() == malifaux.StationMinion {
			return BlockMinionLimit
		}
		return BlockAlreadyHired
	}

	return BlockNone
}

// CanHire reports whether the card passes every hiring check
func CanHire(card *malifaux.Card, state *malifaux.CrewState) bool {
	return CheckHire(card, state) == BlockNone
}

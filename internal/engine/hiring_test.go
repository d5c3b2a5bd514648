package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
)

type HiringTestSuite struct {
	suite.Suite

	leader *malifaux.Card
}

func (s *HiringTestSuite) SetupTest() {
	s.leader = newLeader("card_viktoria", "Viktoria Chambers", "Viktoria")
}

func (s *HiringTestSuite) TestEmptyRosterMath() {
	state := &malifaux.CrewState{Leader: s.leader, Budget: 50}

	math := engine.ComputeCrewMath(state.Leader, state.Roster)

	s.Assert().Equal(0, math.BaseCost)
	s.Assert().Equal(0, math.OOKTax)
	s.Assert().Equal(0, math.TotalCost)
	s.Assert().Equal(0, math.OOKCount)
	s.Assert().Equal(50, engine.RemainingBudget(state))
}

func (s *HiringTestSuite) TestOutOfKeywordPredicate() {
	inKeyword := newModel("card_ronin", "Ronin", "Minion", "Viktoria", 6)
	ook := newModel("card_ook", "Hired Gun", "Minion", "Mercenary", 5)
	versatile := newModel("card_vers", "Student", "Enforcer", malifaux.KeywordVersatile, 7)

	s.Assert().False(engine.IsOutOfKeyword(inKeyword, s.leader))
	s.Assert().True(engine.IsOutOfKeyword(ook, s.leader))
	s.Assert().True(engine.IsOutOfKeyword(versatile, s.leader),
		"versatile models still count against the out-of-keyword limit")
}

func (s *HiringTestSuite) TestEffectiveCostAddsTax() {
	inKeyword := newModel("card_ronin", "Ronin", "Minion", "Viktoria", 6)
	ook := newModel("card_ook", "Hired Gun", "Minion", "Mercenary", 5)

	s.Assert().Equal(6, engine.EffectiveCost(inKeyword, s.leader))
	s.Assert().Equal(6, engine.EffectiveCost(ook, s.leader))
}

func (s *HiringTestSuite) TestOOKTaxAndLimit() {
	ookA := newModel("card_ook_a", "Hired Gun", "Minion", "Mercenary", 5)
	ookB := newModel("card_ook_b", "Hired Blade", "Minion", "Mercenary", 5)
	ookC := newModel("card_ook_c", "Hired Fist", "Minion", "Mercenary", 5)

	state := &malifaux.CrewState{
		Leader: s.leader,
		Budget: 50,
		Roster: roster(ookA, ookB),
	}

	math := engine.ComputeCrewMath(state.Leader, state.Roster)
	s.Assert().Equal(10, math.BaseCost)
	s.Assert().Equal(2, math.OOKTax)
	s.Assert().Equal(12, math.TotalCost)
	s.Assert().Equal(2, math.OOKCount)

	// A third out-of-keyword hire is blocked regardless of remaining budget.
	s.Assert().Equal(engine.BlockOOKLimit, engine.CheckHire(ookC, state))
	s.Assert().False(engine.CanHire(ookC, state))
}

func (s *HiringTestSuite) TestBudgetBlock() {
	expensive := newModel("card_big", "Big Hire", "Enforcer", "Viktoria", 10)

	state := &malifaux.CrewState{
		Leader: s.leader,
		Budget: 9,
	}

	s.Assert().Equal(engine.BlockBudget, engine.CheckHire(expensive, state))
}

func (s *HiringTestSuite) TestOOKLimitCheckedBeforeBudget() {
	ookA := newModel("card_ook_a", "Hired Gun", "Minion", "Mercenary", 5)
	ookB := newModel("card_ook_b", "Hired Blade", "Minion", "Mercenary", 5)
	ookC := newModel("card_ook_c", "Hired Fist", "Minion", "Mercenary", 50)

	state := &malifaux.CrewState{
		Leader: s.leader,
		Budget: 50,
		Roster: roster(ookA, ookB),
	}

	// Over budget too, but the limit fires first.
	s.Assert().Equal(engine.BlockOOKLimit, engine.CheckHire(ookC, state))
}

func (s *HiringTestSuite) TestMinionDuplicateLimit() {
	ronin := newModel("card_ronin", "Ronin", "Minion", "Viktoria", 6)
	ronin.MinionLimit = 3

	state := &malifaux.CrewState{
		Leader: s.leader,
		Budget: 50,
		Roster: roster(ronin, ronin, ronin),
	}

	s.Assert().Equal(engine.BlockMinionLimit, engine.CheckHire(ronin, state))
	s.Assert().False(engine.CanHire(ronin, state))
	s.Assert().Len(state.Roster, 3, "a rejected hire must not grow the roster")
}

func (s *HiringTestSuite) TestNonMinionIsUnique() {
	henchman := newModel("card_taelor", "Taelor", "Henchman", "Viktoria", 9)

	state := &malifaux.CrewState{
		Leader: s.leader,
		Budget: 50,
		Roster: roster(henchman),
	}

	s.Assert().Equal(engine.BlockAlreadyHired, engine.CheckHire(henchman, state))
}

func (s *HiringTestSuite) TestMinionCountsPerName() {
	ronin := newModel("card_ronin", "Ronin", "Minion", "Viktoria", 6)
	taelor := newModel("card_taelor", "Taelor", "Henchman", "Viktoria", 9)

	math := engine.ComputeCrewMath(s.leader, roster(ronin, ronin, taelor))

	s.Assert().Equal(2, math.MinionCounts["Ronin"])
	s.Assert().NotContains(math.MinionCounts, "Taelor")
}

func TestHiringTestSuite(t *testing.T) {
	suite.Run(t, new(HiringTestSuite))
}

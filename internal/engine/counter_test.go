package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/pkg/idgen"
)

type CounterTestSuite struct {
	suite.Suite

	generator *engine.CounterGenerator
}

func (s *CounterTestSuite) SetupTest() {
	gen, err := engine.NewCounterGenerator(&engine.CounterGeneratorConfig{
		IDGenerator: idgen.NewSequential("roster"),
		Rand:        rand.New(rand.NewSource(42)),
	})
	s.Require().NoError(err)
	s.generator = gen
}

// playerCrew is a slow, burning-focused crew with healing and armor
func (s *CounterTestSuite) playerCrew() (*malifaux.Card, []malifaux.RosterEntry) {
	leader := newLeader("card_sonnia", "Sonnia Criid", "Witch Hunter")
	leader.Defense = intp(5)
	leader.Willpower = intp(6)
	leader.Speed = intp(4)
	withAbility(leader, "Flaming Halo", "The target gains Burning +1.")

	healer := newModel("card_healer", "Field Medic", "Minion", "Witch Hunter", 5)
	healer.Defense = intp(5)
	healer.Willpower = intp(4)
	healer.Speed = intp(4)
	withAbility(healer, "Patch Up", "Another friendly model heals 2 damage.")

	tank := newModel("card_tank", "Iron Golem", "Enforcer", "Witch Hunter", 8)
	tank.Defense = intp(5)
	tank.Willpower = intp(4)
	tank.Speed = intp(4)
	withAbility(tank, "Plated", "This model has Armor +2.")

	return leader, roster(healer, tank)
}

func (s *CounterTestSuite) TestAnalyzePlayerProfile() {
	leader, crew := s.playerCrew()

	profile := engine.AnalyzePlayerProfile(leader, crew)

	s.Assert().Contains(profile.ConditionsApplied, malifaux.ConditionBurning)
	s.Assert().NotContains(profile.WeakToConditions, malifaux.ConditionBurning)
	s.Assert().Contains(profile.WeakToConditions, malifaux.ConditionSlow)
	s.Assert().True(profile.HasHealing)
	s.Assert().True(profile.HasArmor)
	s.Assert().True(profile.SlowCrew)
	s.Assert().InDelta(5.0, profile.AvgDefense, 0.001)
	s.Assert().InDelta(4.0, profile.AvgSpeed, 0.001)
}

func (s *CounterTestSuite) TestEmptyCrewProfile() {
	profile := engine.AnalyzePlayerProfile(nil, nil)

	s.Assert().Empty(profile.ConditionsApplied)
	s.Assert().False(profile.SlowCrew)
	s.Assert().Zero(profile.AvgDefense)
}

func (s *CounterTestSuite) TestDifficultyPresets() {
	strongest := engine.DifficultyPreset(engine.DifficultyStrongest)
	s.Assert().InDelta(2.0, strongest.ScoreMultiplier, 0.001)
	s.Assert().Equal(3, strongest.PoolSize)
	s.Assert().Equal(engine.PickTop, strongest.Pick)

	fallback := engine.DifficultyPreset(engine.Difficulty("bogus"))
	s.Assert().Equal(engine.DifficultyPreset(engine.DifficultyWellMatched), fallback)
}

func (s *CounterTestSuite) TestGeneratePicksExploitingLeader() {
	leader, crew := s.playerCrew()

	exploiter := newLeader("card_kaeris", "Kaeris", "Wildfire")
	exploiterPool := []*malifaux.Card{
		withAbility(
			newModel("card_firestarter", "Firestarter", "Enforcer", "Wildfire", 7),
			"Stoke the Flames", "If the target has Burning, this Action deals +1 damage.",
		),
		newModel("card_gunsmith", "Gunsmith", "Minion", "Wildfire", 6),
		newModel("card_elemental", "Fire Gamin", "Minion", "Wildfire", 4),
	}
	bystander := newLeader("card_bland", "Bland Master", "Bland")

	result, err := s.generator.Generate(engine.CounterCrewInput{
		PlayerLeader: leader,
		PlayerRoster: crew,
		CandidateLeaders: []*malifaux.Card{
			bystander,
			exploiter,
		},
		KeywordPools: map[string][]*malifaux.Card{
			"card_kaeris": exploiterPool,
		},
		Budget:     50,
		Difficulty: engine.DifficultyStrongest,
	})

	s.Require().NoError(err)
	s.Assert().Equal("card_kaeris", result.Leader.ID)
	s.Assert().False(result.Fallback)
	s.Assert().NotEmpty(result.Reasons)
	s.Assert().Positive(result.Score)

	math := engine.ComputeCrewMath(result.Leader, result.Roster)
	s.Assert().LessOrEqual(math.TotalCost, 50)
}

func (s *CounterTestSuite) TestGenerateFallsBackWhenNothingCounters() {
	leader := newLeader("card_plain", "Plain Master", "Plain")

	a := newLeader("card_a", "Leader A", "Alpha")
	b := newLeader("card_b", "Leader B", "Beta")

	result, err := s.generator.Generate(engine.CounterCrewInput{
		PlayerLeader:     leader,
		CandidateLeaders: []*malifaux.Card{a, b},
		Budget:           50,
		Difficulty:       engine.DifficultyWellMatched,
	})

	s.Require().NoError(err)
	s.Assert().True(result.Fallback)
	s.Require().Len(result.Reasons, 1)
	s.Assert().Contains(result.Reasons[0], "random")
	s.Assert().NotNil(result.Leader)
}

func (s *CounterTestSuite) TestGenerateRequiresCandidates() {
	_, err := s.generator.Generate(engine.CounterCrewInput{
		PlayerLeader: newLeader("card_x", "X", "Xkw"),
	})
	s.Assert().Error(err)
}

func (s *CounterTestSuite) TestGenerateIsSeedStable() {
	leader, crew := s.playerCrew()
	candidates := []*malifaux.Card{
		newLeader("card_a", "Leader A", "Alpha"),
		newLeader("card_b", "Leader B", "Beta"),
	}

	run := func(seed int64) string {
		gen, err := engine.NewCounterGenerator(&engine.CounterGeneratorConfig{
			IDGenerator: idgen.NewSequential("roster"),
			Rand:        rand.New(rand.NewSource(seed)),
		})
		s.Require().NoError(err)
		result, err := gen.Generate(engine.CounterCrewInput{
			PlayerLeader:     leader,
			PlayerRoster:     crew,
			CandidateLeaders: candidates,
			Budget:           50,
			Difficulty:       engine.DifficultyWellMatched,
		})
		s.Require().NoError(err)
		return result.Leader.ID
	}

	s.Assert().Equal(run(7), run(7), "same seed, same pick")
}

func TestCounterTestSuite(t *testing.T) {
	suite.Run(t, new(CounterTestSuite))
}

package crew_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	crewoch "github.com/breachside/crew-api/internal/orchestrators/crew"
	"github.com/breachside/crew-api/internal/pkg/idgen"
	cardsrepo "github.com/breachside/crew-api/internal/repositories/cards"
	crewlistrepo "github.com/breachside/crew-api/internal/repositories/crewlist"
	objectivesrepo "github.com/breachside/crew-api/internal/repositories/objectives"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
	"github.com/breachside/crew-api/internal/testutils"
)

func intp(v int) *int { return &v }

// testCatalog is a two-faction card set: the Viktoria crew plus an
// opposing Guild master for counter-crew runs.
func testCatalog() []*malifaux.Card {
	return []*malifaux.Card{
		{
			ID:              "card_viktoria",
			Name:            "Viktoria Chambers",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Defense:         intp(5),
			Willpower:       intp(6),
			Speed:           intp(5),
			Characteristics: []string{"Master"},
			Keywords:        []string{"Viktoria"},
			Roles:           []string{malifaux.RoleBeater},
		},
		{
			ID:              "card_child",
			Name:            "Malifaux Child",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(3),
			Characteristics: []string{"Totem (Viktoria)"},
			Keywords:        []string{"Viktoria"},
			Roles:           []string{malifaux.RoleSupport},
		},
		{
			ID:              "card_taelor",
			Name:            "Taelor",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(9),
			Characteristics: []string{"Henchman"},
			Keywords:        []string{"Viktoria"},
			Roles:           []string{malifaux.RoleBeater},
		},
		{
			ID:              "card_vanessa",
			Name:            "Vanessa",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(8),
			Characteristics: []string{"Enforcer"},
			Keywords:        []string{"Viktoria"},
			Roles:           []string{malifaux.RoleSupport},
		},
		{
			ID:              "card_ronin",
			Name:            "Ronin",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(6),
			Characteristics: []string{"Minion"},
			Keywords:        []string{"Viktoria"},
			Roles:           []string{malifaux.RoleSchemeRunner},
			Abilities: []malifaux.Ability{
				{Name: "Hidden Agenda", Description: "At the end of this model's activation, it may place a Scheme Marker in base contact."},
			},
		},
		{
			ID:              "card_jake",
			Name:            "Big Jake",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(5),
			Characteristics: []string{"Minion"},
			Keywords:        []string{"Viktoria"},
			Roles:           []string{malifaux.RoleSchemeRunner},
		},
		{
			ID:              "card_librarian",
			Name:            "Librarian",
			Faction:         "Outcasts",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(7),
			Characteristics: []string{"Minion"},
			Keywords:        []string{malifaux.KeywordVersatile},
			Roles:           []string{malifaux.RoleSupport},
		},
		{
			ID:              "card_sonnia",
			Name:            "Sonnia Criid",
			Faction:         "Guild",
			CardType:        malifaux.CardTypeModel,
			Defense:         intp(4),
			Willpower:       intp(7),
			Speed:           intp(4),
			Characteristics: []string{"Master"},
			Keywords:        []string{"Witch Hunter"},
			Roles:           []string{malifaux.RoleControl},
		},
		{
			ID:              "card_stalker",
			Name:            "Witchling Stalker",
			Faction:         "Guild",
			CardType:        malifaux.CardTypeModel,
			Cost:            intp(5),
			Characteristics: []string{"Minion"},
			Keywords:        []string{"Witch Hunter"},
			Roles:           []string{malifaux.RoleBeater},
			Abilities: []malifaux.Ability{
				{Name: "Drawn to Flame", Description: "Enemy models within range gain Slow when this model ends its activation nearby."},
			},
		},
	}
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	cleanup  func()
	crewRepo crewlistrepo.Repository
	orch     *crewoch.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	crewRepo, err := crewlistrepo.NewRedis(&crewlistrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.crewRepo = crewRepo

	rosterIDGen := idgen.NewSequential("hire")

	suggester, err := engine.NewSuggester(&engine.SuggesterConfig{IDGenerator: rosterIDGen})
	s.Require().NoError(err)

	counterGen, err := engine.NewCounterGenerator(&engine.CounterGeneratorConfig{
		IDGenerator: rosterIDGen,
		Rand:        rand.New(rand.NewSource(7)),
	})
	s.Require().NoError(err)

	orch, err := crewoch.New(&crewoch.Config{
		CardRepo:          cardsrepo.NewMemoryRepository(testCatalog()),
		ObjectiveRepo:     objectivesrepo.NewStaticRepository(),
		CrewRepo:          crewRepo,
		Suggester:         suggester,
		CounterGen:        counterGen,
		IDGenerator:       idgen.NewSequential("crew"),
		RosterIDGenerator: rosterIDGen,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

// createCrew is a helper that starts a Viktoria crew at the default budget
func (s *OrchestratorTestSuite) createCrew() *malifaux.CrewState {
	output, err := s.orch.CreateCrew(s.ctx, &crewservice.CreateCrewInput{
		PlayerID: "player_1",
		LeaderID: "card_viktoria",
	})
	s.Require().NoError(err)
	return output.Crew
}

func (s *OrchestratorTestSuite) addModel(crewID, cardID string) *crewservice.AddModelOutput {
	output, err := s.orch.AddModel(s.ctx, &crewservice.AddModelInput{CrewID: crewID, CardID: cardID})
	s.Require().NoError(err)
	return output
}

func (s *OrchestratorTestSuite) TestCreateCrew() {
	crew := s.createCrew()

	s.Equal("crew_1", crew.ID)
	s.Equal("player_1", crew.PlayerID)
	s.Equal("Viktoria Chambers", crew.Leader.Name)
	s.Equal(malifaux.DefaultBudget, crew.Budget)
	s.Empty(crew.Roster)
	s.NotZero(crew.CreatedAt)
}

func (s *OrchestratorTestSuite) TestCreateCrewValidation() {
	_, err := s.orch.CreateCrew(s.ctx, &crewservice.CreateCrewInput{LeaderID: "card_viktoria"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.CreateCrew(s.ctx, &crewservice.CreateCrewInput{PlayerID: "player_1", LeaderID: "card_ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	// Minions cannot lead crews
	_, err = s.orch.CreateCrew(s.ctx, &crewservice.CreateCrewInput{PlayerID: "player_1", LeaderID: "card_ronin"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddModel() {
	crew := s.createCrew()

	output := s.addModel(crew.ID, "card_ronin")
	s.Equal(engine.BlockNone, output.BlockReason)
	s.Equal("hire_1", output.RosterID)
	s.Require().Len(output.Crew.Roster, 1)
	s.Equal("Ronin", output.Crew.Roster[0].Card.Name)
}

func (s *OrchestratorTestSuite) TestAddModelBlockedIsNotAnError() {
	output, err := s.orch.CreateCrew(s.ctx, &crewservice.CreateCrewInput{
		PlayerID: "player_1",
		LeaderID: "card_viktoria",
		Budget:   5,
	})
	s.Require().NoError(err)

	blocked := s.addModel(output.Crew.ID, "card_taelor")
	s.Equal(engine.BlockBudget, blocked.BlockReason)
	s.Empty(blocked.RosterID)
	s.Empty(blocked.Crew.Roster)
}

func (s *OrchestratorTestSuite) TestAddModelUnhireable() {
	crew := s.createCrew()

	// A second master can never be hired
	_, err := s.orch.AddModel(s.ctx, &crewservice.AddModelInput{CrewID: crew.ID, CardID: "card_sonnia"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRemoveModel() {
	crew := s.createCrew()
	output := s.addModel(crew.ID, "card_ronin")

	removed, err := s.orch.RemoveModel(s.ctx, &crewservice.RemoveModelInput{
		CrewID:   crew.ID,
		RosterID: output.RosterID,
	})
	s.Require().NoError(err)
	s.Empty(removed.Crew.Roster)

	_, err = s.orch.RemoveModel(s.ctx, &crewservice.RemoveModelInput{
		CrewID:   crew.ID,
		RosterID: output.RosterID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClearRoster() {
	crew := s.createCrew()
	s.addModel(crew.ID, "card_ronin")
	s.addModel(crew.ID, "card_taelor")

	cleared, err := s.orch.ClearRoster(s.ctx, &crewservice.ClearRosterInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.Empty(cleared.Crew.Roster)
	s.NotNil(cleared.Crew.Leader)
}

func (s *OrchestratorTestSuite) TestOutputsAreDetachedCopies() {
	crew := s.createCrew()
	added := s.addModel(crew.ID, "card_ronin")

	got, err := s.orch.GetCrew(s.ctx, &crewservice.GetCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)

	_, err = s.orch.ClearRoster(s.ctx, &crewservice.ClearRosterInput{CrewID: crew.ID})
	s.Require().NoError(err)

	// Earlier outputs keep the roster they were built with; only the
	// orchestrator's own copy changed
	s.Len(added.Crew.Roster, 1)
	s.Len(got.Crew.Roster, 1)

	refetched, err := s.orch.GetCrew(s.ctx, &crewservice.GetCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.Empty(refetched.Crew.Roster)
}

func (s *OrchestratorTestSuite) TestSetStrategy() {
	crew := s.createCrew()

	output, err := s.orch.SetStrategy(s.ctx, &crewservice.SetStrategyInput{
		CrewID:     crew.ID,
		StrategyID: "plant_explosives",
	})
	s.Require().NoError(err)
	s.Equal("plant_explosives", output.Crew.StrategyID)

	_, err = s.orch.SetStrategy(s.ctx, &crewservice.SetStrategyInput{
		CrewID:     crew.ID,
		StrategyID: "turf_war",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSchemePoolAndChoice() {
	crew := s.createCrew()

	_, err := s.orch.SetSchemePool(s.ctx, &crewservice.SetSchemePoolInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "assassinate", "frame_job", "ensnare", "leave_your_mark", "detonate_charges"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.SetSchemePool(s.ctx, &crewservice.SetSchemePoolInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "breakthrough"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	output, err := s.orch.SetSchemePool(s.ctx, &crewservice.SetSchemePoolInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "assassinate", "frame_job"},
	})
	s.Require().NoError(err)
	s.Len(output.Crew.SchemePoolIDs, 3)

	_, err = s.orch.ChooseSchemes(s.ctx, &crewservice.ChooseSchemesInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"ensnare"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	chosen, err := s.orch.ChooseSchemes(s.ctx, &crewservice.ChooseSchemesInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "assassinate"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"breakthrough", "assassinate"}, chosen.Crew.ChosenSchemeIDs)

	// Shrinking the pool drops chosen schemes that fell out of it
	repooled, err := s.orch.SetSchemePool(s.ctx, &crewservice.SetSchemePoolInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "frame_job"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"breakthrough"}, repooled.Crew.ChosenSchemeIDs)
}

func (s *OrchestratorTestSuite) TestGetCrewMath() {
	crew := s.createCrew()
	s.addModel(crew.ID, "card_ronin")
	s.addModel(crew.ID, "card_ronin")
	s.addModel(crew.ID, "card_librarian")

	output, err := s.orch.GetCrewMath(s.ctx, &crewservice.GetCrewMathInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.Equal(19, output.Math.BaseCost)
	s.Equal(1, output.Math.OOKTax)
	s.Equal(20, output.Math.TotalCost)
	s.Equal(1, output.Math.OOKCount)
	s.Equal(2, output.Math.MinionCounts["Ronin"])
	s.Equal(30, output.Remaining)
}

func (s *OrchestratorTestSuite) TestAnalyzeSynergies() {
	crew := s.createCrew()
	s.addModel(crew.ID, "card_ronin")
	s.addModel(crew.ID, "card_taelor")

	output, err := s.orch.AnalyzeSynergies(s.ctx, &crewservice.AnalyzeSynergiesInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.NotEmpty(output.Report.Synergies)
	s.Greater(output.Report.TotalScore, 0.0)
}

func (s *OrchestratorTestSuite) TestAnalyzeGapsNeedsObjectives() {
	crew := s.createCrew()

	_, err := s.orch.AnalyzeGaps(s.ctx, &crewservice.AnalyzeGapsInput{CrewID: crew.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAnalyzeGaps() {
	crew := s.createCrew()

	_, err := s.orch.SetStrategy(s.ctx, &crewservice.SetStrategyInput{
		CrewID:     crew.ID,
		StrategyID: "plant_explosives",
	})
	s.Require().NoError(err)

	output, err := s.orch.AnalyzeGaps(s.ctx, &crewservice.AnalyzeGapsInput{CrewID: crew.ID})
	s.Require().NoError(err)

	// The bare leader drops no scheme markers, so the strategy's marker
	// requirement is wide open
	var markerGap *engine.Gap
	for i := range output.Report.Gaps {
		if output.Report.Gaps[i].Capability == malifaux.CapSchemeMarkers {
			markerGap = &output.Report.Gaps[i]
		}
	}
	s.Require().NotNil(markerGap)
	s.Equal(3, markerGap.Needed)
	s.Equal(0, markerGap.Have)
	s.Equal(engine.SeverityCritical, markerGap.Severity)

	// The scheme-marker-dropping Ronin leads the hire recommendations
	s.Require().NotEmpty(output.Recommendations)
	s.Equal("Ronin", output.Recommendations[0].Card.Name)
	s.LessOrEqual(len(output.Recommendations), 5)
}

func (s *OrchestratorTestSuite) TestRecommendSchemePaths() {
	crew := s.createCrew()

	_, err := s.orch.RecommendSchemePaths(s.ctx, &crewservice.RecommendSchemePathsInput{CrewID: crew.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.SetSchemePool(s.ctx, &crewservice.SetSchemePoolInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "assassinate"},
	})
	s.Require().NoError(err)

	_, err = s.orch.ChooseSchemes(s.ctx, &crewservice.ChooseSchemesInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough"},
	})
	s.Require().NoError(err)

	output, err := s.orch.RecommendSchemePaths(s.ctx, &crewservice.RecommendSchemePathsInput{CrewID: crew.ID})
	s.Require().NoError(err)

	// breakthrough branches to assassinate, public_demonstration, and
	// frame_job; none are chosen yet so all three come back scored
	s.Require().Len(output.Paths, 3)
	ids := make(map[string]bool)
	for _, path := range output.Paths {
		ids[path.Scheme.ID] = true
	}
	s.True(ids["assassinate"])
	s.True(ids["public_demonstration"])
	s.True(ids["frame_job"])
	for i := 1; i < len(output.Paths); i++ {
		s.GreaterOrEqual(output.Paths[i-1].Score, output.Paths[i].Score)
	}
}

func (s *OrchestratorTestSuite) TestSuggestCrew() {
	crew := s.createCrew()

	_, err := s.orch.SetStrategy(s.ctx, &crewservice.SetStrategyInput{
		CrewID:     crew.ID,
		StrategyID: "plant_explosives",
	})
	s.Require().NoError(err)

	output, err := s.orch.SuggestCrew(s.ctx, &crewservice.SuggestCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.Require().NotEmpty(output.Crew.Roster)

	math, err := s.orch.GetCrewMath(s.ctx, &crewservice.GetCrewMathInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.LessOrEqual(math.Math.TotalCost, malifaux.DefaultBudget)
	s.GreaterOrEqual(math.Math.TotalCost, 40)
	s.LessOrEqual(math.Math.OOKCount, malifaux.OOKLimit)

	// The keyword totem always makes the cut
	hasTotem := false
	for _, entry := range output.Crew.Roster {
		if entry.Card.ID == "card_child" {
			hasTotem = true
		}
	}
	s.True(hasTotem)
}

func (s *OrchestratorTestSuite) TestGenerateCounterCrewRejectsUnknownDifficulty() {
	crew := s.createCrew()

	_, err := s.orch.GenerateCounterCrew(s.ctx, &crewservice.GenerateCounterCrewInput{
		CrewID:     crew.ID,
		Difficulty: engine.Difficulty("impossible"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateCounterCrew() {
	crew := s.createCrew()
	s.addModel(crew.ID, "card_taelor")
	s.addModel(crew.ID, "card_ronin")

	output, err := s.orch.GenerateCounterCrew(s.ctx, &crewservice.GenerateCounterCrewInput{
		CrewID:     crew.ID,
		Difficulty: engine.DifficultyStrongest,
	})
	s.Require().NoError(err)

	// Sonnia is the only other-faction master in the catalog
	s.Equal("card_sonnia", output.Result.Leader.ID)
	s.NotEmpty(output.Result.Reasons)
	s.Contains(output.Result.Profile.Roles, malifaux.RoleBeater)

	total := 0
	for _, entry := range output.Result.Roster {
		total += entry.Card.HireCost()
	}
	s.LessOrEqual(total, malifaux.DefaultBudget)
}

func (s *OrchestratorTestSuite) TestSaveAndLoadRoundTrip() {
	crew := s.createCrew()
	s.addModel(crew.ID, "card_taelor")
	s.addModel(crew.ID, "card_ronin")
	s.addModel(crew.ID, "card_ronin")

	_, err := s.orch.SetStrategy(s.ctx, &crewservice.SetStrategyInput{
		CrewID:     crew.ID,
		StrategyID: "plant_explosives",
	})
	s.Require().NoError(err)
	_, err = s.orch.SetSchemePool(s.ctx, &crewservice.SetSchemePoolInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough", "assassinate"},
	})
	s.Require().NoError(err)
	_, err = s.orch.ChooseSchemes(s.ctx, &crewservice.ChooseSchemesInput{
		CrewID:    crew.ID,
		SchemeIDs: []string{"breakthrough"},
	})
	s.Require().NoError(err)

	saved, err := s.orch.SaveCrew(s.ctx, &crewservice.SaveCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)
	s.Equal(crew.ID, saved.Snapshot.ID)
	s.Equal([]string{"card_taelor", "card_ronin", "card_ronin"}, saved.Snapshot.RosterCardIDs)

	// Saving again overwrites the same slot
	_, err = s.orch.SaveCrew(s.ctx, &crewservice.SaveCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)

	list, err := s.orch.ListCrews(s.ctx, &crewservice.ListCrewsInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Snapshots, 1)

	loaded, err := s.orch.LoadCrew(s.ctx, &crewservice.LoadCrewInput{SnapshotID: crew.ID})
	s.Require().NoError(err)
	s.Empty(loaded.DroppedCardIDs)
	s.Equal("card_viktoria", loaded.Crew.Leader.ID)
	s.Equal("plant_explosives", loaded.Crew.StrategyID)
	s.Equal([]string{"breakthrough"}, loaded.Crew.ChosenSchemeIDs)
	s.Require().Len(loaded.Crew.Roster, 3)

	// Hydration mints fresh roster ids
	seen := make(map[string]bool)
	for _, entry := range loaded.Crew.Roster {
		s.False(seen[entry.RosterID])
		seen[entry.RosterID] = true
	}
}

func (s *OrchestratorTestSuite) TestLoadCrewDropsStaleReferences() {
	_, err := s.crewRepo.Create(s.ctx, crewlistrepo.CreateInput{
		Snapshot: &malifaux.CrewSnapshot{
			ID:              "crew_saved",
			PlayerID:        "player_1",
			LeaderID:        "card_viktoria",
			Budget:          50,
			RosterCardIDs:   []string{"card_ronin", "card_retired"},
			StrategyID:      "plant_explosives",
			SchemePoolIDs:   []string{"breakthrough", "scheme_retired"},
			ChosenSchemeIDs: []string{"breakthrough", "assassinate"},
		},
	})
	s.Require().NoError(err)

	loaded, err := s.orch.LoadCrew(s.ctx, &crewservice.LoadCrewInput{SnapshotID: "crew_saved"})
	s.Require().NoError(err)
	s.Equal([]string{"card_retired"}, loaded.DroppedCardIDs)
	s.Require().Len(loaded.Crew.Roster, 1)
	s.Equal("card_ronin", loaded.Crew.Roster[0].Card.ID)
	s.Equal([]string{"breakthrough"}, loaded.Crew.SchemePoolIDs)
	// assassinate was chosen but survives neither in the pool
	s.Equal([]string{"breakthrough"}, loaded.Crew.ChosenSchemeIDs)
}

func (s *OrchestratorTestSuite) TestLoadCrewMissingLeader() {
	_, err := s.crewRepo.Create(s.ctx, crewlistrepo.CreateInput{
		Snapshot: &malifaux.CrewSnapshot{
			ID:       "crew_saved",
			PlayerID: "player_1",
			LeaderID: "card_retired",
			Budget:   50,
		},
	})
	s.Require().NoError(err)

	_, err = s.orch.LoadCrew(s.ctx, &crewservice.LoadCrewInput{SnapshotID: "crew_saved"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestDeleteCrew() {
	crew := s.createCrew()
	_, err := s.orch.SaveCrew(s.ctx, &crewservice.SaveCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)

	_, err = s.orch.DeleteCrew(s.ctx, &crewservice.DeleteCrewInput{CrewID: crew.ID})
	s.Require().NoError(err)

	_, err = s.orch.GetCrew(s.ctx, &crewservice.GetCrewInput{CrewID: crew.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	list, err := s.orch.ListCrews(s.ctx, &crewservice.ListCrewsInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(list.Snapshots)

	_, err = s.orch.DeleteCrew(s.ctx, &crewservice.DeleteCrewInput{CrewID: "crew_ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

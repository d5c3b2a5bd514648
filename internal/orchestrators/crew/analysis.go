package crew

import (
	"context"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	cardsrepo "github.com/breachside/crew-api/internal/repositories/cards"
	objectivesrepo "github.com/breachside/crew-api/internal/repositories/objectives"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
)

// GetCrewMath returns the crew's cost breakdown under the hiring rules
func (o *Orchestrator) GetCrewMath(ctx context.Context, input *crewservice.GetCrewMathInput) (*crewservice.GetCrewMathOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	return &crewservice.GetCrewMathOutput{
		Math:      engine.ComputeCrewMath(state.Leader, state.Roster),
		Remaining: engine.RemainingBudget(state),
	}, nil
}

// AnalyzeSynergies runs the pairwise synergy analysis over the crew
func (o *Orchestrator) AnalyzeSynergies(ctx context.Context, input *crewservice.AnalyzeSynergiesInput) (*crewservice.AnalyzeSynergiesOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	return &crewservice.AnalyzeSynergiesOutput{
		Report: engine.AnalyzeSynergies(state.Leader, state.Roster),
	}, nil
}

// objectiveRequirements resolves the crew's selected objectives into a
// summed capability requirement map. Chosen schemes take precedence;
// before any are chosen the whole pool counts, since the crew must be
// able to play whatever it ends up revealing.
func (o *Orchestrator) objectiveRequirements(ctx context.Context, state *malifaux.CrewState) (map[malifaux.Capability]int, error) {
	var strategy *malifaux.Strategy
	if state.StrategyID != "" {
		strategyOutput, err := o.objectiveRepo.GetStrategy(ctx, objectivesrepo.GetStrategyInput{ID: state.StrategyID})
		if err != nil {
			return nil, err
		}
		strategy = strategyOutput.Strategy
	}

	schemeIDs := state.ChosenSchemeIDs
	if len(schemeIDs) == 0 {
		schemeIDs = state.SchemePoolIDs
	}

	schemes := make([]*malifaux.Scheme, 0, len(schemeIDs))
	for _, id := range schemeIDs {
		schemeOutput, err := o.objectiveRepo.GetScheme(ctx, objectivesrepo.GetSchemeInput{ID: id})
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, schemeOutput.Scheme)
	}

	if strategy == nil && len(schemes) == 0 {
		return nil, errors.FailedPrecondition("crew has no strategy or schemes to analyze against")
	}

	return engine.SumRequirements(strategy, schemes), nil
}

// AnalyzeGaps reports where the crew falls short of its objectives and
// recommends hires from the leader's pools to cover the shortfalls
func (o *Orchestrator) AnalyzeGaps(ctx context.Context, input *crewservice.AnalyzeGapsInput) (*crewservice.AnalyzeGapsOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	requirements, err := o.objectiveRequirements(ctx, state)
	if err != nil {
		return nil, err
	}

	poolOutput, err := o.cardRepo.ListHiringPool(ctx, cardsrepo.ListHiringPoolInput{Leader: state.Leader})
	if err != nil {
		return nil, err
	}

	report := engine.AnalyzeGaps(state.Models(), requirements)

	// Only models the crew could actually hire right now are worth
	// recommending
	candidates := make([]*malifaux.Card, 0, len(poolOutput.KeywordPool)+len(poolOutput.VersatilePool))
	for _, card := range append(poolOutput.KeywordPool, poolOutput.VersatilePool...) {
		if engine.CanHire(card, state) {
			candidates = append(candidates, card)
		}
	}

	return &crewservice.AnalyzeGapsOutput{
		Report:          report,
		Recommendations: engine.RecommendForGaps(candidates, report.Gaps),
	}, nil
}

// RecommendSchemePaths scores the schemes branching off the crew's
// chosen schemes against its aggregated capabilities
func (o *Orchestrator) RecommendSchemePaths(ctx context.Context, input *crewservice.RecommendSchemePathsInput) (*crewservice.RecommendSchemePathsOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	if len(state.ChosenSchemeIDs) == 0 {
		return nil, errors.FailedPrecondition("crew has no chosen schemes to branch from")
	}

	chosen := make(map[string]bool, len(state.ChosenSchemeIDs))
	for _, id := range state.ChosenSchemeIDs {
		chosen[id] = true
	}

	seen := make(map[string]bool)
	var branches []*malifaux.Scheme
	for _, id := range state.ChosenSchemeIDs {
		schemeOutput, err := o.objectiveRepo.GetScheme(ctx, objectivesrepo.GetSchemeInput{ID: id})
		if err != nil {
			return nil, err
		}
		for _, branchID := range schemeOutput.Scheme.BranchesTo {
			if chosen[branchID] || seen[branchID] {
				continue
			}
			seen[branchID] = true
			branchOutput, err := o.objectiveRepo.GetScheme(ctx, objectivesrepo.GetSchemeInput{ID: branchID})
			if err != nil {
				return nil, err
			}
			branches = append(branches, branchOutput.Scheme)
		}
	}

	return &crewservice.RecommendSchemePathsOutput{
		Paths: engine.RecommendSchemePaths(state.Models(), branches),
	}, nil
}

package crew

import (
	"context"
	"strings"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	cardsrepo "github.com/breachside/crew-api/internal/repositories/cards"
	objectivesrepo "github.com/breachside/crew-api/internal/repositories/objectives"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
)

// favoredRoles resolves the roles the crew's objectives reward. Chosen
// schemes take precedence over the pool, mirroring the gap analysis.
func (o *Orchestrator) favoredRoles(ctx context.Context, state *malifaux.CrewState) (strategyRoles, schemeRoles []string, err error) {
	if state.StrategyID != "" {
		strategyOutput, err := o.objectiveRepo.GetStrategy(ctx, objectivesrepo.GetStrategyInput{ID: state.StrategyID})
		if err != nil {
			return nil, nil, err
		}
		strategyRoles = strategyOutput.Strategy.FavorsRoles
	}

	schemeIDs := state.ChosenSchemeIDs
	if len(schemeIDs) == 0 {
		schemeIDs = state.SchemePoolIDs
	}
	for _, id := range schemeIDs {
		schemeOutput, err := o.objectiveRepo.GetScheme(ctx, objectivesrepo.GetSchemeInput{ID: id})
		if err != nil {
			return nil, nil, err
		}
		schemeRoles = append(schemeRoles, schemeOutput.Scheme.FavorsRoles...)
	}

	return strategyRoles, schemeRoles, nil
}

// SuggestCrew fills the crew with the constructive heuristic, replacing
// whatever was hired before. The previous roster is not consulted; the
// suggester always builds from the leader and the objectives.
func (o *Orchestrator) SuggestCrew(ctx context.Context, input *crewservice.SuggestCrewInput) (*crewservice.SuggestCrewOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	snap, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	strategyRoles, schemeRoles, err := o.favoredRoles(ctx, snap)
	if err != nil {
		return nil, err
	}

	poolOutput, err := o.cardRepo.ListHiringPool(ctx, cardsrepo.ListHiringPoolInput{Leader: snap.Leader})
	if err != nil {
		return nil, err
	}

	roster := o.suggester.Suggest(engine.SuggestInput{
		Leader:        snap.Leader,
		Budget:        snap.Budget,
		KeywordPool:   poolOutput.KeywordPool,
		VersatilePool: poolOutput.VersatilePool,
		StrategyRoles: strategyRoles,
		SchemeRoles:   schemeRoles,
	})

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state.Roster = roster
	o.touch(state)

	return &crewservice.SuggestCrewOutput{Crew: state.Clone()}, nil
}

// GenerateCounterCrew builds an opposing crew tuned against this one.
// Candidate leaders come from every other faction; each brings its own
// keyword hiring pool for the roster build.
func (o *Orchestrator) GenerateCounterCrew(ctx context.Context, input *crewservice.GenerateCounterCrewInput) (*crewservice.GenerateCounterCrewOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	// An empty difficulty falls back to the well-matched preset
	if input.Difficulty != "" {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("difficulty", string(input.Difficulty), []string{
			string(engine.DifficultyWellMatched),
			string(engine.DifficultyChallenging),
			string(engine.DifficultyStrongest),
		}, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	leadersOutput, err := o.cardRepo.ListLeaders(ctx, cardsrepo.ListLeadersInput{})
	if err != nil {
		return nil, err
	}

	candidates := make([]*malifaux.Card, 0, len(leadersOutput.Leaders))
	pools := make(map[string][]*malifaux.Card, len(leadersOutput.Leaders))
	for _, candidate := range leadersOutput.Leaders {
		if candidate.ID == state.Leader.ID {
			continue
		}
		if strings.EqualFold(candidate.Faction, state.Leader.Faction) {
			continue
		}
		poolOutput, err := o.cardRepo.ListHiringPool(ctx, cardsrepo.ListHiringPoolInput{Leader: candidate})
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
		pools[candidate.ID] = poolOutput.KeywordPool
	}

	if len(candidates) == 0 {
		return nil, errors.FailedPrecondition("no opposing leaders available in the card set")
	}

	result, err := o.counterGen.Generate(engine.CounterCrewInput{
		PlayerLeader:     state.Leader,
		PlayerRoster:     state.Roster,
		CandidateLeaders: candidates,
		KeywordPools:     pools,
		Budget:           state.Budget,
		Difficulty:       input.Difficulty,
	})
	if err != nil {
		return nil, err
	}

	return &crewservice.GenerateCounterCrewOutput{Result: result}, nil
}

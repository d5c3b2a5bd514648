package crew

import (
	"context"
	"log/slog"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	cardsrepo "github.com/breachside/crew-api/internal/repositories/cards"
	crewlistrepo "github.com/breachside/crew-api/internal/repositories/crewlist"
	objectivesrepo "github.com/breachside/crew-api/internal/repositories/objectives"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
)

// serializeCrew reduces a crew to its snapshot form. Only ids survive;
// card data is re-resolved on load so saved crews pick up errata.
func serializeCrew(state *malifaux.CrewState) *malifaux.CrewSnapshot {
	rosterIDs := make([]string, 0, len(state.Roster))
	for _, entry := range state.Roster {
		rosterIDs = append(rosterIDs, entry.Card.ID)
	}

	return &malifaux.CrewSnapshot{
		ID:              state.ID,
		PlayerID:        state.PlayerID,
		LeaderID:        state.Leader.ID,
		Budget:          state.Budget,
		RosterCardIDs:   rosterIDs,
		StrategyID:      state.StrategyID,
		SchemePoolIDs:   append([]string{}, state.SchemePoolIDs...),
		ChosenSchemeIDs: append([]string{}, state.ChosenSchemeIDs...),
	}
}

// hydrateCrew rebuilds a live crew from a snapshot. The card set moves
// between seasons, so stale references are tolerated: roster cards that
// no longer resolve are dropped and reported, vanished objectives are
// cleared, and the chosen schemes are clamped back inside the pool. A
// missing leader is the one thing that cannot be repaired.
func (o *Orchestrator) hydrateCrew(ctx context.Context, snapshot *malifaux.CrewSnapshot) (*malifaux.CrewState, []string, error) {
	leaderOutput, err := o.cardRepo.Get(ctx, cardsrepo.GetInput{ID: snapshot.LeaderID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.FailedPreconditionf("leader %s no longer exists in the card set", snapshot.LeaderID)
		}
		return nil, nil, err
	}

	var dropped []string
	roster := make([]malifaux.RosterEntry, 0, len(snapshot.RosterCardIDs))
	for _, cardID := range snapshot.RosterCardIDs {
		cardOutput, err := o.cardRepo.Get(ctx, cardsrepo.GetInput{ID: cardID})
		if err != nil {
			if errors.IsNotFound(err) {
				dropped = append(dropped, cardID)
				continue
			}
			return nil, nil, err
		}
		roster = append(roster, malifaux.RosterEntry{
			RosterID: o.rosterIDGen.Generate(),
			Card:     cardOutput.Card,
		})
	}

	strategyID := snapshot.StrategyID
	if strategyID != "" {
		if _, err := o.objectiveRepo.GetStrategy(ctx, objectivesrepo.GetStrategyInput{ID: strategyID}); err != nil {
			if !errors.IsNotFound(err) {
				return nil, nil, err
			}
			slog.WarnContext(ctx, "dropping stale strategy from snapshot",
				"crew_id", snapshot.ID,
				"strategy_id", strategyID)
			strategyID = ""
		}
	}

	pool := make([]string, 0, len(snapshot.SchemePoolIDs))
	for _, id := range snapshot.SchemePoolIDs {
		if len(pool) == malifaux.SchemePoolLimit {
			break
		}
		if _, err := o.objectiveRepo.GetScheme(ctx, objectivesrepo.GetSchemeInput{ID: id}); err != nil {
			if !errors.IsNotFound(err) {
				return nil, nil, err
			}
			slog.WarnContext(ctx, "dropping stale scheme from snapshot",
				"crew_id", snapshot.ID,
				"scheme_id", id)
			continue
		}
		pool = append(pool, id)
	}

	inPool := make(map[string]bool, len(pool))
	for _, id := range pool {
		inPool[id] = true
	}
	chosen := make([]string, 0, malifaux.ChosenSchemeLimit)
	for _, id := range snapshot.ChosenSchemeIDs {
		if len(chosen) == malifaux.ChosenSchemeLimit {
			break
		}
		if inPool[id] {
			chosen = append(chosen, id)
		}
	}

	budget := snapshot.Budget
	if budget <= 0 {
		budget = malifaux.DefaultBudget
	}

	return &malifaux.CrewState{
		ID:              snapshot.ID,
		PlayerID:        snapshot.PlayerID,
		Leader:          leaderOutput.Card,
		Budget:          budget,
		Roster:          roster,
		StrategyID:      strategyID,
		SchemePoolIDs:   pool,
		ChosenSchemeIDs: chosen,
		CreatedAt:       snapshot.CreatedAt,
		UpdatedAt:       o.clock.Now().Unix(),
	}, dropped, nil
}

// SaveCrew persists the crew as a snapshot. A crew has one save slot;
// saving again overwrites it.
func (o *Orchestrator) SaveCrew(ctx context.Context, input *crewservice.SaveCrewInput) (*crewservice.SaveCrewOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	snapshot := serializeCrew(state)

	updateOutput, err := o.crewRepo.Update(ctx, crewlistrepo.UpdateInput{Snapshot: snapshot})
	if err == nil {
		return &crewservice.SaveCrewOutput{Snapshot: updateOutput.Snapshot}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	createOutput, err := o.crewRepo.Create(ctx, crewlistrepo.CreateInput{Snapshot: snapshot})
	if err != nil {
		return nil, err
	}

	return &crewservice.SaveCrewOutput{Snapshot: createOutput.Snapshot}, nil
}

// LoadCrew restores a saved snapshot into a live crew, replacing any
// in-memory crew with the same id
func (o *Orchestrator) LoadCrew(ctx context.Context, input *crewservice.LoadCrewInput) (*crewservice.LoadCrewOutput, error) {
	if input == nil || input.SnapshotID == "" {
		return nil, errors.InvalidArgument("snapshotID is required")
	}

	getOutput, err := o.crewRepo.Get(ctx, crewlistrepo.GetInput{ID: input.SnapshotID})
	if err != nil {
		return nil, err
	}

	state, dropped, err := o.hydrateCrew(ctx, getOutput.Snapshot)
	if err != nil {
		return nil, err
	}

	if len(dropped) > 0 {
		slog.InfoContext(ctx, "dropped stale cards while loading crew",
			"crew_id", state.ID,
			"dropped", dropped)
	}

	o.mu.Lock()
	o.crews[state.ID] = state
	out := state.Clone()
	o.mu.Unlock()

	return &crewservice.LoadCrewOutput{Crew: out, DroppedCardIDs: dropped}, nil
}

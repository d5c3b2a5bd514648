// Package crew implements the crew building orchestrator
package crew

import (
	"context"
	"sync"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	"github.com/breachside/crew-api/internal/pkg/clock"
	"github.com/breachside/crew-api/internal/pkg/idgen"
	cardsrepo "github.com/breachside/crew-api/internal/repositories/cards"
	crewlistrepo "github.com/breachside/crew-api/internal/repositories/crewlist"
	objectivesrepo "github.com/breachside/crew-api/internal/repositories/objectives"
	crewservice "github.com/breachside/crew-api/internal/services/crew"
)

// Config holds the dependencies for the crew orchestrator
type Config struct {
	CardRepo      cardsrepo.Repository
	ObjectiveRepo objectivesrepo.Repository
	CrewRepo      crewlistrepo.Repository
	Suggester     *engine.Suggester
	CounterGen    *engine.CounterGenerator
	// IDGenerator mints crew ids; RosterIDGenerator mints the synthetic
	// per-hire ids that disambiguate duplicate minions.
	IDGenerator       idgen.Generator
	RosterIDGenerator idgen.Generator
	Clock             clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CardRepo == nil {
		vb.RequiredField("CardRepo")
	}
	if c.ObjectiveRepo == nil {
		vb.RequiredField("ObjectiveRepo")
	}
	if c.CrewRepo == nil {
		vb.RequiredField("CrewRepo")
	}
	if c.Suggester == nil {
		vb.RequiredField("Suggester")
	}
	if c.CounterGen == nil {
		vb.RequiredField("CounterGen")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RosterIDGenerator == nil {
		vb.RequiredField("RosterIDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the crew.Service interface. Crews under
// construction live in memory, keyed by crew id; only SaveCrew touches
// the snapshot store.
type Orchestrator struct {
	cardRepo      cardsrepo.Repository
	objectiveRepo objectivesrepo.Repository
	crewRepo      crewlistrepo.Repository
	suggester     *engine.Suggester
	counterGen    *engine.CounterGenerator
	idGen         idgen.Generator
	rosterIDGen   idgen.Generator
	clock         clock.Clock

	mu    sync.RWMutex
	crews map[string]*malifaux.CrewState
}

// New creates a new crew orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		cardRepo:      cfg.CardRepo,
		objectiveRepo: cfg.ObjectiveRepo,
		crewRepo:      cfg.CrewRepo,
		suggester:     cfg.Suggester,
		counterGen:    cfg.CounterGen,
		idGen:         cfg.IDGenerator,
		rosterIDGen:   cfg.RosterIDGenerator,
		clock:         c,
		crews:         make(map[string]*malifaux.CrewState),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ crewservice.Service = (*Orchestrator)(nil)

// getCrew returns the live in-memory crew or a NotFound error. The
// pointer may only be read or mutated while holding o.mu; anything that
// leaves the orchestrator must be a Clone taken under the lock.
func (o *Orchestrator) getCrew(crewID string) (*malifaux.CrewState, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	state, ok := o.crews[crewID]
	if !ok {
		return nil, errors.NotFoundf("crew with ID %s not found", crewID)
	}
	return state, nil
}

// snapshotCrew returns a deep copy taken under the read lock. Read
// operations work on the copy so handlers can encode it after the lock
// is gone.
func (o *Orchestrator) snapshotCrew(crewID string) (*malifaux.CrewState, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	state, ok := o.crews[crewID]
	if !ok {
		return nil, errors.NotFoundf("crew with ID %s not found", crewID)
	}
	return state.Clone(), nil
}

// touch bumps the crew's updated timestamp
func (o *Orchestrator) touch(state *malifaux.CrewState) {
	state.UpdatedAt = o.clock.Now().Unix()
}

// Crew lifecycle

// CreateCrew starts a new crew led by the given master
func (o *Orchestrator) CreateCrew(ctx context.Context, input *crewservice.CreateCrewInput) (*crewservice.CreateCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("leaderID", input.LeaderID, vb)
	if input.Budget < 0 {
		vb.InvalidField("budget", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	cardOutput, err := o.cardRepo.Get(ctx, cardsrepo.GetInput{ID: input.LeaderID})
	if err != nil {
		return nil, err
	}
	leader := cardOutput.Card

	if leader.Station() != malifaux.StationMaster {
		return nil, errors.InvalidArgumentf("card %s is not a master", leader.Name)
	}
	if leader.PrimaryKeyword() == "" {
		return nil, errors.InvalidArgumentf("master %s has no primary keyword to hire from", leader.Name)
	}

	budget := input.Budget
	if budget == 0 {
		budget = malifaux.DefaultBudget
	}

	now := o.clock.Now().Unix()
	state := &malifaux.CrewState{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		Leader:    leader,
		Budget:    budget,
		Roster:    []malifaux.RosterEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	o.mu.Lock()
	o.crews[state.ID] = state
	out := state.Clone()
	o.mu.Unlock()

	return &crewservice.CreateCrewOutput{Crew: out}, nil
}

// GetCrew returns a crew under construction
func (o *Orchestrator) GetCrew(ctx context.Context, input *crewservice.GetCrewInput) (*crewservice.GetCrewOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.snapshotCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	return &crewservice.GetCrewOutput{Crew: state}, nil
}

// ListCrews lists a player's saved crew snapshots
func (o *Orchestrator) ListCrews(ctx context.Context, input *crewservice.ListCrewsInput) (*crewservice.ListCrewsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	listOutput, err := o.crewRepo.ListByPlayer(ctx, crewlistrepo.ListByPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &crewservice.ListCrewsOutput{Snapshots: listOutput.Snapshots}, nil
}

// DeleteCrew discards a crew and its saved snapshot, if any
func (o *Orchestrator) DeleteCrew(ctx context.Context, input *crewservice.DeleteCrewInput) (*crewservice.DeleteCrewOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	o.mu.Lock()
	_, inMemory := o.crews[input.CrewID]
	delete(o.crews, input.CrewID)
	o.mu.Unlock()

	// Snapshots share the crew's id, so the saved copy goes too
	_, err := o.crewRepo.Delete(ctx, crewlistrepo.DeleteInput{ID: input.CrewID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	if !inMemory && errors.IsNotFound(err) {
		return nil, errors.NotFoundf("crew with ID %s not found", input.CrewID)
	}

	return &crewservice.DeleteCrewOutput{}, nil
}

// Roster mutation

// AddModel hires a card into the crew. An illegal hire is not an error;
// the block reason comes back in the output and the crew is unchanged.
func (o *Orchestrator) AddModel(ctx context.Context, input *crewservice.AddModelInput) (*crewservice.AddModelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("crewID", input.CrewID, vb)
	errors.ValidateRequired("cardID", input.CardID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	cardOutput, err := o.cardRepo.Get(ctx, cardsrepo.GetInput{ID: input.CardID})
	if err != nil {
		return nil, err
	}
	card := cardOutput.Card

	if !card.IsHireable() {
		return nil, errors.InvalidArgumentf("card %s cannot be hired", card.Name)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if reason := engine.CheckHire(card, state); reason != engine.BlockNone {
		return &crewservice.AddModelOutput{Crew: state.Clone(), BlockReason: reason}, nil
	}

	entry := malifaux.RosterEntry{
		RosterID: o.rosterIDGen.Generate(),
		Card:     card,
	}
	state.Roster = append(state.Roster, entry)
	o.touch(state)

	return &crewservice.AddModelOutput{
		Crew:        state.Clone(),
		RosterID:    entry.RosterID,
		BlockReason: engine.BlockNone,
	}, nil
}

// RemoveModel fires a hired model by its roster id
func (o *Orchestrator) RemoveModel(ctx context.Context, input *crewservice.RemoveModelInput) (*crewservice.RemoveModelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("crewID", input.CrewID, vb)
	errors.ValidateRequired("rosterID", input.RosterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for i, entry := range state.Roster {
		if entry.RosterID == input.RosterID {
			state.Roster = append(state.Roster[:i], state.Roster[i+1:]...)
			o.touch(state)
			return &crewservice.RemoveModelOutput{Crew: state.Clone()}, nil
		}
	}

	return nil, errors.NotFoundf("roster entry %s not found in crew %s", input.RosterID, input.CrewID)
}

// ClearRoster fires every hired model, keeping the leader and objectives
func (o *Orchestrator) ClearRoster(ctx context.Context, input *crewservice.ClearRosterInput) (*crewservice.ClearRosterOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state.Roster = []malifaux.RosterEntry{}
	o.touch(state)

	return &crewservice.ClearRosterOutput{Crew: state.Clone()}, nil
}

// Objective selection

// SetStrategy sets the crew's strategy after validating it exists
func (o *Orchestrator) SetStrategy(ctx context.Context, input *crewservice.SetStrategyInput) (*crewservice.SetStrategyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("crewID", input.CrewID, vb)
	errors.ValidateRequired("strategyID", input.StrategyID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	if _, err := o.objectiveRepo.GetStrategy(ctx, objectivesrepo.GetStrategyInput{ID: input.StrategyID}); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state.StrategyID = input.StrategyID
	o.touch(state)

	return &crewservice.SetStrategyOutput{Crew: state.Clone()}, nil
}

// SetSchemePool replaces the crew's scheme pool. Chosen schemes that
// fall out of the new pool are dropped.
func (o *Orchestrator) SetSchemePool(ctx context.Context, input *crewservice.SetSchemePoolInput) (*crewservice.SetSchemePoolOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	if len(input.SchemeIDs) > malifaux.SchemePoolLimit {
		return nil, errors.InvalidArgumentf("scheme pool holds at most %d schemes, got %d", malifaux.SchemePoolLimit, len(input.SchemeIDs))
	}

	seen := make(map[string]bool, len(input.SchemeIDs))
	for _, id := range input.SchemeIDs {
		if seen[id] {
			return nil, errors.InvalidArgumentf("scheme %s appears twice in the pool", id)
		}
		seen[id] = true
		if _, err := o.objectiveRepo.GetScheme(ctx, objectivesrepo.GetSchemeInput{ID: id}); err != nil {
			return nil, err
		}
	}

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state.SchemePoolIDs = append([]string{}, input.SchemeIDs...)

	kept := make([]string, 0, len(state.ChosenSchemeIDs))
	for _, id := range state.ChosenSchemeIDs {
		if seen[id] {
			kept = append(kept, id)
		}
	}
	state.ChosenSchemeIDs = kept
	o.touch(state)

	return &crewservice.SetSchemePoolOutput{Crew: state.Clone()}, nil
}

// ChooseSchemes picks the crew's schemes from its pool
func (o *Orchestrator) ChooseSchemes(ctx context.Context, input *crewservice.ChooseSchemesInput) (*crewservice.ChooseSchemesOutput, error) {
	if input == nil || input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	if len(input.SchemeIDs) > malifaux.ChosenSchemeLimit {
		return nil, errors.InvalidArgumentf("a crew reveals at most %d schemes, got %d", malifaux.ChosenSchemeLimit, len(input.SchemeIDs))
	}

	state, err := o.getCrew(input.CrewID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	pool := make(map[string]bool, len(state.SchemePoolIDs))
	for _, id := range state.SchemePoolIDs {
		pool[id] = true
	}

	seen := make(map[string]bool, len(input.SchemeIDs))
	for _, id := range input.SchemeIDs {
		if !pool[id] {
			return nil, errors.InvalidArgumentf("scheme %s is not in the crew's pool", id)
		}
		if seen[id] {
			return nil, errors.InvalidArgumentf("scheme %s chosen twice", id)
		}
		seen[id] = true
	}

	state.ChosenSchemeIDs = append([]string{}, input.SchemeIDs...)
	o.touch(state)

	return &crewservice.ChooseSchemesOutput{Crew: state.Clone()}, nil
}

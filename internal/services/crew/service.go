// Package crew defines the interface for crew building operations
package crew

//go:generate mockgen -destination=mock/mock_service.go -package=crewmock github.com/breachside/crew-api/internal/services/crew Service

import (
	"context"

	"github.com/breachside/crew-api/internal/engine"
	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Service defines the interface for crew building operations
type Service interface {
	// Crew lifecycle
	CreateCrew(ctx context.Context, input *CreateCrewInput) (*CreateCrewOutput, error)
	GetCrew(ctx context.Context, input *GetCrewInput) (*GetCrewOutput, error)
	ListCrews(ctx context.Context, input *ListCrewsInput) (*ListCrewsOutput, error)
	DeleteCrew(ctx context.Context, input *DeleteCrewInput) (*DeleteCrewOutput, error)

	// Roster mutation
	AddModel(ctx context.Context, input *AddModelInput) (*AddModelOutput, error)
	RemoveModel(ctx context.Context, input *RemoveModelInput) (*RemoveModelOutput, error)
	ClearRoster(ctx context.Context, input *ClearRosterInput) (*ClearRosterOutput, error)

	// Objective selection
	SetStrategy(ctx context.Context, input *SetStrategyInput) (*SetStrategyOutput, error)
	SetSchemePool(ctx context.Context, input *SetSchemePoolInput) (*SetSchemePoolOutput, error)
	ChooseSchemes(ctx context.Context, input *ChooseSchemesInput) (*ChooseSchemesOutput, error)

	// Analysis
	GetCrewMath(ctx context.Context, input *GetCrewMathInput) (*GetCrewMathOutput, error)
	AnalyzeSynergies(ctx context.Context, input *AnalyzeSynergiesInput) (*AnalyzeSynergiesOutput, error)
	AnalyzeGaps(ctx context.Context, input *AnalyzeGapsInput) (*AnalyzeGapsOutput, error)
	RecommendSchemePaths(ctx context.Context, input *RecommendSchemePathsInput) (*RecommendSchemePathsOutput, error)

	// Automated building
	SuggestCrew(ctx context.Context, input *SuggestCrewInput) (*SuggestCrewOutput, error)
	GenerateCounterCrew(ctx context.Context, input *GenerateCounterCrewInput) (*GenerateCounterCrewOutput, error)

	// Persistence
	SaveCrew(ctx context.Context, input *SaveCrewInput) (*SaveCrewOutput, error)
	LoadCrew(ctx context.Context, input *LoadCrewInput) (*LoadCrewOutput, error)
}

// Crew lifecycle types

// CreateCrewInput defines the request for creating a crew
type CreateCrewInput struct {
	PlayerID string
	LeaderID string
	Budget   int // 0 means the standard 50
}

// CreateCrewOutput defines the response for creating a crew
type CreateCrewOutput struct {
	Crew *malifaux.CrewState
}

// GetCrewInput defines the request for getting a crew
type GetCrewInput struct {
	CrewID string
}

// GetCrewOutput defines the response for getting a crew
type GetCrewOutput struct {
	Crew *malifaux.CrewState
}

// ListCrewsInput defines the request for listing a player's saved crews
type ListCrewsInput struct {
	PlayerID string
}

// ListCrewsOutput defines the response for listing a player's saved crews
type ListCrewsOutput struct {
	Snapshots []*malifaux.CrewSnapshot
}

// DeleteCrewInput defines the request for deleting a crew
type DeleteCrewInput struct {
	CrewID string
}

// DeleteCrewOutput defines the response for deleting a crew
type DeleteCrewOutput struct{}

// Roster mutation types

// AddModelInput defines the request for hiring a model into a crew
type AddModelInput struct {
	CrewID string
	CardID string
}

// AddModelOutput defines the response for hiring a model. BlockReason is
// set when the hire was refused; the crew is returned unchanged in that
// case so clients can re-render.
type AddModelOutput struct {
	Crew        *malifaux.CrewState
	RosterID    string
	BlockReason engine.BlockReason
}

// RemoveModelInput defines the request for removing a hired model
type RemoveModelInput struct {
	CrewID   string
	RosterID string
}

// RemoveModelOutput defines the response for removing a hired model
type RemoveModelOutput struct {
	Crew *malifaux.CrewState
}

// ClearRosterInput defines the request for clearing all hires
type ClearRosterInput struct {
	CrewID string
}

// ClearRosterOutput defines the response for clearing all hires
type ClearRosterOutput struct {
	Crew *malifaux.CrewState
}

// Objective selection types

// SetStrategyInput defines the request for setting the crew's strategy
type SetStrategyInput struct {
	CrewID     string
	StrategyID string
}

// SetStrategyOutput defines the response for setting the crew's strategy
type SetStrategyOutput struct {
	Crew *malifaux.CrewState
}

// SetSchemePoolInput defines the request for setting the scheme pool
type SetSchemePoolInput struct {
	CrewID    string
	SchemeIDs []string
}

// SetSchemePoolOutput defines the response for setting the scheme pool
type SetSchemePoolOutput struct {
	Crew *malifaux.CrewState
}

// ChooseSchemesInput defines the request for choosing schemes from the pool
type ChooseSchemesInput struct {
	CrewID    string
	SchemeIDs []string
}

// ChooseSchemesOutput defines the response for choosing schemes
type ChooseSchemesOutput struct {
	Crew *malifaux.CrewState
}

// Analysis types

// GetCrewMathInput defines the request for crew cost math
type GetCrewMathInput struct {
	CrewID string
}

// GetCrewMathOutput defines the response for crew cost math
type GetCrewMathOutput struct {
	Math      engine.CrewMath
	Remaining int
}

// AnalyzeSynergiesInput defines the request for synergy analysis
type AnalyzeSynergiesInput struct {
	CrewID string
}

// AnalyzeSynergiesOutput defines the response for synergy analysis
type AnalyzeSynergiesOutput struct {
	Report engine.SynergyReport
}

// AnalyzeGapsInput defines the request for objective gap analysis
type AnalyzeGapsInput struct {
	CrewID string
}

// AnalyzeGapsOutput defines the response for objective gap analysis
type AnalyzeGapsOutput struct {
	Report          engine.GapReport
	Recommendations []engine.Recommendation
}

// RecommendSchemePathsInput defines the request for scheme branch scoring
type RecommendSchemePathsInput struct {
	CrewID string
}

// RecommendSchemePathsOutput defines the response for scheme branch scoring
type RecommendSchemePathsOutput struct {
	Paths []engine.SchemePathScore
}

// Automated building types

// SuggestCrewInput defines the request for filling a crew automatically
type SuggestCrewInput struct {
	CrewID string
}

// SuggestCrewOutput defines the response for filling a crew automatically
type SuggestCrewOutput struct {
	Crew *malifaux.CrewState
}

// GenerateCounterCrewInput defines the request for building an opposing crew
type GenerateCounterCrewInput struct {
	CrewID     string
	Difficulty engine.Difficulty
}

// GenerateCounterCrewOutput defines the response for building an opposing crew
type GenerateCounterCrewOutput struct {
	Result *engine.CounterCrewResult
}

// Persistence types

// SaveCrewInput defines the request for persisting a crew snapshot
type SaveCrewInput struct {
	CrewID string
}

// SaveCrewOutput defines the response for persisting a crew snapshot
type SaveCrewOutput struct {
	Snapshot *malifaux.CrewSnapshot
}

// LoadCrewInput defines the request for restoring a saved crew
type LoadCrewInput struct {
	SnapshotID string
}

// LoadCrewOutput defines the response for restoring a saved crew.
// DroppedCardIDs lists roster ids from the snapshot that no longer
// resolve against the card store.
type LoadCrewOutput struct {
	Crew           *malifaux.CrewState
	DroppedCardIDs []string
}

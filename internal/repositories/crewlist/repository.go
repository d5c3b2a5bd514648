// Package crewlist defines the interface for saved-crew persistence.
// Crews are stored as compact snapshots holding only ids; the orchestrator
// re-resolves them against the card and objective stores on load.
package crewlist

//go:generate mockgen -destination=mock/mock_repository.go -package=crewlistmock github.com/breachside/crew-api/internal/repositories/crewlist Repository

import (
	"context"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Repository defines the interface for crew snapshot persistence
type Repository interface {
	// Create stores a new crew snapshot and stamps its timestamps
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the snapshot ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a crew snapshot by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the snapshot doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing snapshot and bumps its updated timestamp
	// Returns errors.NotFound if the snapshot doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a snapshot and its player index entry
	// Returns errors.NotFound if the snapshot doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayer returns every snapshot saved by a player
	// Returns errors.InvalidArgument for empty player IDs
	ListByPlayer(ctx context.Context, input ListByPlayerInput) (*ListByPlayerOutput, error)
}

// CreateInput defines the input for creating a snapshot
type CreateInput struct {
	Snapshot *malifaux.CrewSnapshot
}

// CreateOutput defines the output for creating a snapshot
type CreateOutput struct {
	Snapshot *malifaux.CrewSnapshot
}

// GetInput defines the input for getting a snapshot
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a snapshot
type GetOutput struct {
	Snapshot *malifaux.CrewSnapshot
}

// UpdateInput defines the input for updating a snapshot
type UpdateInput struct {
	Snapshot *malifaux.CrewSnapshot
}

// UpdateOutput defines the output for updating a snapshot
type UpdateOutput struct {
	Snapshot *malifaux.CrewSnapshot
}

// DeleteInput defines the input for deleting a snapshot
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a snapshot
type DeleteOutput struct{}

// ListByPlayerInput defines the input for listing a player's snapshots
type ListByPlayerInput struct {
	PlayerID string
}

// ListByPlayerOutput defines the output for listing a player's snapshots
type ListByPlayerOutput struct {
	Snapshots []*malifaux.CrewSnapshot
}

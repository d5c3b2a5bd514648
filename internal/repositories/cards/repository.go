// Package cards defines the read-only store for the card catalog. The
// catalog is loaded once at startup from the static data set and never
// mutated; every lookup returns shared pointers into it.
package cards

//go:generate mockgen -destination=mock/mock_repository.go -package=cardsmock github.com/breachside/crew-api/internal/repositories/cards Repository

import (
	"context"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Repository provides lookup over the card catalog
type Repository interface {
	// Get retrieves a card by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the card doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every card in the catalog, stable order
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListLeaders returns every Master with a primary keyword, optionally
	// filtered by faction
	ListLeaders(ctx context.Context, input ListLeadersInput) (*ListLeadersOutput, error)

	// ListHiringPool returns the hireable cards available to a leader:
	// its keyword pool and the faction's versatile pool
	// Returns errors.InvalidArgument when the leader is nil
	ListHiringPool(ctx context.Context, input ListHiringPoolInput) (*ListHiringPoolOutput, error)
}

// GetInput defines the input for getting a card
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a card
type GetOutput struct {
	Card *malifaux.Card
}

// ListInput defines the input for listing cards
type ListInput struct{}

// ListOutput defines the output for listing cards
type ListOutput struct {
	Cards []*malifaux.Card
}

// ListLeadersInput defines the input for listing leaders
type ListLeadersInput struct {
	Faction string
}

// ListLeadersOutput defines the output for listing leaders
type ListLeadersOutput struct {
	Leaders []*malifaux.Card
}

// ListHiringPoolInput defines the input for listing a leader's pools
type ListHiringPoolInput struct {
	Leader *malifaux.Card
}

// ListHiringPoolOutput defines the output for listing a leader's pools
type ListHiringPoolOutput struct {
	KeywordPool   []*malifaux.Card
	VersatilePool []*malifaux.Card
}

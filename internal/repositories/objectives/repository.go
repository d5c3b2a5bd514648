// Package objectives defines the read-only store for strategy and scheme
// definitions. The data is static season content compiled into the binary;
// the interface exists so consumers stay testable and a future data-file
// loader can slot in without touching them.
package objectives

//go:generate mockgen -destination=mock/mock_repository.go -package=objectivesmock github.com/breachside/crew-api/internal/repositories/objectives Repository

import (
	"context"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Repository provides lookup over the season's strategies and schemes
type Repository interface {
	// GetStrategy retrieves a strategy by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the strategy doesn't exist
	GetStrategy(ctx context.Context, input GetStrategyInput) (*GetStrategyOutput, error)

	// ListStrategies returns every strategy in the season, stable order
	ListStrategies(ctx context.Context, input ListStrategiesInput) (*ListStrategiesOutput, error)

	// GetScheme retrieves a scheme by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the scheme doesn't exist
	GetScheme(ctx context.Context, input GetSchemeInput) (*GetSchemeOutput, error)

	// ListSchemes returns every scheme in the season, stable order
	ListSchemes(ctx context.Context, input ListSchemesInput) (*ListSchemesOutput, error)
}

// GetStrategyInput defines the input for getting a strategy
type GetStrategyInput struct {
	ID string
}

// GetStrategyOutput defines the output for getting a strategy
type GetStrategyOutput struct {
	Strategy *malifaux.Strategy
}

// ListStrategiesInput defines the input for listing strategies
type ListStrategiesInput struct{}

// ListStrategiesOutput defines the output for listing strategies
type ListStrategiesOutput struct {
	Strategies []*malifaux.Strategy
}

// GetSchemeInput defines the input for getting a scheme
type GetSchemeInput struct {
	ID string
}

// GetSchemeOutput defines the output for getting a scheme
type GetSchemeOutput struct {
	Scheme *malifaux.Scheme
}

// ListSchemesInput defines the input for listing schemes
type ListSchemesInput struct{}

// ListSchemesOutput defines the output for listing schemes
type ListSchemesOutput struct {
	Schemes []*malifaux.Scheme
}

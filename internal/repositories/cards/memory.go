package cards

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
)

const errCardIDEmpty = "card ID cannot be empty"

// memoryRepository serves the catalog from memory. The catalog is
// immutable after construction, so lookups need no locking.
type memoryRepository struct {
	byID    map[string]*malifaux.Card
	ordered []*malifaux.Card

	warnings []string
}

// NewMemoryRepository builds a repository over the given catalog. Data
// problems in the catalog are recorded as warnings and logged; they never
// fail construction, matching the advisory error taxonomy of the rest of
// the system.
func NewMemoryRepository(catalog []*malifaux.Card) Repository {
	repo := &memoryRepository{
		byID:    make(map[string]*malifaux.Card, len(catalog)),
		ordered: make([]*malifaux.Card, 0, len(catalog)),
	}

	for _, card := range catalog {
		if card == nil {
			continue
		}
		if card.ID == "" {
			repo.warn("card %q has no id, skipped", card.Name)
			continue
		}
		if _, dup := repo.byID[card.ID]; dup {
			repo.warn("duplicate card id %s, keeping first", card.ID)
			continue
		}
		repo.audit(card)
		repo.byID[card.ID] = card
		repo.ordered = append(repo.ordered, card)
	}

	sort.SliceStable(repo.ordered, func(i, j int) bool {
		return repo.ordered[i].ID < repo.ordered[j].ID
	})

	if len(repo.warnings) > 0 {
		slog.Warn("card catalog loaded with data issues",
			"cards", len(repo.ordered),
			"warnings", len(repo.warnings))
	} else {
		slog.Info("card catalog loaded", "cards", len(repo.ordered))
	}

	return repo
}

// LoadCatalog reads a card catalog from a JSON file
func LoadCatalog(path string) ([]*malifaux.Card, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read card catalog %s", path)
	}

	var catalog []*malifaux.Card
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, errors.Wrap(err, "failed to parse card catalog")
	}
	return catalog, nil
}

// NewMemoryRepositoryFromFile loads the catalog file and builds the
// repository over it
func NewMemoryRepositoryFromFile(path string) (Repository, error) {
	catalog, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(catalog), nil
}

// audit records the per-card data-quality checks. None of these block
// loading; a card with a missing cost simply hires for zero until the
// data set is repaired.
func (r *memoryRepository) audit(card *malifaux.Card) {
	if card.CardType != malifaux.CardTypeModel {
		return
	}
	if card.IsHireable() && card.Cost == nil {
		r.warn("hireable card %s (%s) has no cost", card.ID, card.Name)
	}
	if len(card.Keywords) == 0 {
		r.warn("model %s (%s) has no keywords", card.ID, card.Name)
	}
	if card.Station() == malifaux.StationUnknown {
		r.warn("model %s (%s) has no station characteristic", card.ID, card.Name)
	}
}

func (r *memoryRepository) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Warnings exposes the load-time audit for the concrete type. Callers
// holding the interface don't need it; the server logs it at startup.
func (r *memoryRepository) Warnings() []string {
	return r.warnings
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCardIDEmpty)
	}
	card, ok := r.byID[input.ID]
	if !ok {
		return nil, errors.NotFoundf("card %s not found", input.ID)
	}
	return &GetOutput{Card: card}, nil
}

func (r *memoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	return &ListOutput{Cards: r.ordered}, nil
}

func (r *memoryRepository) ListLeaders(_ context.Context, input ListLeadersInput) (*ListLeadersOutput, error) {
	var leaders []*malifaux.Card
	for _, card := range r.ordered {
		if card.CardType != malifaux.CardTypeModel {
			continue
		}
		if card.Station() != malifaux.StationMaster {
			continue
		}
		if card.PrimaryKeyword() == "" {
			continue
		}
		if input.Faction != "" && !strings.EqualFold(card.Faction, input.Faction) {
			continue
		}
		leaders = append(leaders, card)
	}
	return &ListLeadersOutput{Leaders: leaders}, nil
}

func (r *memoryRepository) ListHiringPool(_ context.Context, input ListHiringPoolInput) (*ListHiringPoolOutput, error) {
	if input.Leader == nil {
		return nil, errors.InvalidArgument("leader is required")
	}

	primary := input.Leader.PrimaryKeyword()
	out := &ListHiringPoolOutput{}

	for _, card := range r.ordered {
		if !card.IsHireable() {
			continue
		}
		switch {
		case primary != "" && card.HasKeyword(primary):
			out.KeywordPool = append(out.KeywordPool, card)
		case card.IsVersatile() && strings.EqualFold(card.Faction, input.Leader.Faction):
			out.VersatilePool = append(out.VersatilePool, card)
		}
	}
	return out, nil
}

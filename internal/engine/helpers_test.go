package engine_test

import (
	"fmt"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

func intp(v int) *int { return &v }

// newLeader builds a Master card anchoring the given keyword
func newLeader(id, name, keyword string) *malifaux.Card {
	return &malifaux.Card{
		ID:              id,
		Name:            name,
		CardType:        malifaux.CardTypeModel,
		Characteristics: []string{"Master"},
		Keywords:        []string{keyword},
	}
}

// newModel builds a hireable card with the given station, keyword, and cost
func newModel(id, name, station, keyword string, cost int) *malifaux.Card {
	return &malifaux.Card{
		ID:              id,
		Name:            name,
		CardType:        malifaux.CardTypeModel,
		Cost:            intp(cost),
		Characteristics: []string{station},
		Keywords:        []string{keyword},
	}
}

func withAbility(card *malifaux.Card, name, description string) *malifaux.Card {
	card.Abilities = append(card.Abilities, malifaux.Ability{Name: name, Description: description})
	return card
}

func withRoles(card *malifaux.Card, roles ...string) *malifaux.Card {
	card.Roles = append(card.Roles, roles...)
	return card
}

// roster wraps cards as roster entries with synthetic ids
func roster(cards ...*malifaux.Card) []malifaux.RosterEntry {
	entries := make([]malifaux.RosterEntry, 0, len(cards))
	for i, card := range cards {
		entries = append(entries, malifaux.RosterEntry{
			RosterID: fmt.Sprintf("roster_%d", i+1),
			Card:     card,
		})
	}
	return entries
}

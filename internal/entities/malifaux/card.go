// Package malifaux implements the Malifaux card and crew entities
package malifaux

import "strings"

// CardType identifies the broad category a card belongs to
type CardType string

// Card types
const (
	CardTypeModel     CardType = "MODEL"
	CardTypeCrewRules CardType = "CREW_RULES"
	CardTypeUpgrade   CardType = "UPGRADE"
)

// Station is a model's structural tier within a crew
type Station string

// Stations
const (
	StationMaster   Station = "Master"
	StationHenchman Station = "Henchman"
	StationEnforcer Station = "Enforcer"
	StationMinion   Station = "Minion"
	StationTotem    Station = "Totem"
	StationPeon     Station = "Peon"
	StationUnknown  Station = "Unknown"
)

// Ability is a named rules text block on a card
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Action is an attack or tactical action printed on a card.
// Damage is kept as the structured min/moderate/severe track when the
// source data has one; free-text damage stays in Description.
type Action struct {
	Name        string       `json:"name"`
	Range       int          `json:"range"`
	Description string       `json:"description"`
	Damage      *DamageTrack `json:"damage,omitempty"`
}

// DamageTrack is the three-step damage spread of an attack
type DamageTrack struct {
	Min      int `json:"min"`
	Moderate int `json:"moderate"`
	Severe   int `json:"severe"`
}

// Card represents a single game card as loaded from the static data set.
// NOTE: This is a data-only struct. All capability, hiring, and synergy
// math is done by internal/engine, not here.
type Card struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Faction         string    `json:"faction"`
	CardType        CardType  `json:"card_type"`
	Cost            *int      `json:"cost,omitempty"`
	Defense         *int      `json:"df,omitempty"`
	Willpower       *int      `json:"wp,omitempty"`
	Speed           *int      `json:"mv,omitempty"`
	Size            *int      `json:"sz,omitempty"`
	Health          *int      `json:"health,omitempty"`
	Characteristics []string  `json:"characteristics"`
	Keywords        []string  `json:"keywords"`
	Roles           []string  `json:"roles"`
	MinionLimit     int       `json:"minion_limit,omitempty"`
	Abilities       []Ability `json:"abilities"`
	AttackActions   []Action  `json:"attack_actions"`
	TacticalActions []Action  `json:"tactical_actions"`
}

// Keywords that mark hiring pools rather than crew affiliation
const (
	KeywordVersatile = "Versatile"
)

// genericKeywords never count as a crew's primary keyword
var genericKeywords = map[string]bool{
	"Versatile": true,
	"Living":    true,
	"Undead":    true,
	"Construct": true,
	"Beast":     true,
	"Spirit":    true,
}

// Station derives the card's station from its characteristics
func (c *Card) Station() Station {
	for _, s := range []Station{StationMaster, StationHenchman, StationEnforcer, StationTotem, StationMinion, StationPeon} {
		if c.HasCharacteristic(string(s)) {
			return s
		}
	}
	return StationUnknown
}

// HasCharacteristic reports whether the card carries the given
// characteristic tag. Parenthesized qualifiers are ignored, so
// "Totem (Viktoria)" matches "Totem".
func (c *Card) HasCharacteristic(name string) bool {
	for _, ch := range c.Characteristics {
		base := ch
		if i := strings.IndexByte(base, '('); i >= 0 {
			base = strings.TrimSpace(base[:i])
		}
		if strings.EqualFold(base, name) {
			return true
		}
	}
	return false
}

// PrimaryKeyword returns the card's crew-affiliation keyword, skipping
// generic pool tags like Versatile. Empty when the card has none.
func (c *Card) PrimaryKeyword() string {
	for _, kw := range c.Keywords {
		if !genericKeywords[kw] {
			return kw
		}
	}
	return ""
}

// HasKeyword reports whether the card carries the keyword (case-insensitive)
func (c *Card) HasKeyword(keyword string) bool {
	for _, kw := range c.Keywords {
		if strings.EqualFold(kw, keyword) {
			return true
		}
	}
	return false
}

// IsVersatile reports whether the card hires into any crew of its faction
func (c *Card) IsVersatile() bool {
	return c.HasKeyword(KeywordVersatile)
}

// IsHireable reports whether the card can be added to a roster at all.
// Masters anchor crews and are never hired; totems are hired like any
// other model.
func (c *Card) IsHireable() bool {
	if c.CardType != CardTypeModel {
		return false
	}
	return c.Station() != StationMaster
}

// HireCost returns the card's cost for budget math. A hireable card with
// no printed cost is a data-quality issue flagged at load time; here it
// counts as zero rather than failing.
func (c *Card) HireCost() int {
	if c.Cost == nil {
		return 0
	}
	return *c.Cost
}

// HasRole reports whether the card is tagged with the archetype role
func (c *Card) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DuplicateLimit returns how many copies of this card one crew may hire.
// Minions default to 3 per name; every other station is unique.
func (c *Card) DuplicateLimit() int {
	if c.Station() != StationMinion {
		return 1
	}
	if c.MinionLimit > 0 {
		return c.MinionLimit
	}
	return 3
}

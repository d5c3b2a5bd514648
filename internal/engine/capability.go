// Package engine implements the crew-construction rules and heuristics:
// capability extraction, hiring math, synergy detection, objective gap
// analysis, and the crew/counter-crew suggesters. Everything here is pure
// computation over card data; nothing mutates crew state or performs I/O.
package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Marker resource types recognized in ability text
const (
	markerScheme = "scheme"
	markerCorpse = "corpse"
	markerScrap  = "scrap"
)

// markerResources are the marker economies the text scanners track
var markerResources = []string{markerScheme, markerCorpse, markerScrap}

var (
	markerGeneratePatterns = map[string]*regexp.Regexp{}
	markerConsumePatterns  = map[string]*regexp.Regexp{}

	conditionApplyPatterns   = map[string]*regexp.Regexp{}
	conditionRequirePatterns = map[string]*regexp.Regexp{}

	healingPattern = regexp.MustCompile(`\bheals?\b|\bregeneration\b`)
	executePattern = regexp.MustCompile(`\bexecute\b|\bdecapitate\b|is killed`)
)

func init() {
	for _, res := range markerResources {
		markerGeneratePatterns[res] = regexp.MustCompile(
			fmt.Sprintf(`(?:place|make|create|drop|summon)s?\s+(?:a\s+|up to \d+\s+)?(?:friendly\s+)?%s\s+markers?`, res))
		markerConsumePatterns[res] = regexp.MustCompile(
			fmt.Sprintf(`(?:remove|discard|destroy|consume|eat)s?\s+(?:a\s+|up to \d+\s+)?(?:nearby\s+|friendly\s+)?%s\s+markers?`, res))
	}
	for _, cond := range malifaux.AllConditions {
		conditionApplyPatterns[cond] = regexp.MustCompile(
			fmt.Sprintf(`(?:gains?|gives?|grants?|receives?|apply|applies|suffers?)\s+(?:a\s+|\+\d+\s+)?%s\b`, cond))
		conditionRequirePatterns[cond] = regexp.MustCompile(
			fmt.Sprintf(`(?:if|while|with|per)\s+(?:the\s+|this\s+|a\s+)?(?:target\s+|model\s+|enemy\s+|it\s+)?(?:has\s+|have\s+|is\s+)?(?:a\s+|\+\d+\s+)?%s\b`, cond))
	}
}

// scanText concatenates every free-text field of a card into one
// lower-cased buffer. All substring heuristics run against this buffer.
func scanText(card *malifaux.Card) string {
	var b strings.Builder
	for _, ab := range card.Abilities {
		b.WriteString(strings.ToLower(ab.Name))
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(ab.Description))
		b.WriteByte(' ')
	}
	for _, act := range card.AttackActions {
		b.WriteString(strings.ToLower(act.Description))
		b.WriteByte(' ')
	}
	for _, act := range card.TacticalActions {
		b.WriteString(strings.ToLower(act.Description))
		b.WriteByte(' ')
	}
	return b.String()
}

// generatesMarker reports whether the card's text creates the given
// marker resource
func generatesMarker(text, resource string) bool {
	re, ok := markerGeneratePatterns[resource]
	return ok && re.MatchString(text)
}

// consumesMarker reports whether the card's text spends the given
// marker resource
func consumesMarker(text, resource string) bool {
	re, ok := markerConsumePatterns[resource]
	return ok && re.MatchString(text)
}

// conditionsApplied lists the conditions the card's text hands out
func conditionsApplied(text string) []string {
	var out []string
	for _, cond := range malifaux.AllConditions {
		if conditionApplyPatterns[cond].MatchString(text) {
			out = append(out, cond)
		}
	}
	return out
}

// conditionsRequired lists the conditions the card's text keys off
func conditionsRequired(text string) []string {
	var out []string
	for _, cond := range malifaux.AllConditions {
		if conditionRequirePatterns[cond].MatchString(text) {
			out = append(out, cond)
		}
	}
	return out
}

func appliesCondition(text, cond string) bool {
	re, ok := conditionApplyPatterns[cond]
	return ok && re.MatchString(text)
}

// meleeAttackCount counts attacks with an engagement-range profile
func meleeAttackCount(card *malifaux.Card) int {
	n := 0
	for _, atk := range card.AttackActions {
		if atk.Range >= 1 && atk.Range <= 2 {
			n++
		}
	}
	return n
}

// Extract derives a card's capability vector from its text and structured
// fields. The rules are independent and purely additive: each match only
// ever increases a score, so the result is deterministic and order-free.
// Absent fields contribute nothing.
func Extract(card *malifaux.Card) malifaux.CapabilityVector {
	caps := make(malifaux.CapabilityVector)
	text := scanText(card)
	station := card.Station()
	cost := card.HireCost()

	// Scheme running
	if generatesMarker(text, markerScheme) {
		caps.Add(malifaux.CapSchemeMarkers, 2)
	}
	if card.HasRole(malifaux.RoleSchemeRunner) {
		caps.Add(malifaux.CapSchemeMarkers, 1)
	}
	if strings.Contains(text, "interact") && strings.Contains(text, "bonus") {
		caps.Add(malifaux.CapSchemeMarkers, 1)
		caps.Add(malifaux.CapInteract, 2)
	}
	if strings.Contains(text, "don't mind me") || strings.Contains(text, "dont mind me") {
		caps.Add(malifaux.CapDontMindMe, 2)
		caps.Add(malifaux.CapSchemeMarkers, 1)
	}

	// Mobility
	if card.HasCharacteristic("Incorporeal") || strings.Contains(text, "incorporeal") {
		caps.Add(malifaux.CapMobility, 3)
		caps.Add(malifaux.CapFlight, 3)
	}
	if card.HasCharacteristic("Flight") || strings.Contains(text, "flight") {
		caps.Add(malifaux.CapMobility, 2)
		caps.Add(malifaux.CapFlight, 2)
	}
	if strings.Contains(text, "leap") || strings.Contains(text, "unimpeded") {
		caps.Add(malifaux.CapMobility, 1)
		caps.Add(malifaux.CapFlight, 1)
	}
	if appliesCondition(text, malifaux.ConditionFast) {
		caps.Add(malifaux.CapMobility, 1)
	}
	if card.Speed != nil && *card.Speed >= 6 {
		caps.Add(malifaux.CapMobility, 1)
	}
	if card.Speed != nil && *card.Speed >= 7 {
		caps.Add(malifaux.CapMobility, 1)
	}

	// Survivability
	if strings.Contains(text, "hard to kill") || strings.Contains(text, "hard to wound") {
		caps.Add(malifaux.CapSurvivability, 2)
	}
	if strings.Contains(text, "armor") {
		caps.Add(malifaux.CapSurvivability, 1)
	}
	if strings.Contains(text, "regeneration") {
		caps.Add(malifaux.CapSurvivability, 1)
	}
	if appliesCondition(text, malifaux.ConditionShielded) {
		caps.Add(malifaux.CapSurvivability, 1)
	}
	if card.Defense != nil && *card.Defense >= 6 {
		caps.Add(malifaux.CapSurvivability, 1)
	}
	if card.Health != nil && *card.Health >= 8 {
		caps.Add(malifaux.CapSurvivability, 1)
	}
	if card.Health != nil && *card.Health >= 10 {
		caps.Add(malifaux.CapSurvivability, 1)
	}

	// Damage
	if card.HasRole(malifaux.RoleBeater) {
		caps.Add(malifaux.CapDamage, 2)
	}
	for _, atk := range card.AttackActions {
		if atk.Damage != nil && atk.Damage.Severe >= 5 {
			caps.Add(malifaux.CapDamage, 1)
			caps.Add(malifaux.CapAlphaStrike, 1)
			break
		}
	}
	if executePattern.MatchString(text) {
		caps.Add(malifaux.CapDamage, 1)
	}

	// Melee presence
	melee := meleeAttackCount(card)
	if melee >= 1 {
		caps.Add(malifaux.CapMelee, 1)
		caps.Add(malifaux.CapEngagement, 1)
	}
	if melee >= 2 {
		caps.Add(malifaux.CapMelee, 1)
		caps.Add(malifaux.CapEngagement, 1)
	}
	if strings.Contains(text, "cannot disengage") || strings.Contains(text, "engagement range") {
		caps.Add(malifaux.CapEngagement, 1)
	}

	// Control and displacement
	if card.HasRole(malifaux.RoleControl) {
		caps.Add(malifaux.CapBoardControl, 2)
		caps.Add(malifaux.CapPushPull, 1)
	}
	if strings.Contains(text, "lure") || strings.Contains(text, "obey") {
		caps.Add(malifaux.CapPushPull, 2)
		caps.Add(malifaux.CapKidnap, 2)
	}
	if strings.Contains(text, "push") || strings.Contains(text, "place") {
		caps.Add(malifaux.CapPushPull, 1)
		caps.Add(malifaux.CapPositioning, 1)
	}
	if appliesCondition(text, malifaux.ConditionSlow) {
		caps.Add(malifaux.CapBoardControl, 1)
	}
	if appliesCondition(text, malifaux.ConditionStunned) {
		caps.Add(malifaux.CapBoardControl, 1)
	}

	// Marker economy
	created := 0
	for _, res := range markerResources {
		if generatesMarker(text, res) {
			created++
		}
	}
	if created > 0 {
		caps.Add(malifaux.CapMarkerCreation, created)
	}
	if generatesMarker(text, markerCorpse) {
		caps.Add(malifaux.CapCorpseMarkers, 2)
	}
	if card.HasCharacteristic("Undead") {
		caps.Add(malifaux.CapCorpseMarkers, 1)
	}
	consumed := 0
	for _, res := range markerResources {
		if consumesMarker(text, res) {
			consumed++
		}
	}
	if consumed > 0 {
		caps.Add(malifaux.CapMarkerInteraction, 2)
	}

	// Activations and spread
	if caps.Get(malifaux.CapMobility) >= 2 {
		caps.Add(malifaux.CapSpread, 1)
	}
	switch {
	case card.Cost != nil && cost == 0:
		caps.Add(malifaux.CapCheapActivations, 3)
		caps.Add(malifaux.CapSpread, 1)
	case card.Cost != nil && cost <= 3:
		caps.Add(malifaux.CapCheapActivations, 2)
	}
	if station == malifaux.StationMinion && card.Cost != nil && cost <= 5 {
		caps.Add(malifaux.CapCheapActivations, 2)
	}
	if card.HasRole(malifaux.RoleSummoner) {
		caps.Add(malifaux.CapSpread, 2)
		caps.Add(malifaux.CapActivationControl, 2)
	}

	// Stations
	if station == malifaux.StationMinion {
		caps.Add(malifaux.CapMinionHeavy, 2)
	}

	// Alpha strike potential
	if strings.Contains(text, "charge") && (strings.Contains(text, "bonus") || strings.Contains(text, "+")) {
		caps.Add(malifaux.CapAlphaStrike, 1)
	}
	if caps.Get(malifaux.CapDamage) >= 2 && caps.Get(malifaux.CapMobility) >= 2 {
		caps.Add(malifaux.CapAlphaStrike, 1)
	}

	return caps
}

// Aggregate sums per-card capability vectors across a crew. This is the
// only cross-card step and is a plain additive fold.
func Aggregate(cards []*malifaux.Card) malifaux.CapabilityVector {
	total := make(malifaux.CapabilityVector)
	for _, card := range cards {
		total.Merge(Extract(card))
	}
	return total
}

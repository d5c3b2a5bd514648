package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Detector strengths. Each detector contributes at most one edge per
// pair, with a fixed strength in (0,1].
const (
	strengthKeywordBuff    = 0.8
	strengthResourceFlow   = 0.75
	strengthAbilityStack   = 0.7
	strengthSharedKeyword  = 0.6
	strengthRoleComplement = 0.5

	strengthResourceCompetition   = 0.4
	strengthActivationCompetition = 0.3
)

// roleComplements maps a role to the roles it plays well alongside
var roleComplements = map[string][]string{
	malifaux.RoleTank:                {malifaux.RoleSchemeRunner, malifaux.RoleSupport, malifaux.RoleBeater},
	malifaux.RoleBeater:              {malifaux.RoleSupport, malifaux.RoleControl, malifaux.RoleTank},
	malifaux.RoleSchemeRunner:        {malifaux.RoleTank, malifaux.RoleControl},
	malifaux.RoleSupport:             {malifaux.RoleBeater, malifaux.RoleTank, malifaux.RoleSummoner, malifaux.RoleConditionSpecialist},
	malifaux.RoleControl:             {malifaux.RoleBeater, malifaux.RoleSchemeRunner},
	malifaux.RoleSummoner:            {malifaux.RoleSupport},
	malifaux.RoleConditionSpecialist: {malifaux.RoleBeater, malifaux.RoleSupport},
	malifaux.RoleMarkerManipulation:  {malifaux.RoleSchemeRunner, malifaux.RoleSummoner},
}

// stackingAbilities are ability names whose effects compound when two
// crew members both carry them
var stackingAbilities = []string{
	"black blood",
	"misery",
	"juggernaut",
}

// characteristicPairs are station/trait pairings with built-in rules
// interactions
var characteristicPairs = []struct {
	a, b     string
	strength float64
}{
	{"Totem", "Master", 1.0},
	{"Effigy", "Emissary", 0.9},
	{"Henchman", "Master", 0.7},
}

// AnalyzeSynergies inspects every unordered pair across the leader and
// roster and reports beneficial and detrimental relationships. Crews top
// out around thirteen models, so the quadratic pass is immaterial. The report is
// advisory only; it never feeds back into hiring legality.
func AnalyzeSynergies(leader *malifaux.Card, roster []malifaux.RosterEntry) SynergyReport {
	models := make([]*malifaux.Card, 0, len(roster)+1)
	if leader != nil {
		models = append(models, leader)
	}
	for _, e := range roster {
		models = append(models, e.Card)
	}

	report := SynergyReport{
		Synergies:      []malifaux.SynergyEdge{},
		AntiSynergies:  []malifaux.SynergyEdge{},
		PerModelCounts: make(map[string]int),
	}
	seen := make(map[string]bool)

	record := func(edge malifaux.SynergyEdge, anti bool) {
		ids := []string{edge.ModelA, edge.ModelB}
		sort.Strings(ids)
		key := ids[0] + "|" + ids[1] + "|" + string(edge.Type)
		if seen[key] {
			return
		}
		seen[key] = true
		if anti {
			report.AntiSynergies = append(report.AntiSynergies, edge)
			return
		}
		report.Synergies = append(report.Synergies, edge)
		report.PerModelCounts[edge.ModelA]++
		report.PerModelCounts[edge.ModelB]++
	}

	for i := 0; i < len(models); i++ {
		for j := i + 1; j < len(models); j++ {
			a, b := models[i], models[j]
			for _, edge := range detectPair(a, b) {
				record(edge, false)
			}
			for _, edge := range detectAntiPair(a, b) {
				record(edge, true)
			}
		}
	}

	total := 0.0
	for _, e := range report.Synergies {
		total += e.Strength
	}
	for _, e := range report.AntiSynergies {
		total -= e.Strength
	}
	report.TotalScore = math.Round(total*10) / 10

	return report
}

// detectPair runs every synergy detector against one unordered pair,
// returning at most one edge per detector.
func detectPair(a, b *malifaux.Card) []malifaux.SynergyEdge {
	var edges []malifaux.SynergyEdge

	if edge, ok := detectKeywordBuff(a, b); ok {
		edges = append(edges, edge)
	}
	if edge, ok := detectSharedKeyword(a, b); ok {
		edges = append(edges, edge)
	}
	if edge, ok := detectRoleComplement(a, b); ok {
		edges = append(edges, edge)
	}
	if edge, ok := detectAbilityStack(a, b); ok {
		edges = append(edges, edge)
	}
	if edge, ok := detectCharacteristicPair(a, b); ok {
		edges = append(edges, edge)
	}
	if edge, ok := detectResourceFlow(a, b); ok {
		edges = append(edges, edge)
	}

	return edges
}

// detectKeywordBuff looks for one model's ability text calling out the
// other's primary keyword
func detectKeywordBuff(a, b *malifaux.Card) (malifaux.SynergyEdge, bool) {
	if textReferencesKeyword(scanText(b), a.PrimaryKeyword()) {
		return malifaux.SynergyEdge{
			ModelA:    a.ID,
			ModelB:    b.ID,
			Type:      malifaux.SynergyKeywordBuff,
			Direction: malifaux.DirectionBToA,
			Strength:  strengthKeywordBuff,
			Reason:    fmt.Sprintf("%s's abilities reference %s models", b.Name, a.PrimaryKeyword()),
		}, true
	}
	if textReferencesKeyword(scanText(a), b.PrimaryKeyword()) {
		return malifaux.SynergyEdge{
			ModelA:    a.ID,
			ModelB:    b.ID,
			Type:      malifaux.SynergyKeywordBuff,
			Direction: malifaux.DirectionAToB,
			Strength:  strengthKeywordBuff,
			Reason:    fmt.Sprintf("%s's abilities reference %s models", a.Name, b.PrimaryKeyword()),
		}, true
	}
	return malifaux.SynergyEdge{}, false
}

// textReferencesKeyword matches the phrasings card text uses when an
// ability is restricted to a keyword's models
func textReferencesKeyword(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	kw := strings.ToLower(keyword)
	for _, pattern := range []string{
		"friendly " + kw,
		"other " + kw,
		kw + " model",
		kw + " only",
	} {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

func detectSharedKeyword(a, b *malifaux.Card) (malifaux.SynergyEdge, bool) {
	for _, kw := range a.Keywords {
		if strings.EqualFold(kw, malifaux.KeywordVersatile) {
			continue
		}
		if b.HasKeyword(kw) {
			return malifaux.SynergyEdge{
				ModelA:    a.ID,
				ModelB:    b.ID,
				Type:      malifaux.SynergySharedKeyword,
				Direction: malifaux.DirectionMutual,
				Strength:  strengthSharedKeyword,
				Reason:    fmt.Sprintf("both belong to the %s keyword", kw),
			}, true
		}
	}
	return malifaux.SynergyEdge{}, false
}

func detectRoleComplement(a, b *malifaux.Card) (malifaux.SynergyEdge, bool) {
	for _, roleA := range a.Roles {
		for _, partner := range roleComplements[roleA] {
			if b.HasRole(partner) {
				return malifaux.SynergyEdge{
					ModelA:    a.ID,
					ModelB:    b.ID,
					Type:      malifaux.SynergyRoleComplement,
					Direction: malifaux.DirectionMutual,
					Strength:  strengthRoleComplement,
					Reason:    fmt.Sprintf("%s pairs with %s", roleA, partner),
				}, true
			}
		}
	}
	return malifaux.SynergyEdge{}, false
}

func detectAbilityStack(a, b *malifaux.Card) (malifaux.SynergyEdge, bool) {
	for _, stack := range stackingAbilities {
		if hasAbilityNamed(a, stack) && hasAbilityNamed(b, stack) {
			return malifaux.SynergyEdge{
				ModelA:    a.ID,
				ModelB:    b.ID,
				Type:      malifaux.SynergyAbilityStack,
				Direction: malifaux.DirectionMutual,
				Strength:  strengthAbilityStack,
				Reason:    fmt.Sprintf("both have %s", stack),
			}, true
		}
	}
	return malifaux.SynergyEdge{}, false
}

func hasAbilityNamed(card *malifaux.Card, name string) bool {
	for _, ab := range card.Abilities {
		if strings.Contains(strings.ToLower(ab.Name), name) {
			return true
		}
	}
	return false
}

func detectCharacteristicPair(a, b *malifaux.Card) (malifaux.SynergyEdge, bool) {
	for _, pair := range characteristicPairs {
		forward := a.HasCharacteristic(pair.a) && b.HasCharacteristic(pair.b)
		reverse := a.HasCharacteristic(pair.b) && b.HasCharacteristic(pair.a)
		if forward || reverse {
			return malifaux.SynergyEdge{
				ModelA:    a.ID,
				ModelB:    b.ID,
				Type:      malifaux.SynergyCharacteristic,
				Direction: malifaux.DirectionMutual,
				Strength:  pair.strength,
				Reason:    fmt.Sprintf("%s and %s work together", pair.a, pair.b),
			}, true
		}
	}
	return malifaux.SynergyEdge{}, false
}

// detectResourceFlow pairs marker generators with marker consumers in
// either direction
func detectResourceFlow(a, b *malifaux.Card) (malifaux.SynergyEdge, bool) {
	textA, textB := scanText(a), scanText(b)
	for _, res := range markerResources {
		if generatesMarker(textA, res) && consumesMarker(textB, res) {
			return malifaux.SynergyEdge{
				ModelA:    a.ID,
				ModelB:    b.ID,
				Type:      malifaux.SynergyResourceFlow,
				Direction: malifaux.DirectionAToB,
				Strength:  strengthResourceFlow,
				Reason:    fmt.Sprintf("%s generates %s markers for %s", a.Name, res, b.Name),
			}, true
		}
		if generatesMarker(textB, res) && consumesMarker(textA, res) {
			return malifaux.SynergyEdge{
				ModelA:    a.ID,
				ModelB:    b.ID,
				Type:      malifaux.SynergyResourceFlow,
				Direction: malifaux.DirectionBToA,
				Strength:  strengthResourceFlow,
				Reason:    fmt.Sprintf("%s generates %s markers for %s", b.Name, res, a.Name),
			}, true
		}
	}
	return malifaux.SynergyEdge{}, false
}

// detectAntiPair runs the anti-synergy detectors: two consumers fighting
// over a resource nobody produces, and stacked summoners competing for
// activations.
func detectAntiPair(a, b *malifaux.Card) []malifaux.SynergyEdge {
	var edges []malifaux.SynergyEdge
	textA, textB := scanText(a), scanText(b)

	for _, res := range markerResources {
		bothConsume := consumesMarker(textA, res) && consumesMarker(textB, res)
		anyGenerate := generatesMarker(textA, res) || generatesMarker(textB, res)
		if bothConsume && !anyGenerate {
			edges = append(edges, malifaux.SynergyEdge{
				ModelA:    a.ID,
				ModelB:    b.ID,
				Type:      malifaux.AntiSynergyResourceCompetition,
				Direction: malifaux.DirectionMutual,
				Strength:  strengthResourceCompetition,
				Reason:    fmt.Sprintf("both consume %s markers with no generator in the pair", res),
			})
			break
		}
	}

	if a.HasRole(malifaux.RoleSummoner) && b.HasRole(malifaux.RoleSummoner) {
		edges = append(edges, malifaux.SynergyEdge{
			ModelA:    a.ID,
			ModelB:    b.ID,
			Type:      malifaux.AntiSynergyActivationCompetition,
			Direction: malifaux.DirectionMutual,
			Strength:  strengthActivationCompetition,
			Reason:    "two summoners compete for activations and resources",
		})
	}

	return edges
}

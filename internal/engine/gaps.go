package engine

import (
	"sort"

	"github.com/breachside/crew-api/internal/entities/malifaux"
)

// Severity weights applied when scoring candidates against open gaps
const (
	gapWeightCritical = 2
	gapWeightWarning  = 1

	maxRecommendations = 5
)

// SumRequirements folds the declared strategy's and each chosen scheme's
// capability-need table into one combined requirement map
func SumRequirements(strategy *malifaux.Strategy, schemes []*malifaux.Scheme) map[malifaux.Capability]int {
	reqs := make(map[malifaux.Capability]int)
	if strategy != nil {
		for cap, need := range strategy.Requirements {
			reqs[cap] += need
		}
	}
	for _, scheme := range schemes {
		if scheme == nil {
			continue
		}
		for cap, need := range scheme.Requirements {
			reqs[cap] += need
		}
	}
	return reqs
}

// AnalyzeGaps diffs a crew's aggregated capabilities against the combined
// objective requirements. A capability below half of what the pool asks
// for is critical, anything under the requirement is a warning, and
// coverage at 1.5x or better is reported as a strength. Gaps surface
// largest shortfall first.
func AnalyzeGaps(crew []*malifaux.Card, requirements map[malifaux.Capability]int) GapReport {
	have := Aggregate(crew)
	report := GapReport{
		Gaps:      []Gap{},
		Strengths: []Strength{},
	}

	caps := make([]malifaux.Capability, 0, len(requirements))
	for cap := range requirements {
		caps = append(caps, cap)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })

	for _, cap := range caps {
		needed := requirements[cap]
		if needed <= 0 {
			continue
		}
		got := have.Get(cap)
		ratio := float64(got) / float64(needed)

		switch {
		case ratio < 0.5:
			report.Gaps = append(report.Gaps, Gap{
				Capability: cap,
				Needed:     needed,
				Have:       got,
				Shortfall:  needed - got,
				Severity:   SeverityCritical,
			})
		case ratio < 1:
			report.Gaps = append(report.Gaps, Gap{
				Capability: cap,
				Needed:     needed,
				Have:       got,
				Shortfall:  needed - got,
				Severity:   SeverityWarning,
			})
		case ratio >= 1.5:
			report.Strengths = append(report.Strengths, Strength{
				Capability: cap,
				Have:       got,
				Needed:     needed,
			})
		}
	}

	sort.SliceStable(report.Gaps, func(i, j int) bool {
		return report.Gaps[i].Shortfall > report.Gaps[j].Shortfall
	})

	return report
}

// RecommendForGaps ranks non-hired candidates by how much of the open
// shortfall they cover. Each capability's contribution is capped at its
// gap's shortfall so redundant coverage is not over-rewarded; critical
// gaps count double. Candidates that cover nothing are dropped, and the
// top five survive.
func RecommendForGaps(candidates []*malifaux.Card, gaps []Gap) []Recommendation {
	var recs []Recommendation
	for _, card := range candidates {
		caps := Extract(card)
		score := 0
		for _, gap := range gaps {
			contribution := caps.Get(gap.Capability)
			if contribution > gap.Shortfall {
				contribution = gap.Shortfall
			}
			weight := gapWeightWarning
			if gap.Severity == SeverityCritical {
				weight = gapWeightCritical
			}
			score += contribution * weight
		}
		if score > 0 {
			recs = append(recs, Recommendation{Card: card, Score: score})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// SchemePathScore is one branch option scored against the crew
type SchemePathScore struct {
	Scheme  *malifaux.Scheme `json:"scheme"`
	Score   int              `json:"score"`
	Reasons []string         `json:"reasons"`
}

// RecommendSchemePaths scores the schemes branching off a chosen scheme
// against the crew's aggregated capabilities. A fully met requirement is
// worth double its strength; partial coverage earns what the crew has.
func RecommendSchemePaths(crew []*malifaux.Card, branches []*malifaux.Scheme) []SchemePathScore {
	have := Aggregate(crew)
	var scores []SchemePathScore

	for _, scheme := range branches {
		if scheme == nil {
			continue
		}
		score := 0
		var reasons []string

		caps := make([]malifaux.Capability, 0, len(scheme.Requirements))
		for cap := range scheme.Requirements {
			caps = append(caps, cap)
		}
		sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })

		for _, cap := range caps {
			need := scheme.Requirements[cap]
			got := have.Get(cap)
			switch {
			case got >= need:
				score += need * 2
				reasons = append(reasons, string(cap)+" covered")
			case got > 0:
				score += got
				reasons = append(reasons, string(cap)+" partially covered")
			}
		}

		scores = append(scores, SchemePathScore{Scheme: scheme, Score: score, Reasons: reasons})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}

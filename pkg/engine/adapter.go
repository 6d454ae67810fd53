package engine

import (
	"math"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// adapter is the per-domain scoring contract. Each variant bundles its
// factor calculators, its risk combination formula and its recommendation
// rules. Adapters share no behavior beyond this signature; they are pure
// functions of their inputs.
type adapter interface {
	domain() types.DomainType

	// likelihood and vulnerability return integer scores in [1,5] built
	// from a fixed baseline plus floor(riskFactorCount/2).
	likelihood(rs model.ResponseSet, threatID types.ThreatID) int
	vulnerability(rs model.ResponseSet, threatID types.ThreatID) int

	// impact starts from the catalog typical impact and adds bounded
	// increments for amplifying conditions, clamped to [1,5].
	impact(rs model.ResponseSet, threat *model.Threat) int

	// combine applies the domain risk formula to the factor scores and
	// discounts the product by the control effectiveness fraction.
	combine(factors model.FactorScores, effectiveness float64) int

	// recommendations returns suggested controls in fixed rule order.
	recommendations(rs model.ResponseSet, threatID types.ThreatID, riskScore int) []string
}

// exposureAdapter is the additional capability of the person-centric domain
type exposureAdapter interface {
	exposure(rs model.ResponseSet) float64
}

const (
	baselineVulnerability = 3
	baselineLikelihood    = 2

	minScore = 1
	maxScore = 5
)

// clampScore bounds an integer factor score to [1,5]
func clampScore(v int) int {
	if v < minScore {
		return minScore
	}
	if v > maxScore {
		return maxScore
	}
	return v
}

// clampExposure bounds the real-valued exposure composite to [1,5] without
// rounding; callers must preserve the fractional precision.
func clampExposure(v float64) float64 {
	if v < minScore {
		return minScore
	}
	if v > maxScore {
		return maxScore
	}
	return v
}

// adjusted converts an accumulated risk-factor count into a score: every
// two independent negative signals raise the baseline by one point.
func adjusted(baseline, riskFactors int) int {
	return clampScore(baseline + riskFactors/2)
}

// ratingSignals maps a qualitative 1-5 rating answer onto risk-factor
// points: a rating at or below 2 counts double, exactly 3 counts single,
// anything higher (or an absent answer) contributes nothing.
func ratingSignals(rs model.ResponseSet, id types.QuestionID) int {
	n, ok := rs.Number(id)
	if !ok {
		return 0
	}
	switch {
	case n <= 2:
		return 2
	case n == 3:
		return 1
	default:
		return 0
	}
}

// factorProduct is the raw inherent product of the factor scores:
// L*V*I, extended by the exposure factor when present.
func factorProduct(f model.FactorScores) float64 {
	p := float64(f.Likelihood * f.Vulnerability * f.Impact)
	if f.HasExposure {
		p *= f.Exposure
	}
	return p
}

// combineNormalized is the office/retail formula: the discounted factor
// product projected onto a 0-100 scale via round(residual/125*100).
func combineNormalized(f model.FactorScores, effectiveness float64) int {
	residual := factorProduct(f) * (1 - effectiveness)
	return int(math.Round(residual / 125.0 * 100))
}

// combineRaw reports the discounted factor product directly, rounded to an
// integer. Warehouse (1-125) and executive protection (up to 625) use this.
func combineRaw(f model.FactorScores, effectiveness float64) int {
	return int(math.Round(factorProduct(f) * (1 - effectiveness)))
}

// dedupe removes duplicate entries preserving first occurrence, keeping
// recommendation output deterministic.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

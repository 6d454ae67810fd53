package engine

import (
	"math"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Thresholds of the normalized 0-100 scale used by the office and retail
// variants. A score of exactly 75 is critical; 74 is high.
const (
	normalizedCritical = 75
	normalizedHigh     = 50
	normalizedMedium   = 25
)

// ClassifyNormalized buckets a 0-100 normalized risk score into a tier
func ClassifyNormalized(score int) types.RiskLevel {
	switch {
	case score >= normalizedCritical:
		return types.RiskLevelCritical
	case score >= normalizedHigh:
		return types.RiskLevelHigh
	case score >= normalizedMedium:
		return types.RiskLevelMedium
	default:
		return types.RiskLevelLow
	}
}

// ClassifyMatrix buckets a raw 1-25 matrix score into a tier. This scale
// belongs to the alternate office-building pathway (see OfficeMatrixScore)
// and is not interchangeable with the normalized scale.
func ClassifyMatrix(score int) types.RiskLevel {
	switch {
	case score >= 20:
		return types.RiskLevelCritical
	case score >= 12:
		return types.RiskLevelHigh
	case score >= 6:
		return types.RiskLevelMedium
	default:
		return types.RiskLevelLow
	}
}

// OfficeMatrixScore is the alternate office-building pathway: likelihood
// and vulnerability are combined into one likelihood score via geometric
// mean before multiplying by impact, yielding a raw 1-25 score classified
// by ClassifyMatrix. Report-side consumers use this pathway; everything
// downstream of CalculateThreatRisk uses the normalized scale. The two
// pathways must not be mixed.
func OfficeMatrixScore(likelihood, vulnerability, impact int) int {
	likelihoodScore := math.Sqrt(float64(likelihood * vulnerability))
	return int(math.Round(likelihoodScore * float64(impact)))
}

// ClassifyScore buckets a domain-reported current risk score into a tier.
// Office and retail report 0-100 directly; warehouse and executive
// protection report raw products, which are scaled against the domain's
// maximum before bucketing. Reporting aid only, not part of the scoring
// contract.
func ClassifyScore(domain types.DomainType, score int) types.RiskLevel {
	switch domain {
	case types.DomainWarehouse:
		return ClassifyNormalized(int(math.Round(float64(score) / 125.0 * 100)))
	case types.DomainExecutiveProtection:
		return ClassifyNormalized(int(math.Round(float64(score) / 625.0 * 100)))
	default:
		return ClassifyNormalized(score)
	}
}

// buildFindings derives the advisory diagnostics of one result from the
// vulnerability magnitude and the control-effectiveness magnitude.
func buildFindings(factors model.FactorScores, effectiveness float64, hasExisting bool) []string {
	var findings []string

	if factors.Vulnerability >= 4 {
		findings = append(findings, "high vulnerability: existing safeguards leave significant gaps against this threat")
	}
	if !hasExisting {
		findings = append(findings, "no existing controls mitigate this threat")
	} else if effectiveness < 0.3 {
		findings = append(findings, "controls provide minimal risk reduction")
	}
	if factors.HasExposure && factors.Exposure >= 4 {
		findings = append(findings, "high exposure profile amplifies targeting likelihood")
	}

	return findings
}

package model

import (
	"time"

	"github.com/secmon-lab/argus/pkg/domain/types"
)

// FactorScores holds the factor values of one (assessment, threat) pair.
// Likelihood, Vulnerability and Impact are integer scores clamped to [1,5].
// Exposure is produced only for the executive protection domain; it is a
// real-valued weighted composite in [1,5] and carries fractional precision.
// HasExposure distinguishes "no exposure factor" from an exposure of zero.
type FactorScores struct {
	Likelihood    int
	Vulnerability int
	Impact        int
	Exposure      float64
	HasExposure   bool
}

// RiskCalculationResult is the engine's output record for one threat.
// It is produced fresh per calculation call and owned by the caller; the
// engine keeps no reference to it afterward.
type RiskCalculationResult struct {
	ThreatID   types.ThreatID
	ThreatName string
	Factors    FactorScores

	// InherentRisk is the raw factor product before any control discount:
	// L*V*I, or L*V*E*I for executive protection.
	InherentRisk int

	// CurrentRisk is the domain-reported score discounted by existing
	// control effectiveness. Office and retail report a normalized 0-100
	// scale; warehouse and executive protection report the raw product.
	CurrentRisk int

	// ResidualRisk is the domain-reported score discounted by existing and
	// proposed control effectiveness combined (capped at 100%).
	ResidualRisk int

	// ControlEffectiveness is the existing-control discount fraction, 0-1.
	ControlEffectiveness float64

	// Recommendations is an ordered, deduplicated list of suggested controls.
	Recommendations []string

	// Findings is an ordered list of short diagnostic strings. Advisory
	// text only, never used in further computation.
	Findings []string
}

// StoredResult wraps a calculation result persisted for an assessment
type StoredResult struct {
	AssessmentID types.AssessmentID
	Result       RiskCalculationResult
	CalculatedAt time.Time
}

// ShrinkageBreakdown is the per-threat contribution of one shrinkage threat
type ShrinkageBreakdown struct {
	ThreatID types.ThreatID
	Score    int // normalized 0-100
	Weight   int // the threat's catalog typical likelihood
}

// ShrinkageResult is the retail composite shrinkage risk score
type ShrinkageResult struct {
	Score       int
	RiskLevel   types.RiskLevel
	Breakdown   []ShrinkageBreakdown
	RiskFactors []string
}

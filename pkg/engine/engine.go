package engine

import (
	"context"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/utils/logging"
)

// Engine is the risk calculation orchestrator. It selects the matching
// domain adapter, invokes the factor calculators, applies the control
// effectiveness model and returns a structured result. All calculations
// are pure functions of their explicit inputs: an Engine is stateless
// beyond its immutable catalog and safe for concurrent use.
type Engine struct {
	catalog  *Catalog
	adapters map[types.DomainType]adapter
	fallback adapter
}

// New creates an Engine over the given threat catalog
func New(catalog *Catalog) *Engine {
	office := &officeAdapter{}
	return &Engine{
		catalog: catalog,
		adapters: map[types.DomainType]adapter{
			types.DomainOfficeBuilding:      office,
			types.DomainRetailStore:         &retailAdapter{},
			types.DomainWarehouse:           &warehouseAdapter{},
			types.DomainExecutiveProtection: &executiveAdapter{},
		},
		fallback: office,
	}
}

// Catalog returns the engine's threat catalog
func (x *Engine) Catalog() *Catalog {
	return x.catalog
}

// adapterFor selects the adapter of a domain. An unrecognized domain is
// never a hard failure: it falls back to the office building variant with
// a logged warning.
func (x *Engine) adapterFor(ctx context.Context, domain types.DomainType) adapter {
	if a, ok := x.adapters[domain]; ok {
		return a
	}
	logging.From(ctx).Warn("unknown domain type, falling back to office building adapter",
		"domain", domain.String())
	return x.fallback
}

// CalculateThreatRisk is the single synchronous entry point: it scores one
// threat for one assessment. Stateless, deterministic and safe to call
// repeatedly or in parallel, provided the caller does not mutate responses
// or controls during the call.
func (x *Engine) CalculateThreatRisk(ctx context.Context, domain types.DomainType, responses model.ResponseSet, threat *model.Threat, controls model.ControlSet) (*model.RiskCalculationResult, error) {
	if threat == nil {
		return nil, goerr.New("threat is required")
	}

	a := x.adapterFor(ctx, domain)

	factors := model.FactorScores{
		Likelihood:    a.likelihood(responses, threat.ID),
		Vulnerability: a.vulnerability(responses, threat.ID),
		Impact:        a.impact(responses, threat),
	}
	if ea, ok := a.(exposureAdapter); ok {
		factors.Exposure = ea.exposure(responses)
		factors.HasExposure = true
	}

	existingEffectiveness := ControlEffectiveness(controls.Existing)
	combinedEffectiveness := CombinedEffectiveness(controls.Existing, controls.Proposed)

	currentRisk := a.combine(factors, existingEffectiveness)
	result := &model.RiskCalculationResult{
		ThreatID:             threat.ID,
		ThreatName:           threat.Name,
		Factors:              factors,
		InherentRisk:         int(math.Round(factorProduct(factors))),
		CurrentRisk:          currentRisk,
		ResidualRisk:         a.combine(factors, combinedEffectiveness),
		ControlEffectiveness: existingEffectiveness,
		Recommendations:      a.recommendations(responses, threat.ID, currentRisk),
		Findings:             buildFindings(factors, existingEffectiveness, len(controls.Existing) > 0),
	}

	return result, nil
}

// CalculateAssessment scores every catalog threat of a domain in catalog
// order. Convenience for sequential callers; each per-threat calculation
// is independent.
func (x *Engine) CalculateAssessment(ctx context.Context, domain types.DomainType, snapshot *model.AssessmentSnapshot) ([]*model.RiskCalculationResult, error) {
	if snapshot == nil {
		return nil, goerr.New("assessment snapshot is required")
	}

	threats := x.catalog.ForDomain(domain)
	results := make([]*model.RiskCalculationResult, 0, len(threats))
	for i := range threats {
		threat := threats[i]
		result, err := x.CalculateThreatRisk(ctx, domain, snapshot.Responses, &threat, snapshot.ControlsFor(threat.ID))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to calculate threat risk", goerr.V("threat_id", threat.ID))
		}
		results = append(results, result)
	}

	return results, nil
}

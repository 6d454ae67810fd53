package engine

import (
	"github.com/secmon-lab/argus/pkg/domain/model"
)

// Security-attributed share of annual turnover cost. Industry studies put
// the security-related portion at 15-20%; supplied values are clamped into
// that band and zero defaults to the lower bound.
const (
	turnoverShareMin = 0.15
	turnoverShareMax = 0.20
)

// CalculateTotalCostOfRisk is the linear annualized cost rollup consumed
// by reporting. It is plain accounting, not probabilistic risk: direct
// loss from the shrinkage/theft rate applied to revenue (or inventory
// value when revenue is unknown), plus the security-attributed share of
// turnover cost, plus the supplied liability, incident and brand damage
// estimates, summed.
func CalculateTotalCostOfRisk(profile *model.RiskProfile) *model.TotalCostOfRisk {
	if profile == nil {
		return &model.TotalCostOfRisk{}
	}

	base := profile.AnnualRevenue
	if base == 0 {
		base = profile.InventoryValue
	}
	directLoss := profile.ShrinkageRate * base

	share := profile.SecurityTurnoverShare
	switch {
	case share == 0:
		share = turnoverShareMin
	case share < turnoverShareMin:
		share = turnoverShareMin
	case share > turnoverShareMax:
		share = turnoverShareMax
	}
	turnoverCost := profile.AnnualTurnoverCost * share

	tcor := &model.TotalCostOfRisk{
		DirectLoss:      directLoss,
		TurnoverCost:    turnoverCost,
		LiabilityCost:   profile.LiabilityCost,
		IncidentCost:    profile.IncidentCost,
		BrandDamageCost: profile.BrandDamageCost,
	}
	tcor.TotalAnnualExposure = tcor.DirectLoss + tcor.TurnoverCost +
		tcor.LiabilityCost + tcor.IncidentCost + tcor.BrandDamageCost

	return tcor
}

package model

// RiskProfile carries the financial inputs for the total cost of risk
// rollup. Monetary values are annual USD amounts.
type RiskProfile struct {
	// AnnualRevenue is used as the base for shrinkage-driven direct loss.
	// When zero, InventoryValue is used instead.
	AnnualRevenue  float64
	InventoryValue float64

	// ShrinkageRate is the fraction of the base lost to shrinkage/theft
	// per year (e.g. 0.015 for 1.5%).
	ShrinkageRate float64

	// AnnualTurnoverCost is the total yearly cost of employee turnover.
	// SecurityTurnoverShare is the fraction attributed to security concerns;
	// values outside [0.15, 0.20] are clamped into that band, zero defaults
	// to the lower bound.
	AnnualTurnoverCost    float64
	SecurityTurnoverShare float64

	// Supplied estimates, passed through to the rollup as-is.
	LiabilityCost   float64
	IncidentCost    float64
	BrandDamageCost float64
}

// TotalCostOfRisk is the linear annualized cost rollup. It is distinct from
// the multiplicative risk score: plain accounting, not probability.
type TotalCostOfRisk struct {
	DirectLoss          float64
	TurnoverCost        float64
	LiabilityCost       float64
	IncidentCost        float64
	BrandDamageCost     float64
	TotalAnnualExposure float64
}

package engine

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func wellRunStore() model.ResponseSet {
	return responsesOf(map[types.QuestionID]any{
		"location_1":   "low crime area",
		"incident_1":   false,
		"incident_2":   false,
		"storefront_1": true,
		"pos_1":        true,
		"cash_1":       true,
		"cash_2":       true,
		"staff_1":      true,
		"staff_2":      true,
		"cctv_1":       true,
		"merch_1":      false,
		"security_2":   4,
		"facility_1":   "small",
	})
}

func TestRetailShoplifting(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainRetailStore, "shoplifting")

	t.Run("well run store", func(t *testing.T) {
		result, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, wellRunStore(), threat, model.ControlSet{})
		gt.NoError(t, err).Required()

		gt.Number(t, result.Factors.Likelihood).Equal(2)
		gt.Number(t, result.Factors.Vulnerability).Equal(3)
		gt.Number(t, result.Factors.Impact).Equal(2)
		// round(12/125*100) = 10
		gt.Number(t, result.InherentRisk).Equal(12)
		gt.Number(t, result.CurrentRisk).Equal(10)
		gt.Array(t, result.Recommendations).Length(0)
	})

	t.Run("exposed store", func(t *testing.T) {
		rs := responsesOf(map[types.QuestionID]any{
			"location_1":   "high crime area",
			"incident_1":   true,
			"merch_1":      true,
			"cctv_1":       false,
			"storefront_1": false,
			"staff_2":      false,
		})

		result, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, rs, threat, model.ControlSet{})
		gt.NoError(t, err).Required()

		// L: high crime (2) + shoplifting history (1) = 3 signals -> 3
		gt.Number(t, result.Factors.Likelihood).Equal(3)
		// V: no cameras, no EAS gates, no loss prevention = 3 signals -> 4
		gt.Number(t, result.Factors.Vulnerability).Equal(4)
		// I: typical 2 + high-value merchandise = 3
		gt.Number(t, result.Factors.Impact).Equal(3)

		gt.Number(t, result.InherentRisk).Equal(36)
		gt.Number(t, result.CurrentRisk).Equal(29)

		gt.Array(t, result.Recommendations).Has("Deploy camera coverage of the sales floor and exits")
		gt.Array(t, result.Recommendations).Has("Install electronic article surveillance gates")
		gt.Array(t, result.Recommendations).Has("Assign dedicated loss prevention staff")
	})
}

func TestRetailOrganizedRetailCrime(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainRetailStore, "organized_retail_crime")

	rs := responsesOf(map[types.QuestionID]any{
		"location_1":   "high crime area",
		"incident_1":   true,
		"merch_1":      true,
		"cctv_1":       false,
		"storefront_1": false,
		"staff_2":      false,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	// High-value merchandise adds a likelihood signal on top of history
	// and area crime: 4 signals -> 4.
	gt.Number(t, result.Factors.Likelihood).Equal(4)
	gt.Number(t, result.Factors.Vulnerability).Equal(4)
	// typical 3 + merchandise bump
	gt.Number(t, result.Factors.Impact).Equal(4)

	gt.Number(t, result.InherentRisk).Equal(64)
	// round(64/125*100) = 51
	gt.Number(t, result.CurrentRisk).Equal(51)
}

func TestRetailEmployeeTheft(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainRetailStore, "employee_theft")

	rs := responsesOf(map[types.QuestionID]any{
		"location_1": "low crime area",
		"cctv_1":     true,
		"security_2": 4,
		"staff_1":    false,
		"pos_1":      false,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	gt.Number(t, result.Factors.Likelihood).Equal(2)
	// V: missing background checks + missing POS monitoring = 2 signals -> 4
	gt.Number(t, result.Factors.Vulnerability).Equal(4)
	gt.Number(t, result.Factors.Impact).Equal(3)

	gt.Array(t, result.Recommendations).Has("Run background checks on all new hires")
	gt.Array(t, result.Recommendations).Has("Enable POS exception monitoring and review")
}

func TestRetailRobbery(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainRetailStore, "robbery")

	rs := responsesOf(map[types.QuestionID]any{
		"location_1": "moderate crime area",
		"incident_2": true,
		"cctv_1":     true,
		"security_2": 5,
		"cash_1":     false,
		"cash_2":     false,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	// L: moderate crime (1) + robbery history (1) = 2 signals -> 3
	gt.Number(t, result.Factors.Likelihood).Equal(3)
	// V: cash policy + cash room gaps = 2 signals -> 4
	gt.Number(t, result.Factors.Vulnerability).Equal(4)
	gt.Number(t, result.Factors.Impact).Equal(4)

	gt.Number(t, result.InherentRisk).Equal(48)
	gt.Number(t, result.CurrentRisk).Equal(38)

	gt.Array(t, result.Recommendations).Has("Adopt a dual-control cash handling policy with drop safes")
	gt.Array(t, result.Recommendations).Has("Restrict cash counting to a secured room")
}

func TestRetailStoreSizeImpact(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainRetailStore, "burglary")

	small := wellRunStore()
	flagship := wellRunStore()
	flagship["facility_1"] = model.Response{QuestionID: "facility_1", Answer: "flagship"}

	base, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, small, threat, model.ControlSet{})
	gt.NoError(t, err).Required()
	big, err := eng.CalculateThreatRisk(ctx, types.DomainRetailStore, flagship, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	gt.Number(t, big.Factors.Impact).Equal(base.Factors.Impact + 1)
}

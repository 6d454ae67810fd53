package engine

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestExecutiveExposure(t *testing.T) {
	a := &executiveAdapter{}

	t.Run("weighted composite keeps fractional precision", func(t *testing.T) {
		rs := responsesOf(map[types.QuestionID]any{
			"profile_1": "very high public profile",
			"routine_1": "extremely predictable",
			"digital_1": "extensive online presence",
			"travel_1":  "moderate",
		})

		// 5*0.4 + 5*0.3 + 5*0.2 + 2*0.1 = 4.7
		gt.Bool(t, almostEqual(a.exposure(rs), 4.7)).True()
	})

	t.Run("absent answers default every sub-factor to 2", func(t *testing.T) {
		gt.Bool(t, almostEqual(a.exposure(model.ResponseSet{}), 2.0)).True()
	})

	t.Run("publicly known address bumps the profile sub-factor", func(t *testing.T) {
		rs := responsesOf(map[types.QuestionID]any{
			"profile_1": "high",
			"profile_2": true,
		})
		bumped := a.exposure(rs)

		rs["profile_2"] = model.Response{QuestionID: "profile_2", Answer: false}
		gt.Bool(t, almostEqual(bumped-a.exposure(rs), 0.4)).True()
	})

	t.Run("bumps never push a sub-factor past 5", func(t *testing.T) {
		rs := responsesOf(map[types.QuestionID]any{
			"profile_1": "very high",
			"profile_2": true,
			"routine_1": "extremely predictable",
			"routine_2": true,
			"digital_1": "extensive",
			"travel_1":  "war zone",
		})
		gt.Bool(t, almostEqual(a.exposure(rs), 5.0)).True()
	})

	t.Run("fixed commute bumps predictability", func(t *testing.T) {
		rs := responsesOf(map[types.QuestionID]any{
			"routine_1": "somewhat predictable",
			"routine_2": true,
		})
		// profile 2*0.4 + predictability (3+1)*0.3 + digital 2*0.2 + geo 2*0.1
		gt.Bool(t, almostEqual(a.exposure(rs), 0.8+1.2+0.4+0.2)).True()
	})
}

func TestExecutiveKidnapping(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainExecutiveProtection, "kidnapping_ransom")

	rs := responsesOf(map[types.QuestionID]any{
		"profile_1":    "very high public profile",
		"routine_1":    "extremely predictable",
		"routine_2":    false,
		"digital_1":    "extensive online presence",
		"travel_1":     "moderate",
		"travel_2":     false,
		"protection_1": true,
		"residence_2":  true,
		"incident_1":   false,
		"family_1":     false,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainExecutiveProtection, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	gt.Number(t, result.Factors.Likelihood).Equal(2)
	gt.Number(t, result.Factors.Vulnerability).Equal(3)
	gt.Number(t, result.Factors.Impact).Equal(5)
	gt.Bool(t, result.Factors.HasExposure).True()
	gt.Bool(t, almostEqual(result.Factors.Exposure, 4.7)).True()

	// Raw four-factor product: round(2*3*5*4.7) = 141
	gt.Number(t, result.InherentRisk).Equal(141)
	gt.Number(t, result.CurrentRisk).Equal(141)

	gt.Array(t, result.Findings).Has("high exposure profile amplifies targeting likelihood")
	gt.Array(t, result.Recommendations).Length(0)

	t.Run("existing controls discount the raw product", func(t *testing.T) {
		controls := model.ControlSet{
			Existing: []model.Control{{
				ID: "ctl_detail", ThreatID: "kidnapping_ransom", Name: "Protective intelligence program",
				ControlType: types.ControlTypeExisting, Effectiveness: 3,
			}},
		}

		mitigated, err := eng.CalculateThreatRisk(ctx, types.DomainExecutiveProtection, rs, threat, controls)
		gt.NoError(t, err).Required()

		gt.Number(t, mitigated.InherentRisk).Equal(141)
		// round(141 * 0.9^3) = 103
		gt.Number(t, mitigated.CurrentRisk).Equal(103)
	})
}

func TestExecutiveHomeInvasion(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainExecutiveProtection, "home_invasion")

	rs := responsesOf(map[types.QuestionID]any{
		"protection_1": false,
		"residence_1":  false,
		"staff_1":      false,
		"family_1":     true,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainExecutiveProtection, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	// V: missing protection detail counts double (2) + no residence system
	// + unvetted staff = 4 signals -> 5
	gt.Number(t, result.Factors.Vulnerability).Equal(5)
	// typical 4 + dependents in the household
	gt.Number(t, result.Factors.Impact).Equal(5)
	gt.Bool(t, almostEqual(result.Factors.Exposure, 2.0)).True()

	gt.Array(t, result.Recommendations).Has("Retain a trained protection detail for the principal")
	gt.Array(t, result.Recommendations).Has("Install a monitored residence security system")
	gt.Array(t, result.Recommendations).Has("Vet household and domestic staff")
}

func TestExecutiveTravelAmbush(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainExecutiveProtection, "travel_ambush")

	rs := responsesOf(map[types.QuestionID]any{
		"protection_1": true,
		"residence_2":  false,
		"routine_2":    true,
		"travel_1":     "high risk region",
		"travel_2":     true,
		"incident_1":   true,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainExecutiveProtection, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	// L: threat history + high-risk travel + high-risk geography = 3 signals -> 3
	gt.Number(t, result.Factors.Likelihood).Equal(3)
	// V: no secure parking + fixed commute = 2 signals -> 4
	gt.Number(t, result.Factors.Vulnerability).Equal(4)

	gt.Array(t, result.Recommendations).Has("Vary commute routes and departure times")
	gt.Array(t, result.Recommendations).Has("Use secured parking at residence and office")
}

func TestExecutiveDoxxing(t *testing.T) {
	eng := New(DefaultCatalog())
	ctx := context.Background()
	threat := mustThreat(t, types.DomainExecutiveProtection, "doxxing_exposure")

	rs := responsesOf(map[types.QuestionID]any{
		"protection_1": true,
		"digital_1":    "extensive online presence",
		"profile_2":    true,
	})

	result, err := eng.CalculateThreatRisk(ctx, types.DomainExecutiveProtection, rs, threat, model.ControlSet{})
	gt.NoError(t, err).Required()

	// Extensive footprint is both a likelihood and a vulnerability signal,
	// but a single signal moves neither score off its baseline.
	gt.Number(t, result.Factors.Likelihood).Equal(2)
	gt.Number(t, result.Factors.Vulnerability).Equal(3)

	gt.Array(t, result.Recommendations).Has("Commission a digital footprint reduction review")
	gt.Array(t, result.Recommendations).Has("Remove the principal's residential address from public records")
}

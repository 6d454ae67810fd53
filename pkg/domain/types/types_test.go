package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestAssessmentID(t *testing.T) {
	t.Run("generated IDs are unique", func(t *testing.T) {
		a := types.NewAssessmentID()
		b := types.NewAssessmentID()
		gt.NoError(t, a.Validate())
		gt.Value(t, a).NotEqual(b)
	})

	t.Run("empty ID is invalid", func(t *testing.T) {
		gt.Error(t, types.AssessmentID("").Validate())
	})
}

func TestThreatIDValidate(t *testing.T) {
	for _, id := range []types.ThreatID{"forced_entry", "cargo_theft_full_truckload", "a1", "x"} {
		gt.NoError(t, id.Validate())
	}
	for _, id := range []types.ThreatID{"", "Forced Entry", "forced-entry", "_leading", "trailing_", "UPPER"} {
		gt.Error(t, id.Validate())
	}
}

func TestQuestionIDValidate(t *testing.T) {
	gt.NoError(t, types.QuestionID("location_1").Validate())
	gt.Error(t, types.QuestionID("").Validate())
	gt.Error(t, types.QuestionID("Location 1").Validate())
}

func TestDomainType(t *testing.T) {
	for _, d := range types.AllDomainTypes() {
		gt.Bool(t, d.IsValid()).True()
	}
	gt.Bool(t, types.DomainType("submarine").IsValid()).False()
	gt.Bool(t, types.DomainType("").IsValid()).False()
	gt.Value(t, types.DomainRetailStore.String()).Equal("retail_store")
}

func TestParseControlType(t *testing.T) {
	ct := gt.R1(types.ParseControlType("existing")).NoError(t)
	gt.Value(t, ct).Equal(types.ControlTypeExisting)

	ct = gt.R1(types.ParseControlType("proposed")).NoError(t)
	gt.Value(t, ct).Equal(types.ControlTypeProposed)

	_, err := types.ParseControlType("planned")
	gt.Error(t, err)
}

func TestRiskLevelAtLeast(t *testing.T) {
	gt.Bool(t, types.RiskLevelCritical.AtLeast(types.RiskLevelHigh)).True()
	gt.Bool(t, types.RiskLevelHigh.AtLeast(types.RiskLevelHigh)).True()
	gt.Bool(t, types.RiskLevelMedium.AtLeast(types.RiskLevelHigh)).False()
	gt.Bool(t, types.RiskLevelLow.AtLeast(types.RiskLevelCritical)).False()

	levels := types.AllRiskLevels()
	gt.Array(t, levels).Length(4).Required()
	for i := 1; i < len(levels); i++ {
		gt.Bool(t, levels[i-1].AtLeast(levels[i])).True()
	}
}

package engine

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model"
)

func control(effectiveness int) model.Control {
	return model.Control{
		ID:            "ctl_test",
		ThreatID:      "forced_entry",
		Name:          "test control",
		Effectiveness: effectiveness,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestControlEffectiveness(t *testing.T) {
	t.Run("no controls means no reduction", func(t *testing.T) {
		gt.Number(t, ControlEffectiveness(nil)).Equal(0)
		gt.Number(t, ControlEffectiveness([]model.Control{})).Equal(0)
	})

	t.Run("zero effectiveness contributes nothing", func(t *testing.T) {
		gt.Number(t, ControlEffectiveness([]model.Control{control(0)})).Equal(0)
	})

	t.Run("rating compounds per point, not linearly", func(t *testing.T) {
		// 3 points: 1 - 0.9^3 = 0.271, not 0.3
		got := ControlEffectiveness([]model.Control{control(3)})
		gt.Bool(t, almostEqual(got, 1-math.Pow(0.9, 3))).True()
		gt.Bool(t, almostEqual(got, 0.271)).True()
	})

	t.Run("multiple controls compound across the list", func(t *testing.T) {
		got := ControlEffectiveness([]model.Control{control(2), control(3)})
		gt.Bool(t, almostEqual(got, 1-math.Pow(0.9, 5))).True()
	})

	t.Run("ratings outside 0-5 are clamped", func(t *testing.T) {
		over := ControlEffectiveness([]model.Control{control(9)})
		gt.Bool(t, almostEqual(over, 1-math.Pow(0.9, 5))).True()

		gt.Number(t, ControlEffectiveness([]model.Control{control(-2)})).Equal(0)
	})

	t.Run("monotonically increasing in points", func(t *testing.T) {
		prev := 0.0
		for points := 1; points <= 5; points++ {
			got := ControlEffectiveness([]model.Control{control(points)})
			gt.Bool(t, got > prev).True()
			prev = got
		}
	})
}

func TestCombinedEffectiveness(t *testing.T) {
	t.Run("existing and proposed remainders multiply", func(t *testing.T) {
		existing := []model.Control{control(2)}
		proposed := []model.Control{control(3)}

		got := CombinedEffectiveness(existing, proposed)
		gt.Bool(t, almostEqual(got, 1-math.Pow(0.9, 5))).True()
	})

	t.Run("empty proposed equals existing alone", func(t *testing.T) {
		existing := []model.Control{control(4)}
		gt.Bool(t, almostEqual(CombinedEffectiveness(existing, nil), ControlEffectiveness(existing))).True()
	})

	t.Run("total never exceeds 1", func(t *testing.T) {
		var existing, proposed []model.Control
		for i := 0; i < 20; i++ {
			existing = append(existing, control(5))
			proposed = append(proposed, control(5))
		}
		got := CombinedEffectiveness(existing, proposed)
		gt.Bool(t, got <= 1.0).True()
	})

	t.Run("combined never below either side alone", func(t *testing.T) {
		existing := []model.Control{control(2)}
		proposed := []model.Control{control(2)}

		combined := CombinedEffectiveness(existing, proposed)
		gt.Bool(t, combined >= ControlEffectiveness(existing)).True()
		gt.Bool(t, combined >= ControlEffectiveness(proposed)).True()
	})
}

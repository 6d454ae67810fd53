package engine

import (
	"github.com/secmon-lab/argus/pkg/domain/model"
)

// reductionPerPoint is the fractional risk reduction of one effectiveness
// point. Effectiveness compounds multiplicatively: a rating of 3 applies
// the reduction three times in sequence (0.9^3), not 0.3.
const reductionPerPoint = 0.10

// ControlEffectiveness converts a list of controls into a single discount
// fraction in [0,1] via compounding reduction. Controls with effectiveness
// 0 (or absent, which callers map to 0) contribute nothing.
func ControlEffectiveness(controls []model.Control) float64 {
	remaining := 1.0
	for _, c := range controls {
		points := c.Effectiveness
		if points < 0 {
			points = 0
		}
		if points > 5 {
			points = 5
		}
		for i := 0; i < points; i++ {
			remaining *= 1 - reductionPerPoint
		}
	}
	return 1 - remaining
}

// CombinedEffectiveness returns the discount of existing and proposed
// controls applied together, capped at 1.0 total.
func CombinedEffectiveness(existing, proposed []model.Control) float64 {
	remaining := (1 - ControlEffectiveness(existing)) * (1 - ControlEffectiveness(proposed))
	effectiveness := 1 - remaining
	if effectiveness > 1 {
		effectiveness = 1
	}
	return effectiveness
}

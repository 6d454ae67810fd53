package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/utils/logging"
)

// shrinkageThreats is the fixed set of related retail threats combined
// into the composite shrinkage score, in evaluation order.
var shrinkageThreats = []types.ThreatID{
	"shoplifting",
	"organized_retail_crime",
	"employee_theft",
	"cash_handling_theft",
	"inventory_shrinkage",
}

// CalculateShrinkageRiskScore combines the shrinkage-related retail threat
// scores into one composite. Each threat's normalized 0-100 score is
// weighted by its catalog typical likelihood and averaged — but a single
// critical threat escalates the whole: if the highest per-threat score
// reaches the critical threshold, the composite equals that maximum, not
// the weighted average. Threat ids missing from the catalog are skipped;
// the aggregation is robust to a partial threat list.
func (x *Engine) CalculateShrinkageRiskScore(ctx context.Context, snapshot *model.AssessmentSnapshot) (*model.ShrinkageResult, error) {
	if snapshot == nil {
		return nil, goerr.New("assessment snapshot is required")
	}

	var (
		weightedSum float64
		totalWeight float64
		maxScore    int
		maxThreat   types.ThreatID
		breakdown   []model.ShrinkageBreakdown
		riskFactors []string
	)

	for _, id := range shrinkageThreats {
		threat, ok := x.catalog.Threat(types.DomainRetailStore, id)
		if !ok {
			logging.From(ctx).Warn("shrinkage threat missing from catalog, skipping", "threat_id", id.String())
			continue
		}

		result, err := x.CalculateThreatRisk(ctx, types.DomainRetailStore, snapshot.Responses, &threat, snapshot.ControlsFor(id))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to score shrinkage threat", goerr.V("threat_id", id))
		}

		score := result.CurrentRisk
		weight := threat.TypicalLikelihood
		weightedSum += float64(score * weight)
		totalWeight += float64(weight)
		if score > maxScore {
			maxScore = score
			maxThreat = id
		}

		breakdown = append(breakdown, model.ShrinkageBreakdown{
			ThreatID: id,
			Score:    score,
			Weight:   weight,
		})

		switch {
		case score >= normalizedCritical:
			riskFactors = append(riskFactors, fmt.Sprintf("%s risk is critical (%d)", threat.Name, score))
		case score >= normalizedHigh:
			riskFactors = append(riskFactors, fmt.Sprintf("%s risk is high (%d)", threat.Name, score))
		}
	}

	if totalWeight == 0 {
		return nil, goerr.New("no shrinkage threats available in catalog")
	}

	composite := int(math.Round(weightedSum / totalWeight))
	if maxScore >= normalizedCritical {
		composite = maxScore
		riskFactors = append(riskFactors, fmt.Sprintf("critical %s score escalates the composite", maxThreat.String()))
	}

	return &model.ShrinkageResult{
		Score:       composite,
		RiskLevel:   ClassifyNormalized(composite),
		Breakdown:   breakdown,
		RiskFactors: riskFactors,
	}, nil
}

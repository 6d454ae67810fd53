package slack

import (
	"context"

	"github.com/secmon-lab/argus/pkg/domain/model"
)

// Service provides interface to Slack API for risk notifications
type Service interface {
	// PostRiskAlert posts a Block Kit alert for a threat whose residual
	// risk was classified critical. Returns the message timestamp.
	PostRiskAlert(ctx context.Context, assessment *model.Assessment, result *model.RiskCalculationResult) (string, error)

	// PostAssessmentSummary posts a one-message summary of a finished
	// calculation run: threat count and the highest residual risk.
	PostAssessmentSummary(ctx context.Context, assessment *model.Assessment, results []*model.RiskCalculationResult) (string, error)
}

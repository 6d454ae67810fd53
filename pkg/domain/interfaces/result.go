package interfaces

import (
	"context"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type ResultRepository interface {
	// Save stores or replaces the result of one (assessment, threat) pair
	Save(ctx context.Context, assessmentID types.AssessmentID, result *model.RiskCalculationResult) error

	// List retrieves all stored results of an assessment
	List(ctx context.Context, assessmentID types.AssessmentID) ([]*model.StoredResult, error)
}

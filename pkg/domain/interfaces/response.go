package interfaces

import (
	"context"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type ResponseRepository interface {
	// Put replaces the full answer set of an assessment
	Put(ctx context.Context, assessmentID types.AssessmentID, responses []model.Response) error

	// Get retrieves the answer set of an assessment. An assessment without
	// captured answers yields an empty set, not an error.
	Get(ctx context.Context, assessmentID types.AssessmentID) (model.ResponseSet, error)
}

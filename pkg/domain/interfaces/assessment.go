package interfaces

import (
	"context"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type AssessmentRepository interface {
	// Create creates a new assessment with a generated ID
	Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error)

	// Get retrieves an assessment by ID
	Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error)

	// List retrieves all assessments
	List(ctx context.Context) ([]*model.Assessment, error)

	// Update updates an existing assessment
	Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error)

	// Delete deletes an assessment by ID
	Delete(ctx context.Context, id types.AssessmentID) error
}

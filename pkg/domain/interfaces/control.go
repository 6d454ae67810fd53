package interfaces

import (
	"context"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type ControlRepository interface {
	// Put replaces the control list of an assessment
	Put(ctx context.Context, assessmentID types.AssessmentID, controls []model.Control) error

	// List retrieves all controls of an assessment
	List(ctx context.Context, assessmentID types.AssessmentID) ([]model.Control, error)

	// ListByThreat retrieves the controls of one (assessment, threat) pair
	ListByThreat(ctx context.Context, assessmentID types.AssessmentID, threatID types.ThreatID) ([]model.Control, error)
}

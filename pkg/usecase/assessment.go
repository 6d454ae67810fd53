package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/secmon-lab/argus/pkg/service/slack"
)

// Context keys for error values
const (
	AssessmentIDKey = "assessment_id"
)

type AssessmentUseCase struct {
	repo         interfaces.Repository
	engine       *engine.Engine
	slackService slack.Service
}

func NewAssessmentUseCase(repo interfaces.Repository, eng *engine.Engine, slackService slack.Service) *AssessmentUseCase {
	return &AssessmentUseCase{
		repo:         repo,
		engine:       eng,
		slackService: slackService,
	}
}

func (uc *AssessmentUseCase) CreateAssessment(ctx context.Context, name string, domain types.DomainType, description string) (*model.Assessment, error) {
	if name == "" {
		return nil, goerr.New("assessment name is required")
	}
	if !domain.IsValid() {
		return nil, goerr.Wrap(ErrInvalidDomain, "unknown domain type", goerr.V("domain", domain))
	}

	created, err := uc.repo.Assessment().Create(ctx, &model.Assessment{
		Name:        name,
		Domain:      domain,
		Description: description,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}

	return created, nil
}

func (uc *AssessmentUseCase) GetAssessment(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}
	return assessment, nil
}

func (uc *AssessmentUseCase) ListAssessments(ctx context.Context) ([]*model.Assessment, error) {
	listed, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}
	return listed, nil
}

func (uc *AssessmentUseCase) UpdateAssessment(ctx context.Context, id types.AssessmentID, name, description string) (*model.Assessment, error) {
	if name == "" {
		return nil, goerr.New("assessment name is required")
	}

	existing, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	existing.Name = name
	existing.Description = description

	updated, err := uc.repo.Assessment().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment", goerr.V(AssessmentIDKey, id))
	}

	return updated, nil
}

func (uc *AssessmentUseCase) DeleteAssessment(ctx context.Context, id types.AssessmentID) error {
	if _, err := uc.repo.Assessment().Get(ctx, id); err != nil {
		return goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	if err := uc.repo.Assessment().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete assessment", goerr.V(AssessmentIDKey, id))
	}

	return nil
}

// PutResponses replaces the full answer set of an assessment
func (uc *AssessmentUseCase) PutResponses(ctx context.Context, id types.AssessmentID, responses []model.Response) error {
	if _, err := uc.repo.Assessment().Get(ctx, id); err != nil {
		return goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	for _, r := range responses {
		if err := r.QuestionID.Validate(); err != nil {
			return goerr.Wrap(err, "invalid question ID", goerr.V("question_id", r.QuestionID))
		}
	}

	if err := uc.repo.Response().Put(ctx, id, responses); err != nil {
		return goerr.Wrap(err, "failed to save responses", goerr.V(AssessmentIDKey, id))
	}

	return nil
}

// GetResponses retrieves the captured answer set of an assessment
func (uc *AssessmentUseCase) GetResponses(ctx context.Context, id types.AssessmentID) (model.ResponseSet, error) {
	if _, err := uc.repo.Assessment().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	rs, err := uc.repo.Response().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get responses", goerr.V(AssessmentIDKey, id))
	}

	return rs, nil
}

// PutControls replaces the control inventory of an assessment. Controls
// must reference threats of the assessment's domain catalog.
func (uc *AssessmentUseCase) PutControls(ctx context.Context, id types.AssessmentID, controls []model.Control) error {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	for _, c := range controls {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidControl, "control validation failed",
				goerr.V("control_id", c.ID), goerr.V("cause", err.Error()))
		}
		if _, ok := uc.engine.Catalog().Threat(assessment.Domain, c.ThreatID); !ok {
			return goerr.Wrap(ErrInvalidControl, "control references a threat outside the domain catalog",
				goerr.V("control_id", c.ID), goerr.V("threat_id", c.ThreatID), goerr.V("domain", assessment.Domain))
		}
	}

	if err := uc.repo.Control().Put(ctx, id, controls); err != nil {
		return goerr.Wrap(err, "failed to save controls", goerr.V(AssessmentIDKey, id))
	}

	return nil
}

// GetControls retrieves the control inventory of an assessment
func (uc *AssessmentUseCase) GetControls(ctx context.Context, id types.AssessmentID) ([]model.Control, error) {
	if _, err := uc.repo.Assessment().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	controls, err := uc.repo.Control().List(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get controls", goerr.V(AssessmentIDKey, id))
	}

	return controls, nil
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[types.AssessmentID]*model.Assessment
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[types.AssessmentID]*model.Assessment),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := &model.Assessment{
		ID:          types.NewAssessmentID(),
		Name:        assessment.Name,
		Domain:      assessment.Domain,
		Description: assessment.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.assessments[created.ID] = created
	return copyAssessment(created), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessment, exists := r.assessments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	return copyAssessment(assessment), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments := make([]*model.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		assessments = append(assessments, copyAssessment(a))
	}
	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.Before(assessments[j].CreatedAt)
	})

	return assessments, nil
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.assessments[assessment.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", assessment.ID))
	}

	updated := &model.Assessment{
		ID:          existing.ID,
		Name:        assessment.Name,
		Domain:      assessment.Domain,
		Description: assessment.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	r.assessments[updated.ID] = updated
	return copyAssessment(updated), nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id types.AssessmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assessments[id]; !exists {
		return goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	delete(r.assessments, id)
	return nil
}

// copyAssessment returns a copy to prevent external modification
func copyAssessment(a *model.Assessment) *model.Assessment {
	c := *a
	return &c
}

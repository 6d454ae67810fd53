package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type controlRepository struct {
	mu       sync.RWMutex
	controls map[types.AssessmentID][]model.Control
}

func newControlRepository() *controlRepository {
	return &controlRepository{
		controls: make(map[types.AssessmentID][]model.Control),
	}
}

func (r *controlRepository) Put(ctx context.Context, assessmentID types.AssessmentID, controls []model.Control) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]model.Control, len(controls))
	copy(stored, controls)
	r.controls[assessmentID] = stored
	return nil
}

func (r *controlRepository) List(ctx context.Context, assessmentID types.AssessmentID) ([]model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	controls := r.controls[assessmentID]
	out := make([]model.Control, len(controls))
	copy(out, controls)
	return out, nil
}

func (r *controlRepository) ListByThreat(ctx context.Context, assessmentID types.AssessmentID, threatID types.ThreatID) ([]model.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Control
	for _, c := range r.controls[assessmentID] {
		if c.ThreatID == threatID {
			out = append(out, c)
		}
	}
	return out, nil
}

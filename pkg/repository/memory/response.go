package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

type responseRepository struct {
	mu        sync.RWMutex
	responses map[types.AssessmentID][]model.Response
}

func newResponseRepository() *responseRepository {
	return &responseRepository{
		responses: make(map[types.AssessmentID][]model.Response),
	}
}

func (r *responseRepository) Put(ctx context.Context, assessmentID types.AssessmentID, responses []model.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]model.Response, len(responses))
	copy(stored, responses)
	r.responses[assessmentID] = stored
	return nil
}

func (r *responseRepository) Get(ctx context.Context, assessmentID types.AssessmentID) (model.ResponseSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.NewResponseSet(r.responses[assessmentID]), nil
}

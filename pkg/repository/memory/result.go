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

type resultRepository struct {
	mu      sync.RWMutex
	results map[types.AssessmentID]map[types.ThreatID]*model.StoredResult
}

func newResultRepository() *resultRepository {
	return &resultRepository{
		results: make(map[types.AssessmentID]map[types.ThreatID]*model.StoredResult),
	}
}

func (r *resultRepository) Save(ctx context.Context, assessmentID types.AssessmentID, result *model.RiskCalculationResult) error {
	if result == nil {
		return goerr.New("result is nil", goerr.V("assessment_id", assessmentID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.results[assessmentID] == nil {
		r.results[assessmentID] = make(map[types.ThreatID]*model.StoredResult)
	}
	r.results[assessmentID][result.ThreatID] = &model.StoredResult{
		AssessmentID: assessmentID,
		Result:       *result,
		CalculatedAt: time.Now().UTC(),
	}
	return nil
}

func (r *resultRepository) List(ctx context.Context, assessmentID types.AssessmentID) ([]*model.StoredResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.StoredResult, 0, len(r.results[assessmentID]))
	for _, stored := range r.results[assessmentID] {
		c := *stored
		results = append(results, &c)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Result.ThreatID < results[j].Result.ThreatID
	})

	return results, nil
}

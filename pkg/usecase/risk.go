package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/secmon-lab/argus/pkg/service/slack"
	"github.com/secmon-lab/argus/pkg/utils/async"
	"github.com/secmon-lab/argus/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// saveConcurrency bounds the parallel result writes of one calculation run
const saveConcurrency = 8

type RiskUseCase struct {
	repo         interfaces.Repository
	engine       *engine.Engine
	slackService slack.Service
}

func NewRiskUseCase(repo interfaces.Repository, eng *engine.Engine, slackService slack.Service) *RiskUseCase {
	return &RiskUseCase{
		repo:         repo,
		engine:       eng,
		slackService: slackService,
	}
}

// snapshot loads the calculation inputs of an assessment
func (uc *RiskUseCase) snapshot(ctx context.Context, id types.AssessmentID) (*model.AssessmentSnapshot, error) {
	responses, err := uc.repo.Response().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load responses", goerr.V(AssessmentIDKey, id))
	}

	controls, err := uc.repo.Control().List(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load controls", goerr.V(AssessmentIDKey, id))
	}

	grouped := make(map[types.ThreatID][]model.Control)
	for _, c := range controls {
		grouped[c.ThreatID] = append(grouped[c.ThreatID], c)
	}

	return &model.AssessmentSnapshot{
		Responses: responses,
		Controls:  grouped,
	}, nil
}

// Calculate scores every catalog threat of the assessment's domain, persists
// the results, and notifies Slack about critical residual risks.
func (uc *RiskUseCase) Calculate(ctx context.Context, id types.AssessmentID) ([]*model.RiskCalculationResult, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	snapshot, err := uc.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	results, err := uc.engine.CalculateAssessment(ctx, assessment.Domain, snapshot)
	if err != nil {
		return nil, goerr.Wrap(err, "calculation failed", goerr.V(AssessmentIDKey, id))
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(saveConcurrency)
	for _, result := range results {
		eg.Go(func() error {
			if err := uc.repo.Result().Save(egCtx, id, result); err != nil {
				return goerr.Wrap(err, "failed to save result", goerr.V("threat_id", result.ThreatID))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to persist calculation results", goerr.V(AssessmentIDKey, id))
	}

	uc.notifyCriticalRisks(ctx, assessment, results)

	return results, nil
}

// notifyCriticalRisks fires Slack alerts for critical residual risks in the
// background. Notification failures are logged, never surfaced to the caller.
func (uc *RiskUseCase) notifyCriticalRisks(ctx context.Context, assessment *model.Assessment, results []*model.RiskCalculationResult) {
	if uc.slackService == nil {
		return
	}

	var critical []*model.RiskCalculationResult
	for _, r := range results {
		if engine.ClassifyScore(assessment.Domain, r.ResidualRisk) == types.RiskLevelCritical {
			critical = append(critical, r)
		}
	}
	if len(critical) == 0 {
		return
	}

	logging.From(ctx).Info("notifying critical risks",
		"assessment_id", assessment.ID.String(), "count", len(critical))

	async.Dispatch(ctx, func(ctx context.Context) error {
		for _, r := range critical {
			if _, err := uc.slackService.PostRiskAlert(ctx, assessment, r); err != nil {
				return err
			}
		}
		_, err := uc.slackService.PostAssessmentSummary(ctx, assessment, results)
		return err
	})
}

// Results retrieves the stored calculation results of an assessment
func (uc *RiskUseCase) Results(ctx context.Context, id types.AssessmentID) ([]*model.StoredResult, error) {
	if _, err := uc.repo.Assessment().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}

	stored, err := uc.repo.Result().List(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list results", goerr.V(AssessmentIDKey, id))
	}

	return stored, nil
}

// ShrinkageScore computes the composite shrinkage risk of a retail store
// assessment from its current responses and controls.
func (uc *RiskUseCase) ShrinkageScore(ctx context.Context, id types.AssessmentID) (*model.ShrinkageResult, error) {
	assessment, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAssessmentNotFound, "assessment not found", goerr.V(AssessmentIDKey, id))
	}
	if assessment.Domain != types.DomainRetailStore {
		return nil, goerr.Wrap(ErrNotRetailDomain, "wrong domain for shrinkage score",
			goerr.V(AssessmentIDKey, id), goerr.V("domain", assessment.Domain))
	}

	snapshot, err := uc.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := uc.engine.CalculateShrinkageRiskScore(ctx, snapshot)
	if err != nil {
		return nil, goerr.Wrap(err, "shrinkage calculation failed", goerr.V(AssessmentIDKey, id))
	}

	return result, nil
}

// TotalCostOfRisk computes the annualized financial exposure rollup from a
// supplied risk profile. Stateless; nothing is persisted.
func (uc *RiskUseCase) TotalCostOfRisk(ctx context.Context, profile *model.RiskProfile) *model.TotalCostOfRisk {
	return engine.CalculateTotalCostOfRisk(profile)
}

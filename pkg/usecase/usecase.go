package usecase

import (
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/secmon-lab/argus/pkg/service/slack"
)

type UseCases struct {
	repo         interfaces.Repository
	engine       *engine.Engine
	slackService slack.Service

	Assessment *AssessmentUseCase
	Risk       *RiskUseCase
}

type Option func(*UseCases)

// WithSlackService enables Slack notification for critical residual risks
func WithSlackService(svc slack.Service) Option {
	return func(uc *UseCases) {
		uc.slackService = svc
	}
}

// WithEngine overrides the default catalog engine, used when a catalog
// override file is configured.
func WithEngine(eng *engine.Engine) Option {
	return func(uc *UseCases) {
		uc.engine = eng
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		engine: engine.New(engine.DefaultCatalog()),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Assessment = NewAssessmentUseCase(repo, uc.engine, uc.slackService)
	uc.Risk = NewRiskUseCase(repo, uc.engine, uc.slackService)

	return uc
}

// Engine exposes the configured calculation engine
func (uc *UseCases) Engine() *engine.Engine {
	return uc.engine
}

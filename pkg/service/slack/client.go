package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/slack-go/slack"
)

// client implements Service interface
type client struct {
	api     *slack.Client
	channel string
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new Slack service with the provided bot token and
// notification channel ID.
func New(token, channelID string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	c := &client{
		api:     slack.New(token),
		channel: channelID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) PostRiskAlert(ctx context.Context, assessment *model.Assessment, result *model.RiskCalculationResult) (string, error) {
	if assessment == nil || result == nil {
		return "", goerr.New("assessment and result are required")
	}

	level := engine.ClassifyScore(assessment.Domain, result.ResidualRisk)
	fallback := fmt.Sprintf("[%s] %s: %s residual risk %d",
		assessment.Name, result.ThreatName, level, result.ResidualRisk)

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf(":rotating_light: %s risk: %s", level, result.ThreatName), true, false)),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Assessment:*\n%s", assessment.Name), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Domain:*\n%s", assessment.Domain), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Inherent risk:*\n%d", result.InherentRisk), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Residual risk:*\n%d", result.ResidualRisk), false, false),
		}, nil),
	}

	if len(result.Recommendations) > 0 {
		text := "*Recommended controls:*"
		for _, rec := range result.Recommendations {
			text += "\n• " + rec
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil))
	}

	_, ts, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallback, false),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to post risk alert",
			goerr.V("channel", c.channel), goerr.V("threat_id", result.ThreatID))
	}

	return ts, nil
}

func (c *client) PostAssessmentSummary(ctx context.Context, assessment *model.Assessment, results []*model.RiskCalculationResult) (string, error) {
	if assessment == nil {
		return "", goerr.New("assessment is required")
	}

	var worst *model.RiskCalculationResult
	for _, r := range results {
		if worst == nil || r.ResidualRisk > worst.ResidualRisk {
			worst = r
		}
	}

	fallback := fmt.Sprintf("Assessment %q calculated: %d threats evaluated", assessment.Name, len(results))
	summary := fmt.Sprintf("*%s* (%s)\n%d threats evaluated", assessment.Name, assessment.Domain, len(results))
	if worst != nil {
		level := engine.ClassifyScore(assessment.Domain, worst.ResidualRisk)
		summary += fmt.Sprintf("\nHighest residual risk: *%s* (%d, %s)", worst.ThreatName, worst.ResidualRisk, level)
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "Risk assessment completed", true, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, summary, false, false), nil, nil),
	}

	_, ts, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(fallback, false),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to post assessment summary",
			goerr.V("channel", c.channel), goerr.V("assessment_id", assessment.ID))
	}

	return ts, nil
}

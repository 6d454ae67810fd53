package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/argus/pkg/cli/config"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/urfave/cli/v3"
)

// calcInput is the one-shot calculation input file
type calcInput struct {
	Domain    string         `toml:"domain"`
	Responses []calcResponse `toml:"response"`
	Controls  []calcControl  `toml:"control"`
}

type calcResponse struct {
	Question string `toml:"question"`
	Answer   any    `toml:"answer"`
}

type calcControl struct {
	ID            string `toml:"id"`
	Threat        string `toml:"threat"`
	Name          string `toml:"name"`
	Type          string `toml:"type"`
	Effectiveness int    `toml:"effectiveness"`
}

func loadCalcInput(path string) (*calcInput, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}

	var input calcInput
	if err := toml.Unmarshal(data, &input); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML input", goerr.V("path", path))
	}

	domain := types.DomainType(input.Domain)
	if !domain.IsValid() {
		return nil, goerr.New("unknown domain type", goerr.V("domain", input.Domain))
	}

	return &input, nil
}

func (in *calcInput) snapshot() *model.AssessmentSnapshot {
	responses := make([]model.Response, 0, len(in.Responses))
	for _, r := range in.Responses {
		responses = append(responses, model.Response{
			QuestionID: types.QuestionID(r.Question),
			Answer:     r.Answer,
		})
	}

	controls := make(map[types.ThreatID][]model.Control)
	for _, c := range in.Controls {
		threatID := types.ThreatID(c.Threat)
		controls[threatID] = append(controls[threatID], model.Control{
			ID:            types.ControlID(c.ID),
			ThreatID:      threatID,
			Name:          c.Name,
			ControlType:   types.ControlType(c.Type),
			Effectiveness: c.Effectiveness,
		})
	}

	return &model.AssessmentSnapshot{
		Responses: model.NewResponseSet(responses),
		Controls:  controls,
	}
}

var riskLevelColors = map[types.RiskLevel]*color.Color{
	types.RiskLevelCritical: color.New(color.FgRed, color.Bold),
	types.RiskLevelHigh:     color.New(color.FgMagenta),
	types.RiskLevelMedium:   color.New(color.FgYellow),
	types.RiskLevelLow:      color.New(color.FgGreen),
}

func printResult(domain types.DomainType, r *model.RiskCalculationResult) {
	level := engine.ClassifyScore(domain, r.ResidualRisk)
	c, ok := riskLevelColors[level]
	if !ok {
		c = color.New(color.Reset)
	}

	fmt.Printf("%s %s\n", c.Sprintf("[%s]", level), color.New(color.Bold).Sprint(r.ThreatName))
	fmt.Printf("  factors: L=%d V=%d I=%d", r.Factors.Likelihood, r.Factors.Vulnerability, r.Factors.Impact)
	if r.Factors.HasExposure {
		fmt.Printf(" E=%.1f", r.Factors.Exposure)
	}
	fmt.Println()
	fmt.Printf("  inherent=%d current=%d residual=%d (controls %.0f%%)\n",
		r.InherentRisk, r.CurrentRisk, r.ResidualRisk, r.ControlEffectiveness*100)
	for _, f := range r.Findings {
		fmt.Printf("  ! %s\n", f)
	}
	for _, rec := range r.Recommendations {
		fmt.Printf("  > %s\n", rec)
	}
	fmt.Println()
}

func cmdCalc() *cli.Command {
	var inputPath string
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Assessment input TOML file",
			Required:    true,
			Sources:     cli.EnvVars("ARGUS_CALC_INPUT"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "calc",
		Aliases: []string{"c"},
		Usage:   "Run a one-shot risk calculation from an input file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := loadCalcInput(inputPath)
			if err != nil {
				return err
			}

			eng, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure threat catalog")
			}

			domain := types.DomainType(input.Domain)
			snapshot := input.snapshot()

			results, err := eng.CalculateAssessment(ctx, domain, snapshot)
			if err != nil {
				return goerr.Wrap(err, "calculation failed")
			}

			fmt.Printf("Domain: %s (%d threats)\n\n", domain, len(results))
			for _, r := range results {
				printResult(domain, r)
			}

			if domain == types.DomainRetailStore {
				shrinkage, err := eng.CalculateShrinkageRiskScore(ctx, snapshot)
				if err != nil {
					return goerr.Wrap(err, "shrinkage calculation failed")
				}

				c, ok := riskLevelColors[shrinkage.RiskLevel]
				if !ok {
					c = color.New(color.Reset)
				}
				fmt.Printf("Composite shrinkage risk: %s (score %d)\n",
					c.Sprint(shrinkage.RiskLevel), shrinkage.Score)
				for _, f := range shrinkage.RiskFactors {
					fmt.Printf("  ! %s\n", f)
				}
			}

			return nil
		},
	}
}

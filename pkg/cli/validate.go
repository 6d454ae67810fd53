package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/cli/config"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/secmon-lab/argus/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogPath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a threat catalog file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "catalog-file",
				Usage:       "Threat catalog TOML file to validate",
				Required:    true,
				Sources:     cli.EnvVars("ARGUS_CATALOG_FILE"),
				Destination: &catalogPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			f, err := config.LoadCatalogFile(catalogPath)
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			catalog, err := engine.NewCatalog(f.ToCatalogConfig())
			if err != nil {
				return goerr.Wrap(err, "catalog construction failed")
			}

			for _, d := range f.Domains {
				threats := catalog.ForDomain(types.DomainType(d.Domain))
				logger.Info("Domain validated",
					"domain", d.Domain,
					"threat_count", len(threats),
				)
			}

			logger.Info("Catalog validation passed", "path", catalogPath)
			return nil
		},
	}
}

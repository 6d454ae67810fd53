package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/argus/pkg/domain/model/config"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/secmon-lab/argus/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// CatalogFile represents the threat catalog override file
type CatalogFile struct {
	Domains []CatalogDomain `toml:"domain"`
}

// CatalogDomain represents the threat list of one domain
type CatalogDomain struct {
	Domain  string          `toml:"domain"`
	Threats []CatalogThreat `toml:"threat"`
}

// CatalogThreat represents one threat catalog entry
type CatalogThreat struct {
	ID                string `toml:"id"`
	Name              string `toml:"name"`
	Category          string `toml:"category"`
	TypicalLikelihood int    `toml:"likelihood"`
	TypicalImpact     int    `toml:"impact"`
	TaxonomyCode      string `toml:"taxonomy"`
}

// Validate checks if the CatalogThreat is valid
func (t *CatalogThreat) Validate() error {
	id := types.ThreatID(t.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid threat ID")
	}
	if t.Name == "" {
		return goerr.New("threat name is required", goerr.V("id", t.ID))
	}
	if t.TypicalLikelihood < 1 || t.TypicalLikelihood > 5 {
		return goerr.New("typical likelihood must be between 1 and 5",
			goerr.V("id", t.ID), goerr.V("likelihood", t.TypicalLikelihood))
	}
	if t.TypicalImpact < 1 || t.TypicalImpact > 5 {
		return goerr.New("typical impact must be between 1 and 5",
			goerr.V("id", t.ID), goerr.V("impact", t.TypicalImpact))
	}
	return nil
}

// Validate checks if the CatalogFile is valid
func (f *CatalogFile) Validate() error {
	for _, d := range f.Domains {
		domain := types.DomainType(d.Domain)
		if !domain.IsValid() {
			return goerr.New("unknown domain type", goerr.V("domain", d.Domain))
		}
		if len(d.Threats) == 0 {
			return goerr.New("domain has no threats", goerr.V("domain", d.Domain))
		}
		for _, t := range d.Threats {
			if err := t.Validate(); err != nil {
				return goerr.Wrap(err, "invalid threat entry", goerr.V("domain", d.Domain))
			}
		}
	}
	return nil
}

// ToCatalogConfig converts the file representation to the domain config
func (f *CatalogFile) ToCatalogConfig() *domainConfig.CatalogConfig {
	cfg := &domainConfig.CatalogConfig{
		Domains: make([]domainConfig.DomainCatalog, 0, len(f.Domains)),
	}
	for _, d := range f.Domains {
		dc := domainConfig.DomainCatalog{
			Domain:  d.Domain,
			Threats: make([]domainConfig.ThreatEntry, 0, len(d.Threats)),
		}
		for _, t := range d.Threats {
			dc.Threats = append(dc.Threats, domainConfig.ThreatEntry{
				ID:                t.ID,
				Name:              t.Name,
				Category:          t.Category,
				TypicalLikelihood: t.TypicalLikelihood,
				TypicalImpact:     t.TypicalImpact,
				TaxonomyCode:      t.TaxonomyCode,
			})
		}
		cfg.Domains = append(cfg.Domains, dc)
	}
	return cfg
}

// LoadCatalogFile loads and validates a threat catalog file
func LoadCatalogFile(path string) (*CatalogFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	var f CatalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML catalog", goerr.V("path", path))
	}

	if err := f.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V("path", path))
	}

	return &f, nil
}

// Catalog holds CLI flags for threat catalog configuration
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-file",
			Usage:       "Threat catalog TOML file (built-in catalog when empty)",
			Category:    "Catalog",
			Sources:     cli.EnvVars("ARGUS_CATALOG_FILE"),
			Destination: &c.path,
		},
	}
}

// Configure builds the calculation engine from the built-in catalog or the
// configured override file.
func (c *Catalog) Configure() (*engine.Engine, error) {
	if c.path == "" {
		return engine.New(engine.DefaultCatalog()), nil
	}

	f, err := LoadCatalogFile(c.path)
	if err != nil {
		return nil, err
	}

	catalog, err := engine.NewCatalog(f.ToCatalogConfig())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build catalog", goerr.V("path", c.path))
	}

	logging.Default().Info("Using catalog override file", "path", c.path)
	return engine.New(catalog), nil
}

package config

// ThreatEntry represents one threat catalog entry configuration
type ThreatEntry struct {
	ID                string
	Name              string
	Category          string
	TypicalLikelihood int
	TypicalImpact     int
	TaxonomyCode      string
}

// DomainCatalog holds the ordered threat list of one domain
type DomainCatalog struct {
	Domain  string
	Threats []ThreatEntry
}

// CatalogConfig holds the full threat catalog configuration
type CatalogConfig struct {
	Domains []DomainCatalog
}

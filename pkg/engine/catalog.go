package engine

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/model/config"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Catalog is the immutable, loaded-once threat reference data. It is built
// at startup and passed by reference into the engine; it has no mutation API.
type Catalog struct {
	byDomain map[types.DomainType][]model.Threat
	index    map[types.DomainType]map[types.ThreatID]model.Threat
}

// NewCatalog builds a catalog from configuration. Threat order within a
// domain is preserved as the evaluation order.
func NewCatalog(cfg *config.CatalogConfig) (*Catalog, error) {
	c := &Catalog{
		byDomain: make(map[types.DomainType][]model.Threat),
		index:    make(map[types.DomainType]map[types.ThreatID]model.Threat),
	}

	for _, dc := range cfg.Domains {
		domain := types.DomainType(dc.Domain)
		if !domain.IsValid() {
			return nil, goerr.New("unknown domain in catalog", goerr.V("domain", dc.Domain))
		}

		seen := make(map[types.ThreatID]bool)
		for _, entry := range dc.Threats {
			id := types.ThreatID(entry.ID)
			if err := id.Validate(); err != nil {
				return nil, goerr.Wrap(err, "invalid threat ID in catalog")
			}
			if seen[id] {
				return nil, goerr.New("duplicate threat ID in catalog", goerr.V("domain", dc.Domain), goerr.V("id", entry.ID))
			}
			seen[id] = true

			if entry.TypicalLikelihood < 1 || entry.TypicalLikelihood > 5 {
				return nil, goerr.New("typical likelihood must be between 1 and 5",
					goerr.V("id", entry.ID), goerr.V("value", entry.TypicalLikelihood))
			}
			if entry.TypicalImpact < 1 || entry.TypicalImpact > 5 {
				return nil, goerr.New("typical impact must be between 1 and 5",
					goerr.V("id", entry.ID), goerr.V("value", entry.TypicalImpact))
			}

			threat := model.Threat{
				ID:                id,
				Name:              entry.Name,
				Category:          entry.Category,
				TypicalLikelihood: entry.TypicalLikelihood,
				TypicalImpact:     entry.TypicalImpact,
				TaxonomyCode:      entry.TaxonomyCode,
			}
			c.byDomain[domain] = append(c.byDomain[domain], threat)
			if c.index[domain] == nil {
				c.index[domain] = make(map[types.ThreatID]model.Threat)
			}
			c.index[domain][id] = threat
		}
	}

	return c, nil
}

// ForDomain returns the ordered threat list of a domain. The returned slice
// is a copy; callers may not alter catalog state through it.
func (c *Catalog) ForDomain(domain types.DomainType) []model.Threat {
	threats := c.byDomain[domain]
	out := make([]model.Threat, len(threats))
	copy(out, threats)
	return out
}

// Threat looks up one catalog entry
func (c *Catalog) Threat(domain types.DomainType, id types.ThreatID) (model.Threat, bool) {
	t, ok := c.index[domain][id]
	return t, ok
}

// DefaultCatalog returns the built-in threat catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultCatalogConfig())
	if err != nil {
		// The built-in catalog is static data validated by tests.
		panic(err)
	}
	return c
}

func defaultCatalogConfig() *config.CatalogConfig {
	return &config.CatalogConfig{
		Domains: []config.DomainCatalog{
			{
				Domain: types.DomainOfficeBuilding.String(),
				Threats: []config.ThreatEntry{
					{ID: "forced_entry", Name: "Forced Entry", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-OB-01"},
					{ID: "unauthorized_access", Name: "Unauthorized Access", Category: "intrusion", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-OB-02"},
					{ID: "theft_burglary", Name: "Theft / Burglary", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-OB-03"},
					{ID: "vandalism", Name: "Vandalism", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 2, TaxonomyCode: "PSR-OB-04"},
					{ID: "workplace_violence", Name: "Workplace Violence", Category: "violence", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-OB-05"},
					{ID: "active_threat", Name: "Active Threat", Category: "violence", TypicalLikelihood: 1, TypicalImpact: 5, TaxonomyCode: "PSR-OB-06"},
					{ID: "data_theft", Name: "Physical Data Theft", Category: "information", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-OB-07"},
					{ID: "bomb_threat", Name: "Bomb Threat", Category: "violence", TypicalLikelihood: 1, TypicalImpact: 4, TaxonomyCode: "PSR-OB-08"},
					{ID: "civil_disturbance", Name: "Civil Disturbance", Category: "external", TypicalLikelihood: 2, TypicalImpact: 3, TaxonomyCode: "PSR-OB-09"},
					{ID: "insider_threat", Name: "Insider Threat", Category: "personnel", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-OB-10"},
				},
			},
			{
				Domain: types.DomainRetailStore.String(),
				Threats: []config.ThreatEntry{
					{ID: "shoplifting", Name: "Shoplifting", Category: "shrinkage", TypicalLikelihood: 5, TypicalImpact: 2, TaxonomyCode: "PSR-RS-01"},
					{ID: "organized_retail_crime", Name: "Organized Retail Crime", Category: "shrinkage", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-RS-02"},
					{ID: "employee_theft", Name: "Employee Theft", Category: "shrinkage", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-RS-03"},
					{ID: "cash_handling_theft", Name: "Cash Handling Theft", Category: "shrinkage", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-RS-04"},
					{ID: "inventory_shrinkage", Name: "Inventory Shrinkage", Category: "shrinkage", TypicalLikelihood: 4, TypicalImpact: 2, TaxonomyCode: "PSR-RS-05"},
					{ID: "robbery", Name: "Robbery", Category: "violence", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-RS-06"},
					{ID: "burglary", Name: "After-hours Burglary", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-RS-07"},
					{ID: "vandalism", Name: "Vandalism", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 2, TaxonomyCode: "PSR-RS-08"},
					{ID: "active_threat", Name: "Active Threat", Category: "violence", TypicalLikelihood: 1, TypicalImpact: 5, TaxonomyCode: "PSR-RS-09"},
				},
			},
			{
				Domain: types.DomainWarehouse.String(),
				Threats: []config.ThreatEntry{
					{ID: "cargo_theft_full_truckload", Name: "Cargo Theft (Full Truckload)", Category: "cargo", TypicalLikelihood: 2, TypicalImpact: 5, TaxonomyCode: "PSR-WH-01"},
					{ID: "cargo_theft_pilferage", Name: "Cargo Theft (Pilferage)", Category: "cargo", TypicalLikelihood: 4, TypicalImpact: 2, TaxonomyCode: "PSR-WH-02"},
					{ID: "trailer_theft", Name: "Trailer Theft", Category: "cargo", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-WH-03"},
					{ID: "unauthorized_dock_access", Name: "Unauthorized Dock Access", Category: "intrusion", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-WH-04"},
					{ID: "insider_collusion", Name: "Insider Collusion", Category: "personnel", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-WH-05"},
					{ID: "equipment_theft", Name: "Equipment Theft", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 2, TaxonomyCode: "PSR-WH-06"},
					{ID: "active_threat", Name: "Active Threat", Category: "violence", TypicalLikelihood: 1, TypicalImpact: 5, TaxonomyCode: "PSR-WH-07"},
					{ID: "vandalism", Name: "Vandalism", Category: "property_crime", TypicalLikelihood: 2, TypicalImpact: 2, TaxonomyCode: "PSR-WH-08"},
				},
			},
			{
				Domain: types.DomainExecutiveProtection.String(),
				Threats: []config.ThreatEntry{
					{ID: "targeted_physical_attack", Name: "Targeted Physical Attack", Category: "violence", TypicalLikelihood: 2, TypicalImpact: 5, TaxonomyCode: "PSR-EP-01"},
					{ID: "kidnapping_ransom", Name: "Kidnapping for Ransom", Category: "violence", TypicalLikelihood: 1, TypicalImpact: 5, TaxonomyCode: "PSR-EP-02"},
					{ID: "stalking_harassment", Name: "Stalking / Harassment", Category: "harassment", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-EP-03"},
					{ID: "home_invasion", Name: "Home Invasion", Category: "residence", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-EP-04"},
					{ID: "travel_ambush", Name: "Travel Ambush", Category: "travel", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-EP-05"},
					{ID: "digital_surveillance", Name: "Digital Surveillance", Category: "information", TypicalLikelihood: 3, TypicalImpact: 3, TaxonomyCode: "PSR-EP-06"},
					{ID: "doxxing_exposure", Name: "Doxxing / Address Exposure", Category: "information", TypicalLikelihood: 3, TypicalImpact: 2, TaxonomyCode: "PSR-EP-07"},
					{ID: "household_insider", Name: "Household Insider Threat", Category: "personnel", TypicalLikelihood: 2, TypicalImpact: 4, TaxonomyCode: "PSR-EP-08"},
				},
			},
		},
	}
}

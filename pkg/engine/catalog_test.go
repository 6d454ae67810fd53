package engine

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/model/config"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("every domain has a threat list", func(t *testing.T) {
		gt.Array(t, catalog.ForDomain(types.DomainOfficeBuilding)).Length(10)
		gt.Array(t, catalog.ForDomain(types.DomainRetailStore)).Length(9)
		gt.Array(t, catalog.ForDomain(types.DomainWarehouse)).Length(8)
		gt.Array(t, catalog.ForDomain(types.DomainExecutiveProtection)).Length(8)
	})

	t.Run("threat order is stable", func(t *testing.T) {
		office := catalog.ForDomain(types.DomainOfficeBuilding)
		gt.Value(t, office[0].ID).Equal(types.ThreatID("forced_entry"))
		gt.Value(t, office[len(office)-1].ID).Equal(types.ThreatID("insider_threat"))
	})

	t.Run("lookup by domain and ID", func(t *testing.T) {
		threat, ok := catalog.Threat(types.DomainRetailStore, "shoplifting")
		gt.Bool(t, ok).True()
		gt.Value(t, threat.Name).Equal("Shoplifting")
		gt.Number(t, threat.TypicalLikelihood).Equal(5)
		gt.Number(t, threat.TypicalImpact).Equal(2)

		_, ok = catalog.Threat(types.DomainRetailStore, "cargo_theft_pilferage")
		gt.Bool(t, ok).False()
	})

	t.Run("ForDomain returns a copy", func(t *testing.T) {
		first := catalog.ForDomain(types.DomainWarehouse)
		first[0].Name = "mutated"

		second := catalog.ForDomain(types.DomainWarehouse)
		gt.Value(t, second[0].Name).Equal("Cargo Theft (Full Truckload)")
	})

	t.Run("typical scores stay in range", func(t *testing.T) {
		for _, domain := range types.AllDomainTypes() {
			for _, threat := range catalog.ForDomain(domain) {
				gt.Bool(t, threat.TypicalLikelihood >= 1 && threat.TypicalLikelihood <= 5).True()
				gt.Bool(t, threat.TypicalImpact >= 1 && threat.TypicalImpact <= 5).True()
			}
		}
	})
}

func TestNewCatalog(t *testing.T) {
	valid := func() *config.CatalogConfig {
		return &config.CatalogConfig{
			Domains: []config.DomainCatalog{
				{
					Domain: "office_building",
					Threats: []config.ThreatEntry{
						{ID: "forced_entry", Name: "Forced Entry", Category: "property_crime", TypicalLikelihood: 3, TypicalImpact: 3},
					},
				},
			},
		}
	}

	t.Run("valid config builds", func(t *testing.T) {
		catalog, err := NewCatalog(valid())
		gt.NoError(t, err).Required()
		gt.Array(t, catalog.ForDomain(types.DomainOfficeBuilding)).Length(1)
	})

	t.Run("unknown domain is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Domains[0].Domain = "submarine"
		_, err := NewCatalog(cfg)
		gt.Value(t, err).NotNil()
	})

	t.Run("malformed threat ID is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Domains[0].Threats[0].ID = "Forced Entry"
		_, err := NewCatalog(cfg)
		gt.Value(t, err).NotNil()
	})

	t.Run("duplicate threat ID is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Domains[0].Threats = append(cfg.Domains[0].Threats, cfg.Domains[0].Threats[0])
		_, err := NewCatalog(cfg)
		gt.Value(t, err).NotNil()
	})

	t.Run("out of range scores are rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Domains[0].Threats[0].TypicalLikelihood = 6
		_, err := NewCatalog(cfg)
		gt.Value(t, err).NotNil()

		cfg = valid()
		cfg.Domains[0].Threats[0].TypicalImpact = 0
		_, err = NewCatalog(cfg)
		gt.Value(t, err).NotNil()
	})
}

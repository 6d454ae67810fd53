package model

import (
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Threat is a static catalog entry describing one threat scenario.
// Catalog entries are loaded once and never mutated by the engine.
type Threat struct {
	ID                types.ThreatID
	Name              string
	Category          string
	TypicalLikelihood int    // 1-5
	TypicalImpact     int    // 1-5
	TaxonomyCode      string // e.g. "PSR-OB-01"
}

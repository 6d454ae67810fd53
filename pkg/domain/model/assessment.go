package model

import (
	"time"

	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Assessment represents one facility or person assessment
type Assessment struct {
	ID          types.AssessmentID
	Name        string
	Domain      types.DomainType
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AssessmentSnapshot bundles the read-only inputs of one calculation run:
// the captured responses and the controls grouped by threat. Callers must
// not mutate a snapshot while a calculation is in flight.
type AssessmentSnapshot struct {
	Responses ResponseSet
	Controls  map[types.ThreatID][]Control
}

// ControlsFor returns the control set of one threat, split by type
func (s *AssessmentSnapshot) ControlsFor(threatID types.ThreatID) ControlSet {
	if s == nil || s.Controls == nil {
		return ControlSet{}
	}
	return SplitControls(s.Controls[threatID])
}

package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Control is a mitigating measure tied to an assessment. Controls are
// supplied per calculation call; the engine does not persist them.
type Control struct {
	ID            types.ControlID
	ThreatID      types.ThreatID
	Name          string
	ControlType   types.ControlType
	Effectiveness int    // 0-5, absent treated as 0
	PrimaryEffect string // optional free-text category
}

// Validate checks the structural integrity of a control
func (c *Control) Validate() error {
	if c.ID == "" {
		return goerr.New("control ID is required")
	}
	if err := c.ThreatID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid threat ID", goerr.V("threat_id", c.ThreatID))
	}
	if _, err := types.ParseControlType(c.ControlType.String()); err != nil {
		return goerr.Wrap(err, "invalid control type", goerr.V("control_type", c.ControlType))
	}
	if c.Effectiveness < 0 || c.Effectiveness > 5 {
		return goerr.New("control effectiveness must be between 0 and 5",
			goerr.V("effectiveness", c.Effectiveness))
	}
	return nil
}

// ControlSet holds the controls of one (assessment, threat) pair split by
// control type.
type ControlSet struct {
	Existing []Control
	Proposed []Control
}

// SplitControls partitions a flat control list by control type. Controls
// with an unknown type are ignored.
func SplitControls(controls []Control) ControlSet {
	var cs ControlSet
	for _, c := range controls {
		switch c.ControlType {
		case types.ControlTypeExisting:
			cs.Existing = append(cs.Existing, c)
		case types.ControlTypeProposed:
			cs.Proposed = append(cs.Proposed, c)
		}
	}
	return cs
}

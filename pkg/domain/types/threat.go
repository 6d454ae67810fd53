package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// ThreatID represents a unique identifier for a threat catalog entry
type ThreatID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// Validate checks if the ThreatID is valid
func (t ThreatID) Validate() error {
	if t == "" {
		return goerr.New("threat ID cannot be empty")
	}
	if !idPattern.MatchString(string(t)) {
		return goerr.New("threat ID must be lowercase alphanumeric with underscores", goerr.V("id", t))
	}
	return nil
}

// String returns the string representation of ThreatID
func (t ThreatID) String() string {
	return string(t)
}

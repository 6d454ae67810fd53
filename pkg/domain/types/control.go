package types

import "fmt"

// ControlID represents a unique identifier for a mitigating control
type ControlID string

// String returns the string representation of ControlID
func (c ControlID) String() string {
	return string(c)
}

// ControlType distinguishes controls already in place from proposed ones
type ControlType string

const (
	ControlTypeExisting ControlType = "existing"
	ControlTypeProposed ControlType = "proposed"
)

// IsValid checks if the control type is valid
func (c ControlType) IsValid() bool {
	switch c {
	case ControlTypeExisting, ControlTypeProposed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the control type
func (c ControlType) String() string {
	return string(c)
}

// ParseControlType parses a string into a ControlType
func ParseControlType(s string) (ControlType, error) {
	ct := ControlType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid control type: %s", s)
	}
	return ct, nil
}

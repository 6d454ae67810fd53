package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// AssessmentID represents a unique identifier for an assessment
type AssessmentID string

// NewAssessmentID generates a new random AssessmentID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New().String())
}

// Validate checks if the AssessmentID is valid
func (a AssessmentID) Validate() error {
	if a == "" {
		return goerr.New("assessment ID cannot be empty")
	}
	return nil
}

// String returns the string representation of AssessmentID
func (a AssessmentID) String() string {
	return string(a)
}

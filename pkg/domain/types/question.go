package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// QuestionID represents a unique identifier for a questionnaire item
type QuestionID string

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !idPattern.MatchString(string(q)) {
		return goerr.New("question ID must be lowercase alphanumeric with underscores", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}

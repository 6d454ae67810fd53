package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidDomain      = errors.New("invalid domain type")
	ErrInvalidControl     = errors.New("invalid control")
	ErrNotRetailDomain    = errors.New("shrinkage score requires a retail store assessment")
)

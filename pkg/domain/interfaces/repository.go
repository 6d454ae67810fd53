package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Assessment() AssessmentRepository
	Response() ResponseRepository
	Control() ControlRepository
	Result() ResultRepository

	// Close releases the underlying backend resources
	Close() error
}

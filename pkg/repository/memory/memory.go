package memory

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = goerr.New("not found")

// Memory is an in-memory repository for development and tests
type Memory struct {
	assessment *assessmentRepository
	response   *responseRepository
	control    *controlRepository
	result     *resultRepository
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		assessment: newAssessmentRepository(),
		response:   newResponseRepository(),
		control:    newControlRepository(),
		result:     newResultRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Response() interfaces.ResponseRepository {
	return m.response
}

func (m *Memory) Control() interfaces.ControlRepository {
	return m.control
}

func (m *Memory) Result() interfaces.ResultRepository {
	return m.result
}

func (m *Memory) Close() error {
	return nil
}

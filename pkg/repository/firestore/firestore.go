package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
)

// Firestore is the Cloud Firestore backed repository
type Firestore struct {
	client     *firestore.Client
	assessment *assessmentRepository
	response   *responseRepository
	control    *controlRepository
	result     *resultRepository
}

var _ interfaces.Repository = &Firestore{}

// Option configures the Firestore repository
type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names, isolating test data
// from production collections in a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.assessment.collectionPrefix = prefix
		f.response.collectionPrefix = prefix
		f.control.collectionPrefix = prefix
		f.result.collectionPrefix = prefix
	}
}

// New creates a Firestore repository for the given project and database
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		assessment: newAssessmentRepository(client),
		response:   newResponseRepository(client),
		control:    newControlRepository(client),
		result:     newResultRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Assessment() interfaces.AssessmentRepository {
	return f.assessment
}

func (f *Firestore) Response() interfaces.ResponseRepository {
	return f.response
}

func (f *Firestore) Control() interfaces.ControlRepository {
	return f.control
}

func (f *Firestore) Result() interfaces.ResultRepository {
	return f.result
}

func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}

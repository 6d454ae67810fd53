package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type assessmentDocument struct {
	ID          string    `firestore:"id"`
	Name        string    `firestore:"name"`
	Domain      string    `firestore:"domain"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"created_at"`
	UpdatedAt   time.Time `firestore:"updated_at"`
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{client: client}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	now := time.Now().UTC()
	created := &model.Assessment{
		ID:          types.NewAssessmentID(),
		Name:        assessment.Name,
		Domain:      assessment.Domain,
		Description: assessment.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	doc := toAssessmentDocument(created)
	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	snap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var doc assessmentDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assessment document", goerr.V("id", id))
	}

	return fromAssessmentDocument(&doc), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Assessment, error) {
	iter := r.client.Collection(r.collection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var assessments []*model.Assessment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var doc assessmentDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode assessment document")
		}
		assessments = append(assessments, fromAssessmentDocument(&doc))
	}

	return assessments, nil
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) (*model.Assessment, error) {
	existing, err := r.Get(ctx, assessment.ID)
	if err != nil {
		return nil, err
	}

	updated := &model.Assessment{
		ID:          existing.ID,
		Name:        assessment.Name,
		Domain:      assessment.Domain,
		Description: assessment.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	doc := toAssessmentDocument(updated)
	if _, err := r.client.Collection(r.collection()).Doc(updated.ID.String()).Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment", goerr.V("id", updated.ID))
	}

	return updated, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id types.AssessmentID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.collection()).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}

	return nil
}

func toAssessmentDocument(a *model.Assessment) *assessmentDocument {
	return &assessmentDocument{
		ID:          a.ID.String(),
		Name:        a.Name,
		Domain:      a.Domain.String(),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func fromAssessmentDocument(doc *assessmentDocument) *model.Assessment {
	return &model.Assessment{
		ID:          types.AssessmentID(doc.ID),
		Name:        doc.Name,
		Domain:      types.DomainType(doc.Domain),
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

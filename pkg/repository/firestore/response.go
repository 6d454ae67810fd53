package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// responseDocument stores the full answer set of one assessment as a
// single document. Answers are heterogeneous (string, bool, number, list)
// and kept as Firestore native values.
type responseDocument struct {
	AssessmentID string           `firestore:"assessment_id"`
	Answers      []answerDocument `firestore:"answers"`
}

type answerDocument struct {
	QuestionID string `firestore:"question_id"`
	Answer     any    `firestore:"answer"`
}

type responseRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newResponseRepository(client *firestore.Client) *responseRepository {
	return &responseRepository{client: client}
}

func (r *responseRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessment_responses"
	}
	return "assessment_responses"
}

func (r *responseRepository) Put(ctx context.Context, assessmentID types.AssessmentID, responses []model.Response) error {
	doc := responseDocument{
		AssessmentID: assessmentID.String(),
		Answers:      make([]answerDocument, 0, len(responses)),
	}
	for _, resp := range responses {
		doc.Answers = append(doc.Answers, answerDocument{
			QuestionID: resp.QuestionID.String(),
			Answer:     resp.Answer,
		})
	}

	if _, err := r.client.Collection(r.collection()).Doc(assessmentID.String()).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save responses", goerr.V("assessment_id", assessmentID))
	}

	return nil
}

func (r *responseRepository) Get(ctx context.Context, assessmentID types.AssessmentID) (model.ResponseSet, error) {
	snap, err := r.client.Collection(r.collection()).Doc(assessmentID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// No captured answers yet: an empty set, not an error.
			return model.ResponseSet{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get responses", goerr.V("assessment_id", assessmentID))
	}

	var doc responseDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode response document", goerr.V("assessment_id", assessmentID))
	}

	responses := make([]model.Response, 0, len(doc.Answers))
	for _, ans := range doc.Answers {
		responses = append(responses, model.Response{
			QuestionID: types.QuestionID(ans.QuestionID),
			Answer:     ans.Answer,
		})
	}

	return model.NewResponseSet(responses), nil
}

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

type controlListDocument struct {
	AssessmentID string            `firestore:"assessment_id"`
	Controls     []controlDocument `firestore:"controls"`
}

type controlDocument struct {
	ID            string `firestore:"id"`
	ThreatID      string `firestore:"threat_id"`
	Name          string `firestore:"name"`
	ControlType   string `firestore:"control_type"`
	Effectiveness int    `firestore:"effectiveness"`
	PrimaryEffect string `firestore:"primary_effect"`
}

type controlRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newControlRepository(client *firestore.Client) *controlRepository {
	return &controlRepository{client: client}
}

func (r *controlRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessment_controls"
	}
	return "assessment_controls"
}

func (r *controlRepository) Put(ctx context.Context, assessmentID types.AssessmentID, controls []model.Control) error {
	doc := controlListDocument{
		AssessmentID: assessmentID.String(),
		Controls:     make([]controlDocument, 0, len(controls)),
	}
	for _, c := range controls {
		doc.Controls = append(doc.Controls, controlDocument{
			ID:            c.ID.String(),
			ThreatID:      c.ThreatID.String(),
			Name:          c.Name,
			ControlType:   c.ControlType.String(),
			Effectiveness: c.Effectiveness,
			PrimaryEffect: c.PrimaryEffect,
		})
	}

	if _, err := r.client.Collection(r.collection()).Doc(assessmentID.String()).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save controls", goerr.V("assessment_id", assessmentID))
	}

	return nil
}

func (r *controlRepository) List(ctx context.Context, assessmentID types.AssessmentID) ([]model.Control, error) {
	snap, err := r.client.Collection(r.collection()).Doc(assessmentID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get controls", goerr.V("assessment_id", assessmentID))
	}

	var doc controlListDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode control document", goerr.V("assessment_id", assessmentID))
	}

	controls := make([]model.Control, 0, len(doc.Controls))
	for _, c := range doc.Controls {
		controls = append(controls, model.Control{
			ID:            types.ControlID(c.ID),
			ThreatID:      types.ThreatID(c.ThreatID),
			Name:          c.Name,
			ControlType:   types.ControlType(c.ControlType),
			Effectiveness: c.Effectiveness,
			PrimaryEffect: c.PrimaryEffect,
		})
	}

	return controls, nil
}

func (r *controlRepository) ListByThreat(ctx context.Context, assessmentID types.AssessmentID, threatID types.ThreatID) ([]model.Control, error) {
	controls, err := r.List(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	var out []model.Control
	for _, c := range controls {
		if c.ThreatID == threatID {
			out = append(out, c)
		}
	}
	return out, nil
}

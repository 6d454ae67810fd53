package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type resultDocument struct {
	AssessmentID         string    `firestore:"assessment_id"`
	ThreatID             string    `firestore:"threat_id"`
	ThreatName           string    `firestore:"threat_name"`
	Likelihood           int       `firestore:"likelihood"`
	Vulnerability        int       `firestore:"vulnerability"`
	Impact               int       `firestore:"impact"`
	Exposure             float64   `firestore:"exposure"`
	HasExposure          bool      `firestore:"has_exposure"`
	InherentRisk         int       `firestore:"inherent_risk"`
	CurrentRisk          int       `firestore:"current_risk"`
	ResidualRisk         int       `firestore:"residual_risk"`
	ControlEffectiveness float64   `firestore:"control_effectiveness"`
	Recommendations      []string  `firestore:"recommendations"`
	Findings             []string  `firestore:"findings"`
	CalculatedAt         time.Time `firestore:"calculated_at"`
}

type resultRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newResultRepository(client *firestore.Client) *resultRepository {
	return &resultRepository{client: client}
}

func (r *resultRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessment_results"
	}
	return "assessment_results"
}

// docID keys one document per (assessment, threat) pair so Save replaces
// the previous calculation of the same threat.
func docID(assessmentID types.AssessmentID, threatID types.ThreatID) string {
	return assessmentID.String() + "_" + threatID.String()
}

func (r *resultRepository) Save(ctx context.Context, assessmentID types.AssessmentID, result *model.RiskCalculationResult) error {
	if result == nil {
		return goerr.New("result is nil", goerr.V("assessment_id", assessmentID))
	}

	doc := resultDocument{
		AssessmentID:         assessmentID.String(),
		ThreatID:             result.ThreatID.String(),
		ThreatName:           result.ThreatName,
		Likelihood:           result.Factors.Likelihood,
		Vulnerability:        result.Factors.Vulnerability,
		Impact:               result.Factors.Impact,
		Exposure:             result.Factors.Exposure,
		HasExposure:          result.Factors.HasExposure,
		InherentRisk:         result.InherentRisk,
		CurrentRisk:          result.CurrentRisk,
		ResidualRisk:         result.ResidualRisk,
		ControlEffectiveness: result.ControlEffectiveness,
		Recommendations:      result.Recommendations,
		Findings:             result.Findings,
		CalculatedAt:         time.Now(),
	}

	if _, err := r.client.Collection(r.collection()).Doc(docID(assessmentID, result.ThreatID)).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save result",
			goerr.V("assessment_id", assessmentID), goerr.V("threat_id", result.ThreatID))
	}

	return nil
}

func (r *resultRepository) List(ctx context.Context, assessmentID types.AssessmentID) ([]*model.StoredResult, error) {
	iter := r.client.Collection(r.collection()).
		Where("assessment_id", "==", assessmentID.String()).
		OrderBy("threat_id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var results []*model.StoredResult
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate results", goerr.V("assessment_id", assessmentID))
		}

		var doc resultDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode result document", goerr.V("assessment_id", assessmentID))
		}

		results = append(results, &model.StoredResult{
			AssessmentID: types.AssessmentID(doc.AssessmentID),
			Result: model.RiskCalculationResult{
				ThreatID:   types.ThreatID(doc.ThreatID),
				ThreatName: doc.ThreatName,
				Factors: model.FactorScores{
					Likelihood:    doc.Likelihood,
					Vulnerability: doc.Vulnerability,
					Impact:        doc.Impact,
					Exposure:      doc.Exposure,
					HasExposure:   doc.HasExposure,
				},
				InherentRisk:         doc.InherentRisk,
				CurrentRisk:          doc.CurrentRisk,
				ResidualRisk:         doc.ResidualRisk,
				ControlEffectiveness: doc.ControlEffectiveness,
				Recommendations:      doc.Recommendations,
				Findings:             doc.Findings,
			},
			CalculatedAt: doc.CalculatedAt,
		})
	}

	return results, nil
}

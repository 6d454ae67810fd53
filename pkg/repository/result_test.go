package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/repository/memory"
)

func runResultRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Save and List round-trips results", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "result round trip",
			Domain: types.DomainOfficeBuilding,
		})
		gt.NoError(t, err).Required()

		result := &model.RiskCalculationResult{
			ThreatID:   "forced_entry",
			ThreatName: "Forced Entry",
			Factors: model.FactorScores{
				Likelihood:    3,
				Vulnerability: 4,
				Impact:        3,
			},
			InherentRisk:         36,
			CurrentRisk:          21,
			ResidualRisk:         14,
			ControlEffectiveness: 0.271,
			Recommendations:      []string{"Reinforce perimeter doors and frames"},
			Findings:             []string{"high vulnerability: existing safeguards leave significant gaps against this threat"},
		}
		gt.NoError(t, repo.Result().Save(ctx, created.ID, result)).Required()

		stored, err := repo.Result().List(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(1).Required()

		got := stored[0]
		gt.Value(t, got.AssessmentID).Equal(created.ID)
		gt.Value(t, got.Result.ThreatID).Equal(types.ThreatID("forced_entry"))
		gt.Value(t, got.Result.InherentRisk).Equal(36)
		gt.Value(t, got.Result.CurrentRisk).Equal(21)
		gt.Value(t, got.Result.ControlEffectiveness).Equal(0.271)
		gt.Array(t, got.Result.Recommendations).Length(1)
		gt.Bool(t, got.CalculatedAt.IsZero()).False()
	})

	t.Run("Save replaces the previous result of the same threat", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "result replacement",
			Domain: types.DomainRetailStore,
		})
		gt.NoError(t, err).Required()

		first := &model.RiskCalculationResult{
			ThreatID:    "shoplifting",
			ThreatName:  "Shoplifting",
			CurrentRisk: 40,
		}
		gt.NoError(t, repo.Result().Save(ctx, created.ID, first)).Required()

		second := &model.RiskCalculationResult{
			ThreatID:    "shoplifting",
			ThreatName:  "Shoplifting",
			CurrentRisk: 28,
		}
		gt.NoError(t, repo.Result().Save(ctx, created.ID, second)).Required()

		stored, err := repo.Result().List(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(1).Required()
		gt.Value(t, stored[0].Result.CurrentRisk).Equal(28)
	})

	t.Run("List orders results by threat ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "result ordering",
			Domain: types.DomainWarehouse,
		})
		gt.NoError(t, err).Required()

		for _, id := range []types.ThreatID{"trailer_theft", "cargo_theft_pilferage", "insider_collusion"} {
			gt.NoError(t, repo.Result().Save(ctx, created.ID, &model.RiskCalculationResult{
				ThreatID: id,
			})).Required()
		}

		stored, err := repo.Result().List(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(3).Required()
		gt.Value(t, stored[0].Result.ThreatID).Equal(types.ThreatID("cargo_theft_pilferage"))
		gt.Value(t, stored[1].Result.ThreatID).Equal(types.ThreatID("insider_collusion"))
		gt.Value(t, stored[2].Result.ThreatID).Equal(types.ThreatID("trailer_theft"))
	})

	t.Run("Save rejects nil result", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Result().Save(ctx, types.NewAssessmentID(), nil)
		gt.Value(t, err).NotNil()
	})
}

func TestResultRepository_Memory(t *testing.T) {
	runResultRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestResultRepository_Firestore(t *testing.T) {
	runResultRepositoryTest(t, newFirestoreRepo)
}

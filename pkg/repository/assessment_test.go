package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/argus/pkg/domain/interfaces"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/repository/firestore"
	"github.com/secmon-lab/argus/pkg/repository/memory"
)

func newFirestoreRepo(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("FIRESTORE_DATABASE_ID")

	repo, err := firestore.New(context.Background(), projectID, databaseID,
		firestore.WithCollectionPrefix("test"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func runAssessmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:        "HQ annual review",
			Domain:      types.DomainOfficeBuilding,
			Description: "Annual physical security review of the headquarters",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID.String()).NotEqual("")
		gt.Value(t, created.Name).Equal("HQ annual review")
		gt.Value(t, created.Domain).Equal(types.DomainOfficeBuilding)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()

		second, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "Distribution center review",
			Domain: types.DomainWarehouse,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, second.ID).NotEqual(created.ID)
	})

	t.Run("Get retrieves a created assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "Flagship store",
			Domain: types.DomainRetailStore,
		})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Assessment().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(created.ID)
		gt.Value(t, retrieved.Name).Equal(created.Name)
		gt.Value(t, retrieved.Domain).Equal(types.DomainRetailStore)
	})

	t.Run("Get returns error for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().Get(ctx, types.NewAssessmentID())
		gt.Value(t, err).NotNil()
	})

	t.Run("List returns assessments ordered by creation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "first",
			Domain: types.DomainOfficeBuilding,
		})
		gt.NoError(t, err).Required()
		second, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "second",
			Domain: types.DomainExecutiveProtection,
		})
		gt.NoError(t, err).Required()

		listed, err := repo.Assessment().List(ctx)
		gt.NoError(t, err).Required()

		var ids []types.AssessmentID
		for _, a := range listed {
			ids = append(ids, a.ID)
		}
		gt.Array(t, ids).Has(first.ID)
		gt.Array(t, ids).Has(second.ID)
	})

	t.Run("Update replaces mutable fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "before",
			Domain: types.DomainOfficeBuilding,
		})
		gt.NoError(t, err).Required()

		created.Name = "after"
		created.Description = "updated description"

		updated, err := repo.Assessment().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Name).Equal("after")

		retrieved, err := repo.Assessment().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Name).Equal("after")
		gt.Value(t, retrieved.Description).Equal("updated description")
	})

	t.Run("Delete removes the assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Name:   "to be deleted",
			Domain: types.DomainWarehouse,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Assessment().Delete(ctx, created.ID)).Required()

		_, err = repo.Assessment().Get(ctx, created.ID)
		gt.Value(t, err).NotNil()
	})
}

func TestAssessmentRepository_Memory(t *testing.T) {
	runAssessmentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestAssessmentRepository_Firestore(t *testing.T) {
	runAssessmentRepositoryTest(t, newFirestoreRepo)
}

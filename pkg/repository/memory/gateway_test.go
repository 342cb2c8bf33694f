package memory_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/repository/firestore"
	"github.com/secmon-lab/atelier/pkg/repository/memory"
)

func runGatewayTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("save and load preserves order and content", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		analyses := []*model.Analysis{
			{
				ID:    "a1",
				Title: "SI bureautique",
				Data: model.AnalysisData{
					Missions: []*model.Mission{
						{ID: "m1", Denom: "Paie", Nature: types.NatureProcessus},
					},
					Events: []*model.Event{
						{ID: "e1", MissionID: "m1", Evenement: "fuite de données", Impact: 3},
					},
				},
			},
			{ID: "a2", Title: "SI industriel"},
		}

		gt.NoError(t, repo.SaveAnalyses(ctx, analyses)).Required()

		loaded, err := repo.LoadAnalyses(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(loaded)).Equal(2)
		gt.Value(t, loaded[0].ID).Equal(types.AnalysisID("a1"))
		gt.Value(t, loaded[1].ID).Equal(types.AnalysisID("a2"))
		gt.Number(t, len(loaded[0].Data.Missions)).Equal(1)
		gt.Value(t, loaded[0].Data.Events[0].Impact).Equal(types.Score(3))
	})

	t.Run("save replaces removed analyses", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.SaveAnalyses(ctx, []*model.Analysis{
			{ID: "a1", Title: "first"},
			{ID: "a2", Title: "second"},
		})).Required()
		gt.NoError(t, repo.SaveAnalyses(ctx, []*model.Analysis{
			{ID: "a2", Title: "second"},
		})).Required()

		loaded, err := repo.LoadAnalyses(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(loaded)).Equal(1)
		gt.Value(t, loaded[0].ID).Equal(types.AnalysisID("a2"))
	})

	t.Run("selected id round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.GetSelectedID(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal(types.AnalysisID(""))

		gt.NoError(t, repo.SetSelectedID(ctx, "a1")).Required()
		id, err = repo.GetSelectedID(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, id).Equal(types.AnalysisID("a1"))
	})

	t.Run("loaded analyses are copies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.SaveAnalyses(ctx, []*model.Analysis{
			{ID: "a1", Title: "original"},
		})).Required()

		loaded, err := repo.LoadAnalyses(ctx)
		gt.NoError(t, err).Required()
		loaded[0].Title = "mutated"

		again, err := repo.LoadAnalyses(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, again[0].Title).Equal("original")
	})
}

func TestMemoryGateway(t *testing.T) {
	runGatewayTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreGateway(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT is not set")
	}

	runGatewayTest(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
		repo, err := firestore.New(ctx, projectID, os.Getenv("TEST_FIRESTORE_DATABASE"),
			firestore.WithCollectionPrefix(prefix))
		gt.NoError(t, err).Required()
		t.Cleanup(func() {
			_ = repo.Close()
		})
		return repo
	})
}

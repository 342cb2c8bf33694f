package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/repository/memory"
	"github.com/secmon-lab/atelier/pkg/usecase"
)

func newStore(t *testing.T) (*usecase.UseCases, *memory.Memory) {
	t.Helper()
	repo := memory.New()
	uc, err := usecase.New(context.Background(), repo)
	gt.NoError(t, err).Required()
	return uc, repo
}

func TestMissionDeleteCascade(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "cascade")
	gt.NoError(t, err).Required()

	m1, err := uc.AddMission(ctx, a.ID, &model.Mission{Denom: "M1"})
	gt.NoError(t, err).Required()
	m2, err := uc.AddMission(ctx, a.ID, &model.Mission{Denom: "M2"})
	gt.NoError(t, err).Required()

	for range 3 {
		_, err := uc.AddEvent(ctx, a.ID, &model.Event{MissionID: m1.ID, Evenement: "on M1"})
		gt.NoError(t, err).Required()
	}
	kept, err := uc.AddEvent(ctx, a.ID, &model.Event{MissionID: m2.ID, Evenement: "on M2"})
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.RemoveMission(ctx, a.ID, m1.ID))

	got, err := uc.GetAnalysis(a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(got.Data.Missions)).Equal(1)
	gt.Number(t, len(got.Data.Events)).Equal(1)
	gt.Value(t, got.Data.Events[0].ID).Equal(kept.ID)

	// deleting an unrelated mission must not touch remaining events
	m3, err := uc.AddMission(ctx, a.ID, &model.Mission{Denom: "M3"})
	gt.NoError(t, err).Required()
	gt.NoError(t, uc.RemoveMission(ctx, a.ID, m3.ID))
	got, err = uc.GetAnalysis(a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(got.Data.Events)).Equal(1)
}

func TestMutationsPersistFullStore(t *testing.T) {
	ctx := context.Background()
	uc, repo := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "persisted")
	gt.NoError(t, err).Required()
	_, err = uc.AddMission(ctx, a.ID, &model.Mission{Denom: "M1"})
	gt.NoError(t, err).Required()

	// a fresh session over the same repository sees the mutation
	uc2, err := usecase.New(ctx, repo)
	gt.NoError(t, err).Required()
	got, err := uc2.GetAnalysis(a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(got.Data.Missions)).Equal(1)
	gt.Value(t, got.Data.Missions[0].Denom).Equal("M1")
}

func TestReturnedClonesAreDetached(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "clones")
	gt.NoError(t, err).Required()
	m, err := uc.AddMission(ctx, a.ID, &model.Mission{Denom: "before"})
	gt.NoError(t, err).Required()

	m.Denom = "mutated by caller"

	got, err := uc.GetAnalysis(a.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.Data.Missions[0].Denom).Equal("before")
}

func TestImportGapActionsExcludesApplied(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "gap")
	gt.NoError(t, err).Required()

	statuses := []types.ApplicationStatus{
		types.ApplicationApplied,
		types.ApplicationPartiallyApplied,
		types.ApplicationNotApplied,
		types.ApplicationNotApplicable,
		"appliquÉ ", // folds to applied
	}
	var ids []types.RequirementID
	for i, st := range statuses {
		r, err := uc.AddGapRequirement(ctx, a.ID, &model.GapRequirement{
			Titre:       string(rune('A' + i)),
			Application: st,
		})
		gt.NoError(t, err).Required()
		ids = append(ids, r.ID)
	}

	added, err := uc.ImportGapActions(ctx, a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, added).Equal(3)

	got, err := uc.GetAnalysis(a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(got.Data.GapActions)).Equal(3)
	gt.Value(t, got.Data.GapActions[0].SourceID).Equal(ids[1])
	gt.Value(t, got.Data.GapActions[1].SourceID).Equal(ids[2])
	gt.Value(t, got.Data.GapActions[2].SourceID).Equal(ids[3])

	// re-import is a no-op for rows that already exist
	added, err = uc.ImportGapActions(ctx, a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, added).Equal(0)
}

func TestImportDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("single object appends", func(t *testing.T) {
		uc, _ := newStore(t)
		_, err := uc.CreateAnalysis(ctx, "existing")
		gt.NoError(t, err).Required()

		imported, err := uc.ImportDocument(ctx, []byte(`{"title":"imported","data":{}}`))
		gt.NoError(t, err).Required()
		gt.Number(t, len(imported)).Equal(1)
		gt.Number(t, len(uc.ListAnalyses())).Equal(2)
	})

	t.Run("sequence replaces", func(t *testing.T) {
		uc, _ := newStore(t)
		_, err := uc.CreateAnalysis(ctx, "existing")
		gt.NoError(t, err).Required()

		imported, err := uc.ImportDocument(ctx, []byte(`[{"title":"a","data":{}},{"title":"b","data":{}}]`))
		gt.NoError(t, err).Required()
		gt.Number(t, len(imported)).Equal(2)

		list := uc.ListAnalyses()
		gt.Number(t, len(list)).Equal(2)
		gt.Value(t, list[0].Title).Equal("a")
	})

	t.Run("malformed leaves store untouched", func(t *testing.T) {
		uc, _ := newStore(t)
		a, err := uc.CreateAnalysis(ctx, "existing")
		gt.NoError(t, err).Required()

		_, err = uc.ImportDocument(ctx, []byte(`"not an analysis"`))
		gt.Error(t, err)

		list := uc.ListAnalyses()
		gt.Number(t, len(list)).Equal(1)
		gt.Value(t, list[0].ID).Equal(a.ID)
	})

	t.Run("seeds residual risk defaults from scenario rollup", func(t *testing.T) {
		uc, _ := newStore(t)
		doc := `{"title":"seeded","data":{"so":[
			{"eventId":"e1","risks":[{"name":"R1","vraisemblance":2,"gravite":3}]},
			{"eventId":"e2","risks":[{"name":"R1","vraisemblance":4,"gravite":1}]}
		]}}`
		imported, err := uc.ImportDocument(ctx, []byte(doc))
		gt.NoError(t, err).Required()

		rows := imported[0].Data.RiskActions
		gt.Number(t, len(rows)).Equal(1)
		gt.Value(t, rows[0].RiskName).Equal("R1")
		gt.Value(t, rows[0].ResidualV).Equal(types.Score(4))
		gt.Value(t, rows[0].ResidualG).Equal(types.Score(3))
	})
}

func TestSelection(t *testing.T) {
	ctx := context.Background()
	uc, repo := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "selected")
	gt.NoError(t, err).Required()
	_, err = uc.SelectAnalysis(ctx, a.ID)
	gt.NoError(t, err).Required()

	current, err := uc.CurrentAnalysis()
	gt.NoError(t, err).Required()
	gt.Value(t, current.ID).Equal(a.ID)

	// selection survives a new session over the same repository
	uc2, err := usecase.New(ctx, repo)
	gt.NoError(t, err).Required()
	current, err = uc2.CurrentAnalysis()
	gt.NoError(t, err).Required()
	gt.Value(t, current.ID).Equal(a.ID)

	// deleting the selected analysis clears the selection
	gt.NoError(t, uc.DeleteAnalysis(ctx, a.ID))
	_, err = uc.CurrentAnalysis()
	gt.B(t, errors.Is(err, usecase.ErrNoSelection)).True()
}

type selectionFailRepo struct {
	*memory.Memory
}

func (r *selectionFailRepo) SetSelectedID(ctx context.Context, id types.AnalysisID) error {
	return goerr.New("pointer write refused")
}

func TestSelectionTrackingIsBestEffort(t *testing.T) {
	ctx := context.Background()
	repo := &selectionFailRepo{Memory: memory.New()}
	uc, err := usecase.New(ctx, repo)
	gt.NoError(t, err).Required()

	a, err := uc.CreateAnalysis(ctx, "tracked")
	gt.NoError(t, err).Required()

	// pointer persistence fails but selection still succeeds in session
	_, err = uc.SelectAnalysis(ctx, a.ID)
	gt.NoError(t, err).Required()
	current, err := uc.CurrentAnalysis()
	gt.NoError(t, err).Required()
	gt.Value(t, current.ID).Equal(a.ID)
}

func TestUpdateUnknownEntity(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "missing")
	gt.NoError(t, err).Required()

	_, err = uc.UpdateMission(ctx, a.ID, &model.Mission{ID: "nope", Denom: "ghost"})
	gt.B(t, errors.Is(err, usecase.ErrEntityNotFound)).True()

	err = uc.RemoveRisk(ctx, a.ID, "nope")
	gt.B(t, errors.Is(err, usecase.ErrEntityNotFound)).True()

	_, err = uc.GetAnalysis("no-such-analysis")
	gt.B(t, errors.Is(err, usecase.ErrAnalysisNotFound)).True()
}

func TestSetRiskResiduals(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStore(t)

	a, err := uc.CreateAnalysis(ctx, "residuals")
	gt.NoError(t, err).Required()

	row, err := uc.SetRiskResiduals(ctx, a.ID, "R1", 9, 2)
	gt.NoError(t, err).Required()
	gt.Value(t, row.ResidualV).Equal(types.Score(4)) // clamped
	gt.Value(t, row.ResidualG).Equal(types.Score(2))

	// upserting actions for the same risk keeps a single row
	_, err = uc.SetRiskActions(ctx, a.ID, &model.RiskActionRow{
		RiskName: "R1",
		Actions:  []model.Action{{Name: "patch"}},
	})
	gt.NoError(t, err).Required()

	got, err := uc.GetAnalysis(a.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(got.Data.RiskActions)).Equal(1)
	gt.Number(t, len(got.Data.RiskActions[0].Actions)).Equal(1)
}

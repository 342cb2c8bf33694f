package porter_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/porter"
)

func analysisFixture() *model.Analysis {
	retained := false
	a := &model.Analysis{
		ID:    "a1",
		Title: "Analyse SI Métier",
		Data: model.AnalysisData{
			Missions: []*model.Mission{
				{ID: "m1", Denom: "Facturation", Nature: types.NatureProcessus,
					Supports: model.SupportList{{Name: "ERP", Responsable: "DSI"}}},
			},
			Events: []*model.Event{
				{ID: "e1", MissionID: "m1", Evenement: "fuite", Impact: 3},
			},
			Couples: []*model.SrovCouple{
				{ID: "c1", Source: "cybercriminel", Objectif: "rançon",
					Motivation: 3, Ressources: 2, Priorite: 1, Retenue: &retained,
					Justification: "hors périmètre"},
			},
		},
	}
	a.Normalize()
	return a
}

func TestExportImportRoundTrip(t *testing.T) {
	a := analysisFixture()

	data, filename, err := porter.ExportAnalysis(a)
	gt.NoError(t, err).Required()
	gt.Value(t, filename).Equal("analyse_si_m_tier.json")

	imported, mode, err := porter.ImportAll(data)
	gt.NoError(t, err).Required()
	gt.Value(t, mode).Equal(porter.ImportAppend)
	gt.Number(t, len(imported)).Equal(1)

	// Ids were present in the source, so nothing is regenerated and the
	// round trip is exact.
	gt.B(t, reflect.DeepEqual(imported[0], a)).True()
}

func TestExportAll_RoundTrip(t *testing.T) {
	list := []*model.Analysis{analysisFixture(), {ID: "a2", Title: "vide"}}
	list[1].Normalize()

	data, err := porter.ExportAll(list)
	gt.NoError(t, err).Required()

	imported, mode, err := porter.ImportAll(data)
	gt.NoError(t, err).Required()
	gt.Value(t, mode).Equal(porter.ImportReplace)
	gt.Number(t, len(imported)).Equal(2)
	gt.B(t, reflect.DeepEqual(imported, list)).True()
}

func TestImportAll_AssignsMissingIDs(t *testing.T) {
	doc := `{"title":"legacy","data":{"missions":[{"denom":"Paie","supports":"AD,ERP"}]}}`

	imported, mode, err := porter.ImportAll([]byte(doc))
	gt.NoError(t, err).Required()
	gt.Value(t, mode).Equal(porter.ImportAppend)

	a := imported[0]
	gt.Value(t, a.ID).NotEqual(types.AnalysisID(""))
	gt.Value(t, a.Data.Missions[0].ID).NotEqual(types.MissionID(""))
	gt.Number(t, len(a.Data.Missions[0].Supports)).Equal(2)
}

func TestImportAll_Malformed(t *testing.T) {
	for _, doc := range []string{"", "not json", `[1,2,3]`, `[null]`} {
		_, _, err := porter.ImportAll([]byte(doc))
		gt.B(t, errors.Is(err, porter.ErrMalformedDocument)).True()
	}
}

func TestSanitizeFilename(t *testing.T) {
	gt.Value(t, porter.SanitizeFilename("Analyse 2024 (v2)")).Equal("analyse_2024__v2_")
	gt.Value(t, porter.SanitizeFilename("")).Equal("analyse")
}

func TestImportGapRequirements(t *testing.T) {
	t.Run("alias table mapping with fresh ids", func(t *testing.T) {
		doc := `[{"domain":"Access","title":"MFA","status":"Non appliqué"}]`

		reqs, err := porter.ImportGapRequirements([]byte(doc))
		gt.NoError(t, err).Required()
		gt.Number(t, len(reqs)).Equal(1)
		gt.Value(t, reqs[0].Domaine).Equal("Access")
		gt.Value(t, reqs[0].Titre).Equal("MFA")
		gt.Value(t, reqs[0].Application).Equal(types.ApplicationNotApplied)
		gt.Value(t, reqs[0].ID).NotEqual(types.RequirementID(""))
	})

	t.Run("input ids are ignored", func(t *testing.T) {
		doc := `[{"id":"keep-me","titre":"Chiffrement","application":"applique"}]`

		reqs, err := porter.ImportGapRequirements([]byte(doc))
		gt.NoError(t, err).Required()
		gt.Value(t, reqs[0].ID).NotEqual(types.RequirementID("keep-me"))
		gt.Value(t, reqs[0].Application).Equal(types.ApplicationApplied)
	})

	t.Run("canonical keys win over aliases", func(t *testing.T) {
		doc := `[{"domaine":"Réseau","domain":"ignored"}]`

		reqs, err := porter.ImportGapRequirements([]byte(doc))
		gt.NoError(t, err).Required()
		gt.Value(t, reqs[0].Domaine).Equal("Réseau")
	})

	t.Run("non-sequence fails", func(t *testing.T) {
		_, err := porter.ImportGapRequirements([]byte(`{"domaine":"x"}`))
		gt.B(t, errors.Is(err, porter.ErrMalformedDocument)).True()
	})
}

func TestExport_OmitsNothingNeededForReimport(t *testing.T) {
	a := analysisFixture()
	data, _, err := porter.ExportAnalysis(a)
	gt.NoError(t, err).Required()

	var raw map[string]any
	gt.NoError(t, json.Unmarshal(data, &raw)).Required()
	gt.Value(t, raw["title"]).Equal("Analyse SI Métier")
	_, hasData := raw["data"]
	gt.B(t, hasData).True()
}

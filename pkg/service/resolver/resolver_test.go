package resolver_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/resolver"
)

func fixture() *model.Analysis {
	return &model.Analysis{
		ID: "a1",
		Data: model.AnalysisData{
			Missions: []*model.Mission{
				{
					ID:    "m1",
					Denom: "Facturation",
					Supports: model.SupportList{
						{Name: "ERP", Description: "progiciel", Responsable: "DSI"},
						{Name: "AD"},
					},
				},
				{
					ID:    "m2",
					Denom: "Paie",
					Supports: model.SupportList{
						{Name: "ERP", Description: "autre description"},
						{Name: "Messagerie"},
					},
				},
			},
			Events: []*model.Event{
				{ID: "e1", MissionID: "m1", Evenement: "perte de données"},
			},
			Stakeholders: []*model.Stakeholder{
				{ID: "p1", Nom: "Infogéreur"},
			},
		},
	}
}

func TestResolver_Lookups(t *testing.T) {
	r := resolver.New(fixture())

	m, ok := r.Mission("m1")
	gt.B(t, ok).True()
	gt.Value(t, m.Denom).Equal("Facturation")

	_, ok = r.Mission("gone")
	gt.B(t, ok).False()

	s, ok := r.Support("ERP")
	gt.B(t, ok).True()
	gt.Value(t, s.Description).Equal("progiciel")

	_, ok = r.Support("mainframe")
	gt.B(t, ok).False()
}

func TestResolver_UniqueSupports(t *testing.T) {
	r := resolver.New(fixture())

	supports := r.UniqueSupports()
	gt.Number(t, len(supports)).Equal(3)
	// First-seen order, first description wins
	gt.Value(t, supports[0].Name).Equal("ERP")
	gt.Value(t, supports[0].Description).Equal("progiciel")
	gt.Value(t, supports[1].Name).Equal("AD")
	gt.Value(t, supports[2].Name).Equal("Messagerie")
}

func TestResolver_Labels(t *testing.T) {
	r := resolver.New(fixture())

	gt.Value(t, r.MissionLabel("m2")).Equal("Paie")
	gt.Value(t, r.EventLabel("e1")).Equal("perte de données")
	gt.Value(t, r.StakeholderLabel("p1")).Equal("Infogéreur")

	// Dangling references resolve to a placeholder carrying the raw key
	label := r.StakeholderLabel("deleted-id")
	gt.S(t, label).Contains("deleted-id")
}

func TestAvailableForSelection(t *testing.T) {
	a := fixture()

	available := resolver.AvailableForSelection(a.Data.Missions,
		func(m *model.Mission) types.MissionID { return m.ID },
		[]types.MissionID{"m1"})

	gt.Number(t, len(available)).Equal(1)
	gt.Value(t, available[0].ID).Equal(types.MissionID("m2"))

	// Nothing chosen: everything available, order preserved
	all := resolver.AvailableForSelection(a.Data.Missions,
		func(m *model.Mission) types.MissionID { return m.ID }, nil)
	gt.Number(t, len(all)).Equal(2)
	gt.Value(t, all[0].ID).Equal(types.MissionID("m1"))
}

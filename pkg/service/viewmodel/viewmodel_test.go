package viewmodel_test

import (
	"reflect"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/viewmodel"
)

func networkFixture() *model.Analysis {
	return &model.Analysis{
		ID: "a1",
		Data: model.AnalysisData{
			Missions: []*model.Mission{
				{ID: "m1", Denom: "Facturation", Supports: model.SupportList{{Name: "ERP"}, {Name: "AD"}}},
				{ID: "m2", Denom: "Paie", Supports: model.SupportList{{Name: "ERP"}}},
			},
			Events: []*model.Event{
				{ID: "e1", MissionID: "m1", Impact: 3},
				{ID: "e2", MissionID: "m2", Impact: 2},
			},
		},
	}
}

func TestProjectMissionNetwork(t *testing.T) {
	vm := viewmodel.ProjectMissionNetwork(networkFixture())

	gt.Number(t, len(vm.Missions)).Equal(2)
	gt.Number(t, len(vm.Supports)).Equal(2)
	gt.Number(t, len(vm.Edges)).Equal(3)

	gt.Value(t, vm.Missions[0].Impact).Equal(3)
	gt.Value(t, vm.Missions[0].X).Equal(0.0)
	gt.Value(t, vm.Supports[0].X).Equal(1.0)

	// ERP is used by both missions; max impact comes from m1
	gt.Value(t, vm.Supports[0].Name).Equal("ERP")
	gt.Number(t, vm.Supports[0].Degree).Equal(2)
	gt.Number(t, vm.Supports[0].MaxImpact).Equal(3)

	// Vertical positions are evenly spaced in (0,1)
	gt.Value(t, vm.Missions[0].Y).Equal(1.0 / 3.0)
	gt.Value(t, vm.Missions[1].Y).Equal(2.0 / 3.0)
}

func TestProjectMissionNetwork_Pure(t *testing.T) {
	a := networkFixture()
	first := viewmodel.ProjectMissionNetwork(a)
	second := viewmodel.ProjectMissionNetwork(a)
	gt.B(t, reflect.DeepEqual(first, second)).True()
}

func TestProjectComplianceDonut(t *testing.T) {
	t.Run("no requirements yields explicit no-data state", func(t *testing.T) {
		vm := viewmodel.ProjectComplianceDonut(&model.Analysis{})
		gt.B(t, vm.NoData).True()
		gt.Number(t, vm.Total).Equal(0)
	})

	t.Run("counts and percentages", func(t *testing.T) {
		a := &model.Analysis{
			Data: model.AnalysisData{
				Requirements: []*model.GapRequirement{
					{Application: types.ApplicationApplied},
					{Application: types.ApplicationApplied},
					{Application: types.ApplicationNotApplied},
					{Application: types.ApplicationNotApplicable},
				},
			},
		}
		vm := viewmodel.ProjectComplianceDonut(a)
		gt.B(t, vm.NoData).False()
		gt.Number(t, vm.Total).Equal(4)
		gt.Number(t, len(vm.Slices)).Equal(4)
		gt.Value(t, vm.Slices[0].Status).Equal(types.ApplicationApplied)
		gt.Number(t, vm.Slices[0].Count).Equal(2)
		gt.Number(t, vm.Slices[0].Percent).Equal(50.0)
	})
}

func TestProjectSourceObjectiveNetwork(t *testing.T) {
	excluded := false
	a := &model.Analysis{
		Data: model.AnalysisData{
			Couples: []*model.SrovCouple{
				{Source: "cybercriminel", Objectif: "rançon", Motivation: 3, Ressources: 3, Priorite: 2},
				{Source: " cybercriminel ", Objectif: "sabotage", Motivation: 4, Ressources: 4, Priorite: 1},
				{Source: "hacktiviste", Objectif: "rançon", Motivation: 1, Ressources: 1, Priorite: 3,
					Retenue: &excluded, Justification: "capacités insuffisantes"},
			},
		},
	}

	vm := viewmodel.ProjectSourceObjectiveNetwork(a)

	// Trimmed-name deduplication, insertion order
	gt.Number(t, len(vm.Sources)).Equal(2)
	gt.Value(t, vm.Sources[0].Name).Equal("cybercriminel")
	gt.Number(t, len(vm.Objectives)).Equal(2)
	gt.Value(t, vm.Objectives[0].Name).Equal("rançon")

	// Objective labeled with max incoming priority
	gt.Number(t, vm.Objectives[0].MaxPriority).Equal(3)
	gt.Number(t, vm.Objectives[1].MaxPriority).Equal(1)

	gt.Number(t, len(vm.Edges)).Equal(3)
	gt.Number(t, vm.Edges[0].Bucket).Equal(3)
	gt.B(t, vm.Edges[0].Retained).True()
	gt.Value(t, vm.Edges[0].Justification).Equal("")

	gt.B(t, vm.Edges[2].Retained).False()
	gt.Value(t, vm.Edges[2].Justification).Equal("capacités insuffisantes")
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	gt.NoError(t, err).Required()
	return d
}

func TestProjectPlan(t *testing.T) {
	a := &model.Analysis{
		Data: model.AnalysisData{
			Requirements: []*model.GapRequirement{
				{ID: "r1", Titre: "MFA", Application: types.ApplicationNotApplied},
			},
			Stakeholders: []*model.Stakeholder{
				{ID: "p1", Nom: "Infogéreur"},
			},
			GapActions: []*model.GapActionRow{
				{SourceID: "r1", Actions: []model.Action{
					{Name: "Déployer MFA", Start: date(t, "2024-02-01"), End: date(t, "2024-04-30")},
				}},
			},
			SupportActions: []*model.SupportActionRow{
				{SupportName: "ERP", Actions: []model.Action{
					{Name: "Durcir ERP"}, // no dates: kept in plan, off timeline
				}},
			},
			StakeholderActions: []*model.StakeholderActionRow{
				{StakeholderID: "p1", Actions: []model.Action{
					{Name: "Revue contrat", Start: date(t, "2024-01-15"), End: date(t, "2024-02-15")},
				}},
				{StakeholderID: "deleted", Actions: []model.Action{
					{Name: "Audit"},
				}},
			},
			RiskActions: []*model.RiskActionRow{
				{RiskName: "exfiltration", Actions: []model.Action{
					{Name: "EDR", Start: date(t, "2024-03-01"), End: date(t, "2024-06-30")},
				}},
			},
		},
	}

	plan := viewmodel.ProjectPlan(a)
	gt.Number(t, len(plan.Rows)).Equal(5)

	gt.Value(t, plan.Rows[0].SourceLabel).Equal("GAP: MFA")
	gt.Value(t, plan.Rows[1].SourceLabel).Equal("Support: ERP")
	gt.Value(t, plan.Rows[2].SourceLabel).Equal("Partie: Infogéreur")
	// Dangling stakeholder keeps the raw key in the label
	gt.S(t, plan.Rows[3].SourceLabel).Contains("deleted")
	gt.Value(t, plan.Rows[4].SourceLabel).Equal("Risque: exfiltration")

	// Timeline only holds fully dated rows; axis spans min(start)..max(end)
	timeline := plan.TimelineRows()
	gt.Number(t, len(timeline)).Equal(3)
	gt.Value(t, plan.AxisStart.String()).Equal("2024-01-15")
	gt.Value(t, plan.AxisEnd.String()).Equal("2024-06-30")
}

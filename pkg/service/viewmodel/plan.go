package viewmodel

import (
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/service/resolver"
)

// PlanCategory tags the originating action collection of a plan row
type PlanCategory string

const (
	PlanCategoryGap         PlanCategory = "gap"
	PlanCategorySupport     PlanCategory = "support"
	PlanCategoryStakeholder PlanCategory = "stakeholder"
	PlanCategoryRisk        PlanCategory = "risk"
)

var planPrefixes = map[PlanCategory]string{
	PlanCategoryGap:         "GAP: ",
	PlanCategorySupport:     "Support: ",
	PlanCategoryStakeholder: "Partie: ",
	PlanCategoryRisk:        "Risque: ",
}

// PlanRow is one remediation action flattened from the four action
// collections. SourceLabel is the human-readable prefixed origin label;
// OnTimeline reports whether both dates are valid.
type PlanRow struct {
	Name        string       `json:"name"`
	SourceLabel string       `json:"sourceLabel"`
	Category    PlanCategory `json:"category"`
	Description string       `json:"description"`
	Responsable string       `json:"responsable"`
	Start       model.Date   `json:"start"`
	End         model.Date   `json:"end"`
	OnTimeline  bool         `json:"onTimeline"`
}

// Plan is the aggregated treatment plan with the shared time axis spanning
// min(start) to max(end) of the timeline rows.
type Plan struct {
	Rows      []PlanRow  `json:"rows"`
	AxisStart model.Date `json:"axisStart"`
	AxisEnd   model.Date `json:"axisEnd"`
}

// TimelineRows returns only the rows with both dates valid
func (p Plan) TimelineRows() []PlanRow {
	var out []PlanRow
	for _, r := range p.Rows {
		if r.OnTimeline {
			out = append(out, r)
		}
	}
	return out
}

// ProjectPlan flattens the four action collections into a single plan
// view-model. Rows referencing removed entities keep the raw key in their
// label rather than being dropped.
func ProjectPlan(a *model.Analysis) Plan {
	res := resolver.New(a)
	byID := make(map[string]*model.GapRequirement, len(a.Data.Requirements))
	for _, r := range a.Data.Requirements {
		byID[r.ID.String()] = r
	}

	var plan Plan

	appendRow := func(category PlanCategory, label string, act model.Action) {
		row := PlanRow{
			Name:        act.Name,
			SourceLabel: planPrefixes[category] + label,
			Category:    category,
			Description: act.Description,
			Responsable: act.Responsable,
			Start:       act.Start,
			End:         act.End,
			OnTimeline:  act.Start.Valid() && act.End.Valid(),
		}
		plan.Rows = append(plan.Rows, row)

		if !row.OnTimeline {
			return
		}
		if !plan.AxisStart.Valid() || act.Start.Before(plan.AxisStart.Time) {
			plan.AxisStart = act.Start
		}
		if !plan.AxisEnd.Valid() || act.End.After(plan.AxisEnd.Time) {
			plan.AxisEnd = act.End
		}
	}

	for _, row := range a.Data.GapActions {
		label := row.SourceID.String()
		if req, ok := byID[row.SourceID.String()]; ok {
			label = req.Titre
		}
		for _, act := range row.Actions {
			appendRow(PlanCategoryGap, label, act)
		}
	}

	for _, row := range a.Data.SupportActions {
		for _, act := range row.Actions {
			appendRow(PlanCategorySupport, row.SupportName, act)
		}
	}

	for _, row := range a.Data.StakeholderActions {
		label := row.StakeholderID.String()
		if s, ok := res.Stakeholder(row.StakeholderID); ok {
			label = s.Nom
		}
		for _, act := range row.Actions {
			appendRow(PlanCategoryStakeholder, label, act)
		}
	}

	for _, row := range a.Data.RiskActions {
		for _, act := range row.Actions {
			appendRow(PlanCategoryRisk, row.RiskName, act)
		}
	}

	return plan
}

package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Analysis is the top level container: one risk assessment with its five
// workshops of sub-collections. It is persisted as a whole document.
type Analysis struct {
	ID    types.AnalysisID `json:"id"`
	Title string           `json:"title"`
	Data  AnalysisData     `json:"data"`
}

// AnalysisData holds the ordered sub-collections of an analysis. Insertion
// order is significant for display and must survive persistence.
type AnalysisData struct {
	Missions           []*Mission             `json:"missions"`
	Events             []*Event               `json:"events"`
	Requirements       []*GapRequirement      `json:"gap"`
	Couples            []*SrovCouple          `json:"srov"`
	Stakeholders       []*Stakeholder         `json:"ppc"`
	Strategies         []*Strategy            `json:"strategies"`
	Scenarios          []*OperationalScenario `json:"so"`
	Risks              []*Risk                `json:"risques"`
	GapActions         []*GapActionRow        `json:"actionsGap"`
	SupportActions     []*SupportActionRow    `json:"actionsSupports"`
	StakeholderActions []*StakeholderActionRow `json:"actionsParties"`
	RiskActions        []*RiskActionRow       `json:"actionsRisques"`
}

// Normalize runs the normalization pass over the analysis and every
// sub-collection: lazy id assignment (idempotent, an existing id is never
// regenerated), legacy shape coercion and score clamping. It is safe to run
// repeatedly.
func (a *Analysis) Normalize() {
	if a.ID == "" {
		a.ID = types.NewAnalysisID()
	}
	for _, m := range a.Data.Missions {
		m.Normalize()
	}
	for _, e := range a.Data.Events {
		e.Normalize()
	}
	for _, r := range a.Data.Requirements {
		r.Normalize()
	}
	for _, c := range a.Data.Couples {
		c.Normalize()
	}
	for _, s := range a.Data.Stakeholders {
		s.Normalize()
	}
	for _, s := range a.Data.Strategies {
		s.Normalize()
	}
	for _, s := range a.Data.Scenarios {
		s.Normalize()
	}
	for _, r := range a.Data.Risks {
		r.Normalize()
	}
	for _, r := range a.Data.GapActions {
		r.Normalize()
	}
	for _, r := range a.Data.SupportActions {
		r.Normalize()
	}
	for _, r := range a.Data.StakeholderActions {
		r.Normalize()
	}
	for _, r := range a.Data.RiskActions {
		r.Normalize()
	}
}

// Clone returns a deep copy of the analysis. Repositories and use cases
// exchange clones so that callers can never mutate stored state in place.
func (a *Analysis) Clone() *Analysis {
	if a == nil {
		return nil
	}
	cloned := &Analysis{
		ID:    a.ID,
		Title: a.Title,
	}
	cloned.Data = AnalysisData{
		Missions:           cloneSlice(a.Data.Missions),
		Events:             cloneSlice(a.Data.Events),
		Requirements:       cloneSlice(a.Data.Requirements),
		Couples:            cloneSlice(a.Data.Couples),
		Stakeholders:       cloneSlice(a.Data.Stakeholders),
		Strategies:         cloneSlice(a.Data.Strategies),
		Scenarios:          cloneSlice(a.Data.Scenarios),
		Risks:              cloneSlice(a.Data.Risks),
		GapActions:         cloneSlice(a.Data.GapActions),
		SupportActions:     cloneSlice(a.Data.SupportActions),
		StakeholderActions: cloneSlice(a.Data.StakeholderActions),
		RiskActions:        cloneSlice(a.Data.RiskActions),
	}
	return cloned
}

type cloneable[T any] interface {
	Clone() T
}

func cloneSlice[T cloneable[T]](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, 0, len(src))
	for _, item := range src {
		out = append(out, item.Clone())
	}
	return out
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

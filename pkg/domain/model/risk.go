package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Risk represents a consolidated risk of the treatment workshop, linking a
// mission, a feared event, an operational scenario and the threat source
// couples behind it.
type Risk struct {
	ID            types.RiskID     `json:"id"`
	MissionID     types.MissionID  `json:"missionId"`
	EventID       types.EventID    `json:"eventId"`
	ScenarioID    types.ScenarioID `json:"scenarioId"`
	SourceIDs     []types.CoupleID `json:"sourceIds"`
	Titre         string           `json:"titre"`
	Description   string           `json:"description"`
	Indice        float64          `json:"indice"`
	Vraisemblance types.Score      `json:"vraisemblance"`
	Gravite       types.Score      `json:"gravite"`
	Mesures       string           `json:"mesures"`
}

// Normalize assigns a missing id, clamps ratings and deduplicates the
// source association.
func (r *Risk) Normalize() {
	if r.ID == "" {
		r.ID = types.NewRiskID()
	}
	r.Vraisemblance = r.Vraisemblance.Clamp()
	r.Gravite = r.Gravite.Clamp()
	r.SourceIDs = dedupe(r.SourceIDs)
}

// Clone returns a deep copy of the risk
func (r *Risk) Clone() *Risk {
	if r == nil {
		return nil
	}
	cloned := *r
	if r.SourceIDs != nil {
		cloned.SourceIDs = make([]types.CoupleID, len(r.SourceIDs))
		copy(cloned.SourceIDs, r.SourceIDs)
	}
	return &cloned
}

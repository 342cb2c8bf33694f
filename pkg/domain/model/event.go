package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Event represents a feared event (évènement redouté) tied to a mission.
// Deleting the owning mission cascades to its events.
type Event struct {
	ID                types.EventID   `json:"id"`
	MissionID         types.MissionID `json:"missionId"`
	Evenement         string          `json:"evenement"`
	ImpactDescription string          `json:"impactDescription"`
	Impact            types.Score     `json:"impact"`
}

// Normalize assigns a missing id and clamps the impact rating
func (e *Event) Normalize() {
	if e.ID == "" {
		e.ID = types.NewEventID()
	}
	e.Impact = e.Impact.ClampImpact()
}

// Clone returns a copy of the event
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	cloned := *e
	return &cloned
}

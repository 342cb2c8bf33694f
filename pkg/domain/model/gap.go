package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// GapRequirement represents one requirement of the gap analysis with its
// compliance status.
type GapRequirement struct {
	ID            types.RequirementID     `json:"id"`
	Domaine       string                  `json:"domaine"`
	Titre         string                  `json:"titre"`
	Description   string                  `json:"description"`
	Application   types.ApplicationStatus `json:"application"`
	Justification string                  `json:"justification"`
}

// Normalize assigns a missing id and canonicalizes the application status
func (r *GapRequirement) Normalize() {
	if r.ID == "" {
		r.ID = types.NewRequirementID()
	}
	r.Application = r.Application.Normalize()
}

// Clone returns a copy of the requirement
func (r *GapRequirement) Clone() *GapRequirement {
	if r == nil {
		return nil
	}
	cloned := *r
	return &cloned
}

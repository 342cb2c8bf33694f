package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// SrovCouple represents a threat source/objective pair scored by motivation
// and resources. Pertinence is derived, never stored.
type SrovCouple struct {
	ID            types.CoupleID `json:"id"`
	Source        string         `json:"source"`
	Objectif      string         `json:"objectif"`
	Motivation    types.Score    `json:"motivation"`
	Ressources    types.Score    `json:"ressources"`
	Priorite      types.Score    `json:"priorite"`
	Retenue       *bool          `json:"retenue"`
	Justification string         `json:"justification"`
}

// Retained reports whether the couple is kept for the following workshops.
// A couple is retained unless explicitly excluded.
func (c *SrovCouple) Retained() bool {
	return c.Retenue == nil || *c.Retenue
}

// Normalize assigns a missing id, clamps scores and materializes the
// retenue default (true unless explicitly false).
func (c *SrovCouple) Normalize() {
	if c.ID == "" {
		c.ID = types.NewCoupleID()
	}
	c.Motivation = c.Motivation.Clamp()
	c.Ressources = c.Ressources.Clamp()
	c.Priorite = c.Priorite.Clamp()
	if c.Retenue == nil {
		retained := true
		c.Retenue = &retained
	}
}

// Clone returns a copy of the couple
func (c *SrovCouple) Clone() *SrovCouple {
	if c == nil {
		return nil
	}
	cloned := *c
	if c.Retenue != nil {
		retained := *c.Retenue
		cloned.Retenue = &retained
	}
	return &cloned
}

package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Stakeholder represents a third party (partie prenante critique) scored by
// dependency, penetration, maturity and trust. SupportNames reference
// supports by name across missions; MissionIDs reference the business
// values the stakeholder touches. Both are weak references: deleting the
// target does not cascade and projections must tolerate dangling keys.
type Stakeholder struct {
	ID           types.StakeholderID       `json:"id"`
	Nom          string                    `json:"nom"`
	Categorie    types.StakeholderCategory `json:"categorie"`
	SupportNames []string                  `json:"supportIds"`
	MissionIDs   []types.MissionID         `json:"valueIds"`
	Dependance   types.Score               `json:"dependance"`
	Penetration  types.Score               `json:"penetration"`
	Maturite     types.Score               `json:"maturite"`
	Confiance    types.Score               `json:"confiance"`
}

// Normalize assigns a missing id, defaults the category, clamps scores and
// deduplicates associations while preserving insertion order.
func (s *Stakeholder) Normalize() {
	if s.ID == "" {
		s.ID = types.NewStakeholderID()
	}
	s.Categorie = s.Categorie.Normalize()
	s.Dependance = s.Dependance.Clamp()
	s.Penetration = s.Penetration.Clamp()
	s.Maturite = s.Maturite.Clamp()
	s.Confiance = s.Confiance.Clamp()
	s.SupportNames = dedupe(s.SupportNames)
	s.MissionIDs = dedupe(s.MissionIDs)
}

// Clone returns a deep copy of the stakeholder
func (s *Stakeholder) Clone() *Stakeholder {
	if s == nil {
		return nil
	}
	cloned := *s
	cloned.SupportNames = cloneStrings(s.SupportNames)
	if s.MissionIDs != nil {
		cloned.MissionIDs = make([]types.MissionID, len(s.MissionIDs))
		copy(cloned.MissionIDs, s.MissionIDs)
	}
	return &cloned
}

// dedupe removes duplicate entries preserving first-seen order. Adding an
// already-present member to an association is a no-op by construction.
func dedupe[T comparable](in []T) []T {
	if in == nil {
		return nil
	}
	seen := make(map[T]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

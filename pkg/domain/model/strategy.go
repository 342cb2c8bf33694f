package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Strategy represents a strategic scenario: an attack strategy linking a
// threat source/objective to feared events, optionally through stakeholder
// intermediaries. Severity is derived from the referenced events.
type Strategy struct {
	ID               types.StrategyID      `json:"id"`
	Source           string                `json:"source"`
	Objectif         string                `json:"objectif"`
	Chemins          []string              `json:"chemins"`
	IntermediaireIDs []types.StakeholderID `json:"intermediaireIds"`
	EventIDs         []types.EventID       `json:"eventIds"`
}

// Normalize assigns a missing id and deduplicates associations
func (s *Strategy) Normalize() {
	if s.ID == "" {
		s.ID = types.NewStrategyID()
	}
	s.IntermediaireIDs = dedupe(s.IntermediaireIDs)
	s.EventIDs = dedupe(s.EventIDs)
}

// Clone returns a deep copy of the strategy
func (s *Strategy) Clone() *Strategy {
	if s == nil {
		return nil
	}
	cloned := *s
	cloned.Chemins = cloneStrings(s.Chemins)
	if s.IntermediaireIDs != nil {
		cloned.IntermediaireIDs = make([]types.StakeholderID, len(s.IntermediaireIDs))
		copy(cloned.IntermediaireIDs, s.IntermediaireIDs)
	}
	if s.EventIDs != nil {
		cloned.EventIDs = make([]types.EventID, len(s.EventIDs))
		copy(cloned.EventIDs, s.EventIDs)
	}
	return &cloned
}

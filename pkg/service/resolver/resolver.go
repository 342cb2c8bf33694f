package resolver

import (
	"strings"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Resolver resolves weak references (ids and support names) against one
// analysis snapshot. Lookups never fail hard: a missing target yields an
// Unresolved placeholder carrying the raw key, which projections render as
// a removed entity.
type Resolver struct {
	analysis     *model.Analysis
	missions     map[types.MissionID]*model.Mission
	events       map[types.EventID]*model.Event
	stakeholders map[types.StakeholderID]*model.Stakeholder
	couples      map[types.CoupleID]*model.SrovCouple
	supports     map[string]model.Support
	supportOrder []string
}

// Unresolved is the placeholder for a reference whose target no longer
// exists. Kind names the entity type, Key is the raw reference.
type Unresolved struct {
	Kind string
	Key  string
}

// Label returns the placeholder text shown in view-models
func (u Unresolved) Label() string {
	return "(" + u.Kind + " supprimé: " + u.Key + ")"
}

// New indexes the analysis for resolution. The resolver is a read-only
// snapshot: rebuild it after mutations.
func New(a *model.Analysis) *Resolver {
	r := &Resolver{
		analysis:     a,
		missions:     make(map[types.MissionID]*model.Mission, len(a.Data.Missions)),
		events:       make(map[types.EventID]*model.Event, len(a.Data.Events)),
		stakeholders: make(map[types.StakeholderID]*model.Stakeholder, len(a.Data.Stakeholders)),
		couples:      make(map[types.CoupleID]*model.SrovCouple, len(a.Data.Couples)),
		supports:     make(map[string]model.Support),
	}

	for _, m := range a.Data.Missions {
		r.missions[m.ID] = m
		for _, s := range m.Supports {
			name := strings.TrimSpace(s.Name)
			if name == "" {
				continue
			}
			// First description/responsable wins across missions
			if _, seen := r.supports[name]; !seen {
				r.supports[name] = s
				r.supportOrder = append(r.supportOrder, name)
			}
		}
	}
	for _, e := range a.Data.Events {
		r.events[e.ID] = e
	}
	for _, s := range a.Data.Stakeholders {
		r.stakeholders[s.ID] = s
	}
	for _, c := range a.Data.Couples {
		r.couples[c.ID] = c
	}

	return r
}

// Mission resolves a mission id
func (r *Resolver) Mission(id types.MissionID) (*model.Mission, bool) {
	m, ok := r.missions[id]
	return m, ok
}

// Event resolves a feared event id
func (r *Resolver) Event(id types.EventID) (*model.Event, bool) {
	e, ok := r.events[id]
	return e, ok
}

// Stakeholder resolves a stakeholder id
func (r *Resolver) Stakeholder(id types.StakeholderID) (*model.Stakeholder, bool) {
	s, ok := r.stakeholders[id]
	return s, ok
}

// Couple resolves a threat source/objective pair id
func (r *Resolver) Couple(id types.CoupleID) (*model.SrovCouple, bool) {
	c, ok := r.couples[id]
	return c, ok
}

// Support resolves a support by its name join key
func (r *Resolver) Support(name string) (model.Support, bool) {
	s, ok := r.supports[strings.TrimSpace(name)]
	return s, ok
}

// UniqueSupports returns the supports across all missions deduplicated by
// name, in first-seen order.
func (r *Resolver) UniqueSupports() []model.Support {
	out := make([]model.Support, 0, len(r.supportOrder))
	for _, name := range r.supportOrder {
		out = append(out, r.supports[name])
	}
	return out
}

// MissionLabel returns the mission denomination or a placeholder for a
// dangling id.
func (r *Resolver) MissionLabel(id types.MissionID) string {
	if m, ok := r.Mission(id); ok {
		return m.Denom
	}
	return Unresolved{Kind: "valeur métier", Key: id.String()}.Label()
}

// EventLabel returns the event text or a placeholder for a dangling id
func (r *Resolver) EventLabel(id types.EventID) string {
	if e, ok := r.Event(id); ok {
		return e.Evenement
	}
	return Unresolved{Kind: "évènement", Key: id.String()}.Label()
}

// StakeholderLabel returns the stakeholder name or a placeholder for a
// dangling id.
func (r *Resolver) StakeholderLabel(id types.StakeholderID) string {
	if s, ok := r.Stakeholder(id); ok {
		return s.Nom
	}
	return Unresolved{Kind: "partie prenante", Key: id.String()}.Label()
}

// AvailableForSelection returns the candidates not yet chosen, preserving
// candidate order. It backs every "add existing entity" affordance.
func AvailableForSelection[T any, K comparable](candidates []T, key func(T) K, chosen []K) []T {
	taken := make(map[K]bool, len(chosen))
	for _, k := range chosen {
		taken[k] = true
	}

	var out []T
	for _, c := range candidates {
		if taken[key(c)] {
			continue
		}
		out = append(out, c)
	}
	return out
}

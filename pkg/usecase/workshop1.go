package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Workshop 1: business values (missions), their supports and feared events.

// AddMission appends a mission to an analysis
func (uc *UseCases) AddMission(ctx context.Context, analysisID types.AnalysisID, m *model.Mission) (*model.Mission, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	m = m.Clone()
	m.Normalize()
	a.Data.Missions = append(a.Data.Missions, m)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

// UpdateMission replaces a mission in place, keeping its display position
func (uc *UseCases) UpdateMission(ctx context.Context, analysisID types.AnalysisID, m *model.Mission) (*model.Mission, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	m = m.Clone()
	m.Normalize()
	for i, existing := range a.Data.Missions {
		if existing.ID == m.ID {
			a.Data.Missions[i] = m
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return m.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown mission", goerr.V("id", m.ID))
}

// RemoveMission deletes a mission and cascades to all feared events owned
// by it, in the same mutation: readers never observe a partial cascade.
func (uc *UseCases) RemoveMission(ctx context.Context, analysisID types.AnalysisID, id types.MissionID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	missions := a.Data.Missions[:0]
	found := false
	for _, m := range a.Data.Missions {
		if m.ID == id {
			found = true
			continue
		}
		missions = append(missions, m)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown mission", goerr.V("id", id))
	}
	a.Data.Missions = missions

	events := a.Data.Events[:0]
	for _, e := range a.Data.Events {
		if e.MissionID == id {
			continue
		}
		events = append(events, e)
	}
	a.Data.Events = events

	return uc.persist(ctx)
}

// AddEvent appends a feared event to an analysis
func (uc *UseCases) AddEvent(ctx context.Context, analysisID types.AnalysisID, e *model.Event) (*model.Event, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	e = e.Clone()
	e.Normalize()
	a.Data.Events = append(a.Data.Events, e)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// UpdateEvent replaces a feared event in place
func (uc *UseCases) UpdateEvent(ctx context.Context, analysisID types.AnalysisID, e *model.Event) (*model.Event, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	e = e.Clone()
	e.Normalize()
	for i, existing := range a.Data.Events {
		if existing.ID == e.ID {
			a.Data.Events[i] = e
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return e.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown event", goerr.V("id", e.ID))
}

// RemoveEvent deletes a feared event
func (uc *UseCases) RemoveEvent(ctx context.Context, analysisID types.AnalysisID, id types.EventID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	events := a.Data.Events[:0]
	found := false
	for _, e := range a.Data.Events {
		if e.ID == id {
			found = true
			continue
		}
		events = append(events, e)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown event", goerr.V("id", id))
	}
	a.Data.Events = events

	return uc.persist(ctx)
}

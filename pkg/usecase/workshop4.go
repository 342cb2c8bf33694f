package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Workshop 4: operational attack scenarios.

// AddScenario appends an operational scenario to an analysis
func (uc *UseCases) AddScenario(ctx context.Context, analysisID types.AnalysisID, s *model.OperationalScenario) (*model.OperationalScenario, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	s = s.Clone()
	s.Normalize()
	a.Data.Scenarios = append(a.Data.Scenarios, s)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// UpdateScenario replaces a scenario in place
func (uc *UseCases) UpdateScenario(ctx context.Context, analysisID types.AnalysisID, s *model.OperationalScenario) (*model.OperationalScenario, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	s = s.Clone()
	s.Normalize()
	for i, existing := range a.Data.Scenarios {
		if existing.ID == s.ID {
			a.Data.Scenarios[i] = s
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return s.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown scenario", goerr.V("id", s.ID))
}

// RemoveScenario deletes a scenario. Risk references to it are weak and
// rendered as unresolved afterwards.
func (uc *UseCases) RemoveScenario(ctx context.Context, analysisID types.AnalysisID, id types.ScenarioID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	scenarios := a.Data.Scenarios[:0]
	found := false
	for _, s := range a.Data.Scenarios {
		if s.ID == id {
			found = true
			continue
		}
		scenarios = append(scenarios, s)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown scenario", goerr.V("id", id))
	}
	a.Data.Scenarios = scenarios

	return uc.persist(ctx)
}

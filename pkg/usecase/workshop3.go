package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Workshop 3: critical stakeholders and attack strategies.

// AddStakeholder appends a stakeholder to an analysis
func (uc *UseCases) AddStakeholder(ctx context.Context, analysisID types.AnalysisID, s *model.Stakeholder) (*model.Stakeholder, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	s = s.Clone()
	s.Normalize()
	a.Data.Stakeholders = append(a.Data.Stakeholders, s)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// UpdateStakeholder replaces a stakeholder in place
func (uc *UseCases) UpdateStakeholder(ctx context.Context, analysisID types.AnalysisID, s *model.Stakeholder) (*model.Stakeholder, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	s = s.Clone()
	s.Normalize()
	for i, existing := range a.Data.Stakeholders {
		if existing.ID == s.ID {
			a.Data.Stakeholders[i] = s
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return s.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown stakeholder", goerr.V("id", s.ID))
}

// RemoveStakeholder deletes a stakeholder. Strategy references to it are
// weak and rendered as unresolved afterwards.
func (uc *UseCases) RemoveStakeholder(ctx context.Context, analysisID types.AnalysisID, id types.StakeholderID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	stakeholders := a.Data.Stakeholders[:0]
	found := false
	for _, s := range a.Data.Stakeholders {
		if s.ID == id {
			found = true
			continue
		}
		stakeholders = append(stakeholders, s)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown stakeholder", goerr.V("id", id))
	}
	a.Data.Stakeholders = stakeholders

	return uc.persist(ctx)
}

// AddStrategy appends an attack strategy to an analysis
func (uc *UseCases) AddStrategy(ctx context.Context, analysisID types.AnalysisID, s *model.Strategy) (*model.Strategy, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	s = s.Clone()
	s.Normalize()
	a.Data.Strategies = append(a.Data.Strategies, s)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// UpdateStrategy replaces a strategy in place
func (uc *UseCases) UpdateStrategy(ctx context.Context, analysisID types.AnalysisID, s *model.Strategy) (*model.Strategy, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	s = s.Clone()
	s.Normalize()
	for i, existing := range a.Data.Strategies {
		if existing.ID == s.ID {
			a.Data.Strategies[i] = s
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return s.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown strategy", goerr.V("id", s.ID))
}

// RemoveStrategy deletes a strategy
func (uc *UseCases) RemoveStrategy(ctx context.Context, analysisID types.AnalysisID, id types.StrategyID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	strategies := a.Data.Strategies[:0]
	found := false
	for _, s := range a.Data.Strategies {
		if s.ID == id {
			found = true
			continue
		}
		strategies = append(strategies, s)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown strategy", goerr.V("id", id))
	}
	a.Data.Strategies = strategies

	return uc.persist(ctx)
}

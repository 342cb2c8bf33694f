package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Workshop 5: consolidated risks.

// AddRisk appends a risk to an analysis
func (uc *UseCases) AddRisk(ctx context.Context, analysisID types.AnalysisID, r *model.Risk) (*model.Risk, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	r = r.Clone()
	r.Normalize()
	a.Data.Risks = append(a.Data.Risks, r)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// UpdateRisk replaces a risk in place
func (uc *UseCases) UpdateRisk(ctx context.Context, analysisID types.AnalysisID, r *model.Risk) (*model.Risk, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	r = r.Clone()
	r.Normalize()
	for i, existing := range a.Data.Risks {
		if existing.ID == r.ID {
			a.Data.Risks[i] = r
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return r.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown risk", goerr.V("id", r.ID))
}

// RemoveRisk deletes a risk
func (uc *UseCases) RemoveRisk(ctx context.Context, analysisID types.AnalysisID, id types.RiskID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	risks := a.Data.Risks[:0]
	found := false
	for _, r := range a.Data.Risks {
		if r.ID == id {
			found = true
			continue
		}
		risks = append(risks, r)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown risk", goerr.V("id", id))
	}
	a.Data.Risks = risks

	return uc.persist(ctx)
}

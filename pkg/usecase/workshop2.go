package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Workshop 2: gap analysis requirements and threat source couples.

// AddGapRequirement appends a requirement to the gap analysis
func (uc *UseCases) AddGapRequirement(ctx context.Context, analysisID types.AnalysisID, r *model.GapRequirement) (*model.GapRequirement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	r = r.Clone()
	r.Normalize()
	a.Data.Requirements = append(a.Data.Requirements, r)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return r.Clone(), nil
}

// UpdateGapRequirement replaces a requirement in place
func (uc *UseCases) UpdateGapRequirement(ctx context.Context, analysisID types.AnalysisID, r *model.GapRequirement) (*model.GapRequirement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	r = r.Clone()
	r.Normalize()
	for i, existing := range a.Data.Requirements {
		if existing.ID == r.ID {
			a.Data.Requirements[i] = r
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return r.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown gap requirement", goerr.V("id", r.ID))
}

// RemoveGapRequirement deletes a requirement from the gap analysis
func (uc *UseCases) RemoveGapRequirement(ctx context.Context, analysisID types.AnalysisID, id types.RequirementID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	reqs := a.Data.Requirements[:0]
	found := false
	for _, r := range a.Data.Requirements {
		if r.ID == id {
			found = true
			continue
		}
		reqs = append(reqs, r)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown gap requirement", goerr.V("id", id))
	}
	a.Data.Requirements = reqs

	return uc.persist(ctx)
}

// ImportGapRequirements appends a batch of requirements parsed from an
// external referential. Existing requirements are kept untouched.
func (uc *UseCases) ImportGapRequirements(ctx context.Context, analysisID types.AnalysisID, rows []*model.GapRequirement) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return 0, err
	}

	for _, r := range rows {
		r = r.Clone()
		r.ID = ""
		r.Normalize()
		a.Data.Requirements = append(a.Data.Requirements, r)
	}

	if err := uc.persist(ctx); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// AddSrovCouple appends a threat source/objective couple
func (uc *UseCases) AddSrovCouple(ctx context.Context, analysisID types.AnalysisID, c *model.SrovCouple) (*model.SrovCouple, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	c = c.Clone()
	c.Normalize()
	a.Data.Couples = append(a.Data.Couples, c)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// UpdateSrovCouple replaces a couple in place
func (uc *UseCases) UpdateSrovCouple(ctx context.Context, analysisID types.AnalysisID, c *model.SrovCouple) (*model.SrovCouple, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	c = c.Clone()
	c.Normalize()
	for i, existing := range a.Data.Couples {
		if existing.ID == c.ID {
			a.Data.Couples[i] = c
			if err := uc.persist(ctx); err != nil {
				return nil, err
			}
			return c.Clone(), nil
		}
	}
	return nil, goerr.Wrap(ErrEntityNotFound, "unknown srov couple", goerr.V("id", c.ID))
}

// RemoveSrovCouple deletes a couple. References from risks are weak and
// left as-is; projections render them as unresolved.
func (uc *UseCases) RemoveSrovCouple(ctx context.Context, analysisID types.AnalysisID, id types.CoupleID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return err
	}

	couples := a.Data.Couples[:0]
	found := false
	for _, c := range a.Data.Couples {
		if c.ID == id {
			found = true
			continue
		}
		couples = append(couples, c)
	}
	if !found {
		return goerr.Wrap(ErrEntityNotFound, "unknown srov couple", goerr.V("id", id))
	}
	a.Data.Couples = couples

	return uc.persist(ctx)
}

package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// CreateAnalysis creates a new empty analysis and appends it to the store
func (uc *UseCases) CreateAnalysis(ctx context.Context, title string) (*model.Analysis, error) {
	if title == "" {
		return nil, goerr.New("analysis title is required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	a := &model.Analysis{Title: title}
	a.Normalize()
	uc.analyses = append(uc.analyses, a)

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// RenameAnalysis changes the title of an analysis
func (uc *UseCases) RenameAnalysis(ctx context.Context, id types.AnalysisID, title string) (*model.Analysis, error) {
	if title == "" {
		return nil, goerr.New("analysis title is required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(id)
	if err != nil {
		return nil, err
	}
	a.Title = title

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// DeleteAnalysis removes an analysis from the store. Deleting the selected
// analysis clears the selection.
func (uc *UseCases) DeleteAnalysis(ctx context.Context, id types.AnalysisID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.analysis(id); err != nil {
		return err
	}

	kept := uc.analyses[:0]
	for _, a := range uc.analyses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	uc.analyses = kept

	if uc.selected == id {
		uc.selected = ""
		uc.trackSelection(ctx)
	}

	return uc.persist(ctx)
}

// SelectAnalysis makes the given analysis current. The selection pointer is
// persisted best-effort: a tracking failure is logged, never surfaced.
func (uc *UseCases) SelectAnalysis(ctx context.Context, id types.AnalysisID) (*model.Analysis, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(id)
	if err != nil {
		return nil, err
	}

	uc.selected = id
	uc.trackSelection(ctx)
	return a.Clone(), nil
}

// trackSelection persists the selection pointer best-effort
func (uc *UseCases) trackSelection(ctx context.Context) {
	if err := uc.repo.SetSelectedID(ctx, uc.selected); err != nil {
		logging.From(ctx).Warn("failed to persist selected analysis pointer",
			"id", uc.selected, "error", err)
	}
}

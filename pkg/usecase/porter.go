package usecase

import (
	"context"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/porter"
)

// ExportAnalysis serializes one analysis with a suggested filename
func (uc *UseCases) ExportAnalysis(id types.AnalysisID) ([]byte, string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(id)
	if err != nil {
		return nil, "", err
	}
	return porter.ExportAnalysis(a)
}

// ExportAll serializes the full store
func (uc *UseCases) ExportAll() ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return porter.ExportAll(uc.analyses)
}

// ImportDocument applies a portable document to the store: a sequence
// replaces everything, a single analysis is appended. A malformed document
// leaves the store untouched. Residual risk defaults are seeded from the
// scenario rollup for imported analyses, and persistence failure is
// surfaced: import is an explicit save action.
func (uc *UseCases) ImportDocument(ctx context.Context, data []byte) ([]*model.Analysis, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	imported, mode, err := porter.ImportAll(data)
	if err != nil {
		return nil, err
	}
	for _, a := range imported {
		seedRiskResiduals(a)
	}

	switch mode {
	case porter.ImportReplace:
		uc.analyses = imported
		if _, err := findAnalysis(uc.analyses, uc.selected); err != nil {
			uc.selected = ""
			uc.trackSelection(ctx)
		}
	case porter.ImportAppend:
		uc.analyses = append(uc.analyses, imported...)
	}

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}

	out := make([]*model.Analysis, 0, len(imported))
	for _, a := range imported {
		out = append(out, a.Clone())
	}
	return out, nil
}

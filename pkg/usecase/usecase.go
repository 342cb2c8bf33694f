package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/catalogue"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

var (
	// ErrAnalysisNotFound is returned when the referenced analysis does
	// not exist in the store.
	ErrAnalysisNotFound = goerr.New("analysis not found")

	// ErrEntityNotFound is returned when a referenced sub-entity does not
	// exist in its collection.
	ErrEntityNotFound = goerr.New("entity not found")

	// ErrNoSelection is returned when no analysis is currently selected
	ErrNoSelection = goerr.New("no analysis selected")
)

// UseCases is the entity store: it owns the in-memory analysis list, the
// current selection and the loaded technique catalogue. Every mutation runs
// the normalization pass for the touched collection, applies the change and
// persists the full store before returning; in-memory state stays
// authoritative for the session if persistence fails.
type UseCases struct {
	mu        sync.Mutex
	repo      interfaces.Repository
	analyses  []*model.Analysis
	selected  types.AnalysisID
	catalogue []*model.Technique
	fetcher   *catalogue.Fetcher
}

// Option configures the use cases
type Option func(*UseCases)

// WithCatalogueFetcher replaces the technique catalogue fetcher
func WithCatalogueFetcher(f *catalogue.Fetcher) Option {
	return func(uc *UseCases) {
		uc.fetcher = f
	}
}

// New loads the store from the repository. A corrupt or unreadable
// persisted document resets to an empty list with a logged warning; it is
// never fatal.
func New(ctx context.Context, repo interfaces.Repository, opts ...Option) (*UseCases, error) {
	uc := &UseCases{
		repo:    repo,
		fetcher: catalogue.NewFetcher(),
	}
	for _, opt := range opts {
		opt(uc)
	}

	analyses, err := repo.LoadAnalyses(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to load persisted analyses, starting empty", "error", err)
		analyses = nil
	}
	for _, a := range analyses {
		a.Normalize()
	}
	uc.analyses = analyses

	selected, err := repo.GetSelectedID(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to load selected analysis pointer", "error", err)
	} else if _, err := findAnalysis(analyses, selected); err == nil {
		uc.selected = selected
	}

	return uc, nil
}

// persist writes the full store. Mutating operations call it while holding
// the lock so no partial state is ever visible to readers.
func (uc *UseCases) persist(ctx context.Context) error {
	if err := uc.repo.SaveAnalyses(ctx, uc.analyses); err != nil {
		return goerr.Wrap(err, "failed to persist analyses")
	}
	return nil
}

func findAnalysis(analyses []*model.Analysis, id types.AnalysisID) (*model.Analysis, error) {
	for _, a := range analyses {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, goerr.Wrap(ErrAnalysisNotFound, "unknown analysis", goerr.V("id", id))
}

// analysis returns the stored (not cloned) analysis; callers must hold the
// lock and must not leak the pointer.
func (uc *UseCases) analysis(id types.AnalysisID) (*model.Analysis, error) {
	return findAnalysis(uc.analyses, id)
}

// ListAnalyses returns clones of all analyses in store order
func (uc *UseCases) ListAnalyses() []*model.Analysis {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]*model.Analysis, 0, len(uc.analyses))
	for _, a := range uc.analyses {
		out = append(out, a.Clone())
	}
	return out
}

// GetAnalysis returns a clone of one analysis
func (uc *UseCases) GetAnalysis(id types.AnalysisID) (*model.Analysis, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(id)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

// CurrentAnalysis returns a clone of the selected analysis
func (uc *UseCases) CurrentAnalysis() (*model.Analysis, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.selected == "" {
		return nil, ErrNoSelection
	}
	a, err := uc.analysis(uc.selected)
	if err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

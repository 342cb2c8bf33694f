package interfaces

import (
	"context"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Repository is the persistence gateway: whole-document load/save of the
// ordered analysis list plus the independently persisted selected-analysis
// pointer. Implementations must preserve list order and must not require
// any field beyond the entity ids; normalization of optional fields happens
// in the store, not here.
type Repository interface {
	// LoadAnalyses returns the full ordered analysis list. Implementations
	// fail soft on corrupt documents: log and return an empty list rather
	// than an error the caller cannot act on.
	LoadAnalyses(ctx context.Context) ([]*model.Analysis, error)

	// SaveAnalyses replaces the persisted list with the given one
	SaveAnalyses(ctx context.Context, analyses []*model.Analysis) error

	// GetSelectedID returns the persisted selected-analysis pointer,
	// empty when none was ever selected.
	GetSelectedID(ctx context.Context) (types.AnalysisID, error)

	// SetSelectedID persists the selected-analysis pointer
	SetSelectedID(ctx context.Context, id types.AnalysisID) error

	// Close releases backend resources
	Close() error
}

package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Memory is the in-memory persistence gateway used for development and
// tests. Analyses are exchanged as deep copies so callers can never mutate
// stored state in place.
type Memory struct {
	mu       sync.RWMutex
	analyses []*model.Analysis
	selected types.AnalysisID
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) LoadAnalyses(ctx context.Context) ([]*model.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.Analysis, 0, len(m.analyses))
	for _, a := range m.analyses {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (m *Memory) SaveAnalyses(ctx context.Context, analyses []*model.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]*model.Analysis, 0, len(analyses))
	for _, a := range analyses {
		stored = append(stored, a.Clone())
	}
	m.analyses = stored
	return nil
}

func (m *Memory) GetSelectedID(ctx context.Context) (types.AnalysisID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selected, nil
}

func (m *Memory) SetSelectedID(ctx context.Context, id types.AnalysisID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = id
	return nil
}

func (m *Memory) Close() error {
	return nil
}

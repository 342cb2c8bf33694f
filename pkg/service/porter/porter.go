package porter

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
)

// ErrMalformedDocument is returned when an import document cannot be
// interpreted; the store is left untouched in that case.
var ErrMalformedDocument = goerr.New("malformed import document")

// ExportAnalysis serializes one analysis to the portable JSON document and
// returns the suggested filename derived from its title. Only source fields
// are serialized; derived metrics are recomputed on import.
func ExportAnalysis(a *model.Analysis) ([]byte, string, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to serialize analysis", goerr.V("id", a.ID))
	}
	return data, SanitizeFilename(a.Title) + ".json", nil
}

// ExportAll serializes the full ordered analysis list
func ExportAll(analyses []*model.Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize analysis list")
	}
	return data, nil
}

// ImportMode describes how an imported document applies to the store
type ImportMode int

const (
	// ImportReplace replaces the whole store (input was a sequence)
	ImportReplace ImportMode = iota
	// ImportAppend appends to the store (input was a single analysis)
	ImportAppend
)

// ImportAll deserializes a portable document: a sequence of analyses
// replaces the store, a single analysis object is appended. Anything else
// fails with ErrMalformedDocument and no partial result.
func ImportAll(data []byte) ([]*model.Analysis, ImportMode, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var analyses []*model.Analysis
		if err := json.Unmarshal(data, &analyses); err != nil {
			return nil, 0, goerr.Wrap(ErrMalformedDocument, "invalid analysis list document",
				goerr.V("cause", err.Error()))
		}
		for _, a := range analyses {
			if a == nil {
				return nil, 0, goerr.Wrap(ErrMalformedDocument, "analysis list contains a null entry")
			}
			a.Normalize()
		}
		return analyses, ImportReplace, nil
	}

	var single model.Analysis
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, 0, goerr.Wrap(ErrMalformedDocument, "invalid analysis document",
			goerr.V("cause", err.Error()))
	}
	single.Normalize()
	return []*model.Analysis{&single}, ImportAppend, nil
}

// SanitizeFilename lowercases the title and replaces anything outside
// [a-z0-9_] with an underscore.
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "analyse"
	}
	return b.String()
}

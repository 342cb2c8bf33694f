package porter

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// gapAliases maps each canonical requirement field to the accepted keys of
// loosely-typed import records, in lookup order.
var gapAliases = map[string][]string{
	"domaine":       {"domaine", "domain"},
	"titre":         {"titre", "title"},
	"description":   {"description", "desc"},
	"application":   {"application", "status"},
	"justification": {"justification", "justif"},
}

// ImportGapRequirements parses a bulk gap requirement document: a JSON
// sequence of loosely-keyed records mapped through the alias table. Every
// requirement gets a fresh id, whatever the input carried.
func ImportGapRequirements(data []byte) ([]*model.GapRequirement, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, goerr.Wrap(ErrMalformedDocument, "gap import expects a sequence of records",
			goerr.V("cause", err.Error()))
	}

	requirements := make([]*model.GapRequirement, 0, len(records))
	for _, rec := range records {
		req := &model.GapRequirement{
			ID:            types.NewRequirementID(),
			Domaine:       aliasedString(rec, "domaine"),
			Titre:         aliasedString(rec, "titre"),
			Description:   aliasedString(rec, "description"),
			Application:   types.ApplicationStatus(aliasedString(rec, "application")),
			Justification: aliasedString(rec, "justification"),
		}
		req.Application = req.Application.Normalize()
		requirements = append(requirements, req)
	}
	return requirements, nil
}

func aliasedString(rec map[string]any, field string) string {
	for _, key := range gapAliases[field] {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}

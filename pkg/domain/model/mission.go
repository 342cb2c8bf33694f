package model

import (
	"encoding/json"
	"strings"

	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Mission represents a protected business value (valeur métier) with the
// supports that underpin it. Supports are owned by the mission: the same
// conceptual support may appear on several missions and stays independently
// editable on each.
type Mission struct {
	ID          types.MissionID     `json:"id"`
	Denom       string              `json:"denom"`
	Nature      types.MissionNature `json:"nature"`
	Description string              `json:"description"`
	Responsable string              `json:"responsable"`
	Supports    SupportList         `json:"supports"`
}

// Support is a technical or organizational asset embedded in a mission.
// The name is the de facto join key used by stakeholders and view-models;
// it is not a stable id.
type Support struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Responsable string `json:"responsable"`
}

// SupportList decodes both the canonical array shape and the legacy
// comma-separated string of support names found in old documents.
type SupportList []Support

// UnmarshalJSON accepts either an array of Support objects or a single
// string of comma-separated names, which becomes supports with empty
// description and responsable.
func (l *SupportList) UnmarshalJSON(b []byte) error {
	var arr []Support
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = arr
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var out SupportList
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, Support{Name: name})
	}
	*l = out
	return nil
}

// Normalize assigns a missing id and defaults the nature. Support names
// are trimmed; empty entries are dropped.
func (m *Mission) Normalize() {
	if m.ID == "" {
		m.ID = types.NewMissionID()
	}
	m.Nature = m.Nature.Normalize()

	supports := m.Supports[:0]
	for _, s := range m.Supports {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			continue
		}
		supports = append(supports, s)
	}
	m.Supports = supports
}

// Clone returns a deep copy of the mission
func (m *Mission) Clone() *Mission {
	if m == nil {
		return nil
	}
	cloned := *m
	if m.Supports != nil {
		cloned.Supports = make(SupportList, len(m.Supports))
		copy(cloned.Supports, m.Supports)
	}
	return &cloned
}

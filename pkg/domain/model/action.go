package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// DateLayout is the wire format of plan dates
const DateLayout = "2006-01-02"

// Date is a calendar date in the plan. The zero value means "not set";
// rows without both dates are kept in the plan but excluded from the
// timeline projection.
type Date struct {
	time.Time
}

// ParseDate parses a wire-format date, returning a zero Date on empty input
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Valid reports whether the date is set
func (d Date) Valid() bool {
	return !d.IsZero()
}

// String returns the wire format, empty for the zero value
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as a wire-format string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a wire-format string. Empty, null and unparsable
// values decode to the zero date rather than failing the document.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		*d = Date{}
		return nil
	}
	*d = parsed
	return nil
}

// Action is one remediation action of the treatment plan
type Action struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Responsable string `json:"responsable"`
	Start       Date   `json:"start"`
	End         Date   `json:"end"`
}

// GapActionRow groups the actions attached to a gap requirement
type GapActionRow struct {
	SourceID types.RequirementID `json:"sourceId"`
	Actions  []Action            `json:"actions"`
}

// SupportActionRow groups the actions attached to a support, referenced
// by name.
type SupportActionRow struct {
	SupportName string   `json:"supportName"`
	Actions     []Action `json:"actions"`
}

// StakeholderActionRow groups the actions attached to a stakeholder
type StakeholderActionRow struct {
	StakeholderID types.StakeholderID `json:"ppId"`
	Actions       []Action            `json:"actions"`
}

// RiskActionRow groups the actions attached to a named risk, together with
// the residual likelihood and severity recorded after treatment.
type RiskActionRow struct {
	RiskName  string      `json:"riskName"`
	ResidualV types.Score `json:"residualV"`
	ResidualG types.Score `json:"residualG"`
	Actions   []Action    `json:"actions"`
}

// Normalize is a no-op placeholder kept for symmetry with other collections
func (r *GapActionRow) Normalize() {}

// Normalize trims the support name join key
func (r *SupportActionRow) Normalize() {
	r.SupportName = strings.TrimSpace(r.SupportName)
}

// Normalize is a no-op placeholder kept for symmetry with other collections
func (r *StakeholderActionRow) Normalize() {}

// Normalize clamps residual ratings once they have been seeded. Zero values
// are kept: they mean "not yet seeded" and are filled from the scenario
// rollup on import.
func (r *RiskActionRow) Normalize() {
	if r.ResidualV != 0 {
		r.ResidualV = r.ResidualV.Clamp()
	}
	if r.ResidualG != 0 {
		r.ResidualG = r.ResidualG.Clamp()
	}
}

func cloneActions(src []Action) []Action {
	if src == nil {
		return nil
	}
	out := make([]Action, len(src))
	copy(out, src)
	return out
}

// Clone returns a deep copy of the row
func (r *GapActionRow) Clone() *GapActionRow {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.Actions = cloneActions(r.Actions)
	return &cloned
}

// Clone returns a deep copy of the row
func (r *SupportActionRow) Clone() *SupportActionRow {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.Actions = cloneActions(r.Actions)
	return &cloned
}

// Clone returns a deep copy of the row
func (r *StakeholderActionRow) Clone() *StakeholderActionRow {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.Actions = cloneActions(r.Actions)
	return &cloned
}

// Clone returns a deep copy of the row
func (r *RiskActionRow) Clone() *RiskActionRow {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.Actions = cloneActions(r.Actions)
	return &cloned
}

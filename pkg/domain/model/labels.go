package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Labels is the display configuration served to the renderer: one label
// per gap compliance status and one per point of the 1-4 rating scale.
type Labels struct {
	Statuses []StatusLabel `toml:"status" json:"statuses"`
	Scale    []ScaleLabel  `toml:"scale" json:"scale"`
}

// StatusLabel maps a canonical compliance status to its display label
type StatusLabel struct {
	Status types.ApplicationStatus `toml:"status" json:"status"`
	Label  string                  `toml:"label" json:"label"`
}

// ScaleLabel names one point of the 1-4 rating scale
type ScaleLabel struct {
	Score types.Score `toml:"score" json:"score"`
	Label string      `toml:"label" json:"label"`
}

// DefaultLabels returns the built-in display labels
func DefaultLabels() Labels {
	var statuses []StatusLabel
	for _, st := range types.AllApplicationStatuses() {
		statuses = append(statuses, StatusLabel{Status: st, Label: st.String()})
	}
	return Labels{
		Statuses: statuses,
		Scale: []ScaleLabel{
			{Score: 1, Label: "Faible"},
			{Score: 2, Label: "Modéré"},
			{Score: 3, Label: "Important"},
			{Score: 4, Label: "Critique"},
		},
	}
}

// Validate checks statuses against the canonical four values and scale
// scores against the 1-4 range, rejecting duplicates.
func (l *Labels) Validate() error {
	seenStatus := make(map[types.ApplicationStatus]bool, len(l.Statuses))
	for _, s := range l.Statuses {
		canonical, ok := types.ParseApplicationStatus(string(s.Status))
		if !ok {
			return goerr.New("unknown compliance status", goerr.V("status", s.Status))
		}
		if s.Label == "" {
			return goerr.New("status label is required", goerr.V("status", s.Status))
		}
		if seenStatus[canonical] {
			return goerr.New("duplicate status label", goerr.V("status", s.Status))
		}
		seenStatus[canonical] = true
	}

	seenScore := make(map[types.Score]bool, len(l.Scale))
	for _, s := range l.Scale {
		if s.Score < 1 || s.Score > 4 {
			return goerr.New("scale score must be between 1 and 4", goerr.V("score", s.Score))
		}
		if s.Label == "" {
			return goerr.New("scale label is required", goerr.V("score", s.Score))
		}
		if seenScore[s.Score] {
			return goerr.New("duplicate scale score", goerr.V("score", s.Score))
		}
		seenScore[s.Score] = true
	}
	return nil
}

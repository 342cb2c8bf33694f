package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ApplicationStatus
		ok    bool
	}{
		{
			name:  "canonical applied",
			input: "Appliqué",
			want:  types.ApplicationApplied,
			ok:    true,
		},
		{
			name:  "applied without diacritics",
			input: "applique",
			want:  types.ApplicationApplied,
			ok:    true,
		},
		{
			name:  "partially applied uppercase",
			input: "PARTIELLEMENT APPLIQUÉ",
			want:  types.ApplicationPartiallyApplied,
			ok:    true,
		},
		{
			name:  "not applicable with surrounding spaces",
			input: "  non applicable ",
			want:  types.ApplicationNotApplicable,
			ok:    true,
		},
		{
			name:  "unknown status",
			input: "en cours",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := types.ParseApplicationStatus(tt.input)
			gt.Value(t, ok).Equal(tt.ok)
			if tt.ok {
				gt.Value(t, got).Equal(tt.want)
			}
		})
	}
}

func TestApplicationStatus_IsApplied(t *testing.T) {
	gt.B(t, types.ApplicationApplied.IsApplied()).True()
	gt.B(t, types.ApplicationStatus("applique").IsApplied()).True()
	gt.B(t, types.ApplicationPartiallyApplied.IsApplied()).False()
	gt.B(t, types.ApplicationNotApplied.IsApplied()).False()
	gt.B(t, types.ApplicationNotApplicable.IsApplied()).False()
}

func TestApplicationStatus_Normalize(t *testing.T) {
	gt.Value(t, types.ApplicationStatus("non appliqué").Normalize()).Equal(types.ApplicationNotApplied)
	gt.Value(t, types.ApplicationStatus("").Normalize()).Equal(types.ApplicationNotApplied)
	// Unknown values are kept so user input is never lost
	gt.Value(t, types.ApplicationStatus("en cours").Normalize()).Equal(types.ApplicationStatus("en cours"))
}

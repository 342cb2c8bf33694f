package types_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

func TestScore_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		score types.Score
		want  types.Score
	}{
		{name: "zero defaults to min", score: 0, want: 1},
		{name: "negative defaults to min", score: -3, want: 1},
		{name: "in range untouched", score: 3, want: 3},
		{name: "above max clamped", score: 12, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.score.Clamp()).Equal(tt.want)
		})
	}
}

func TestScore_ClampImpact(t *testing.T) {
	// zero means "not yet rated" and survives the impact clamp
	gt.Value(t, types.Score(0).ClampImpact()).Equal(types.Score(0))
	gt.Value(t, types.Score(-1).ClampImpact()).Equal(types.Score(0))
	gt.Value(t, types.Score(3).ClampImpact()).Equal(types.Score(3))
	gt.Value(t, types.Score(9).ClampImpact()).Equal(types.Score(4))
}

func TestScore_UnmarshalJSON(t *testing.T) {
	var doc struct {
		Impact types.Score `json:"impact"`
	}

	gt.NoError(t, json.Unmarshal([]byte(`{"impact": 3}`), &doc))
	gt.Value(t, doc.Impact).Equal(types.Score(3))

	// Legacy documents carry scores as strings
	gt.NoError(t, json.Unmarshal([]byte(`{"impact": "2"}`), &doc))
	gt.Value(t, doc.Impact).Equal(types.Score(2))

	// Garbage decodes to zero instead of failing the whole document
	gt.NoError(t, json.Unmarshal([]byte(`{"impact": "high"}`), &doc))
	gt.Value(t, doc.Impact).Equal(types.Score(0))
	gt.Value(t, doc.Impact.Clamp()).Equal(types.Score(1))
}

package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Score is a 1-4 rating used for motivation, resources, impact,
// likelihood and severity fields. Legacy documents carry scores as
// numbers, numeric strings or omit them entirely; decoding is lenient
// and the normalization pass clamps the value into range.
type Score int

const (
	ScoreMin Score = 1
	ScoreMax Score = 4
)

// Clamp returns the score forced into the [ScoreMin, ScoreMax] range.
// Zero (unset) and negative values become ScoreMin.
func (s Score) Clamp() Score {
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}

// ClampImpact keeps zero as "not yet rated" and otherwise forces the
// value into the [ScoreMin, ScoreMax] range. Impact-style fields are the
// only ratings where unset is meaningful.
func (s Score) ClampImpact() Score {
	if s <= 0 {
		return 0
	}
	return s.Clamp()
}

// Int returns the score as a plain int
func (s Score) Int() int {
	return int(s)
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything
// unparsable decodes to zero so that a single bad field never rejects
// a whole document; Clamp turns zero into the default rating.
func (s *Score) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			*s = Score(v)
			return nil
		}
		if f, err := n.Float64(); err == nil {
			*s = Score(f)
			return nil
		}
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			*s = Score(v)
			return nil
		}
	}

	*s = 0
	return nil
}

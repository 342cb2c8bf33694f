package model

// Technique is one entry of the attack technique catalogue, grouping the
// mitigations listed for it.
type Technique struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Mitigations []Mitigation `json:"mitigations"`
}

// Mitigation is one mitigation of a catalogue technique
type Mitigation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Clone returns a deep copy of the technique
func (t *Technique) Clone() *Technique {
	if t == nil {
		return nil
	}
	cloned := *t
	if t.Mitigations != nil {
		cloned.Mitigations = make([]Mitigation, len(t.Mitigations))
		copy(cloned.Mitigations, t.Mitigations)
	}
	return &cloned
}

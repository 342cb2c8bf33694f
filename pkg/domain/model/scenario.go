package model

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// OperationalScenario represents an operational attack scenario against a
// feared event, described along the four kill-chain stages.
type OperationalScenario struct {
	ID            types.ScenarioID `json:"id"`
	EventID       types.EventID    `json:"eventId"`
	Path          string           `json:"path"`
	Connaitre     []string         `json:"connaitre"`
	Rester        []string         `json:"rester"`
	Trouver       []string         `json:"trouver"`
	Exploiter     []string         `json:"exploiter"`
	Risks         []ScenarioRisk   `json:"risks"`
	Vraisemblance types.Score      `json:"vraisemblance"`
	Gravite       types.Score      `json:"gravite"`
}

// ScenarioRisk is a named risk observed within an operational scenario.
// Its likelihood and severity may override the scenario-level ratings;
// both fields are kept as-is and rolled up by max when seeding residual
// risk defaults.
type ScenarioRisk struct {
	Name          string      `json:"name"`
	Vraisemblance types.Score `json:"vraisemblance"`
	Gravite       types.Score `json:"gravite"`
}

// Normalize assigns a missing id and clamps ratings. Per-risk ratings
// missing from the document fall back to the scenario-level values.
func (s *OperationalScenario) Normalize() {
	if s.ID == "" {
		s.ID = types.NewScenarioID()
	}
	s.Vraisemblance = s.Vraisemblance.Clamp()
	s.Gravite = s.Gravite.Clamp()
	for i := range s.Risks {
		if s.Risks[i].Vraisemblance == 0 {
			s.Risks[i].Vraisemblance = s.Vraisemblance
		}
		if s.Risks[i].Gravite == 0 {
			s.Risks[i].Gravite = s.Gravite
		}
		s.Risks[i].Vraisemblance = s.Risks[i].Vraisemblance.Clamp()
		s.Risks[i].Gravite = s.Risks[i].Gravite.Clamp()
	}
}

// Clone returns a deep copy of the scenario
func (s *OperationalScenario) Clone() *OperationalScenario {
	if s == nil {
		return nil
	}
	cloned := *s
	cloned.Connaitre = cloneStrings(s.Connaitre)
	cloned.Rester = cloneStrings(s.Rester)
	cloned.Trouver = cloneStrings(s.Trouver)
	cloned.Exploiter = cloneStrings(s.Exploiter)
	if s.Risks != nil {
		cloned.Risks = make([]ScenarioRisk, len(s.Risks))
		copy(cloned.Risks, s.Risks)
	}
	return &cloned
}

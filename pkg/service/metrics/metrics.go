package metrics

import (
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// Derived metrics are pure functions over analysis snapshots. They are
// recomputed on demand and never persisted as authoritative values.

// Pertinence returns the motivation*ressources product and its 1-4 bucket.
// Bucket thresholds are closed-inclusive on the lower bound: >=13 is 4,
// >=9 is 3, >=5 is 2, anything below is 1. The thresholds drive both
// color-coding and filtering, so they must not drift.
func Pertinence(motivation, ressources types.Score) (int, int) {
	product := motivation.Clamp().Int() * ressources.Clamp().Int()
	return product, PertinenceBucket(product)
}

// PertinenceBucket buckets a pertinence product into a 1-4 level
func PertinenceBucket(product int) int {
	switch {
	case product >= 13:
		return 4
	case product >= 9:
		return 3
	case product >= 5:
		return 2
	default:
		return 1
	}
}

// Exposition is the stakeholder exposure: dependance * penetration
func Exposition(s *model.Stakeholder) int {
	return s.Dependance.Clamp().Int() * s.Penetration.Clamp().Int()
}

// NiveauSSI is the stakeholder security level: maturite * confiance
func NiveauSSI(s *model.Stakeholder) int {
	return s.Maturite.Clamp().Int() * s.Confiance.Clamp().Int()
}

// Indice is exposition divided by niveau SSI, defined as 0 when the
// denominator is zero.
func Indice(s *model.Stakeholder) float64 {
	niveau := NiveauSSI(s)
	if niveau == 0 {
		return 0
	}
	return float64(Exposition(s)) / float64(niveau)
}

// MissionImpact returns the maximum impact over the feared events of a
// mission, 0 when the mission has none.
func MissionImpact(a *model.Analysis, id types.MissionID) int {
	maxImpact := 0
	for _, e := range a.Data.Events {
		if e.MissionID != id {
			continue
		}
		if impact := e.Impact.ClampImpact().Int(); impact > maxImpact {
			maxImpact = impact
		}
	}
	return maxImpact
}

// SupportStats describes how widely a support is used and how critical the
// missions relying on it are.
type SupportStats struct {
	Degree    int
	MaxImpact int
}

// SupportStatsFor counts the missions referencing the named support and the
// maximum mission impact across them.
func SupportStatsFor(a *model.Analysis, supportName string) SupportStats {
	var stats SupportStats
	for _, m := range a.Data.Missions {
		referenced := false
		for _, s := range m.Supports {
			if s.Name == supportName {
				referenced = true
				break
			}
		}
		if !referenced {
			continue
		}
		stats.Degree++
		if impact := MissionImpact(a, m.ID); impact > stats.MaxImpact {
			stats.MaxImpact = impact
		}
	}
	return stats
}

// ComplianceCounts holds per-status requirement counts for the gap analysis
type ComplianceCounts struct {
	Applied          int
	PartiallyApplied int
	NotApplied       int
	NotApplicable    int
	Other            int
}

// Total returns the number of counted requirements
func (c ComplianceCounts) Total() int {
	return c.Applied + c.PartiallyApplied + c.NotApplied + c.NotApplicable + c.Other
}

// GapComplianceCounts counts requirements per application status, matching
// the four canonical statuses case and diacritic insensitively.
func GapComplianceCounts(requirements []*model.GapRequirement) ComplianceCounts {
	var counts ComplianceCounts
	for _, r := range requirements {
		status, ok := types.ParseApplicationStatus(string(r.Application))
		if !ok {
			counts.Other++
			continue
		}
		switch status {
		case types.ApplicationApplied:
			counts.Applied++
		case types.ApplicationPartiallyApplied:
			counts.PartiallyApplied++
		case types.ApplicationNotApplied:
			counts.NotApplied++
		case types.ApplicationNotApplicable:
			counts.NotApplicable++
		}
	}
	return counts
}

// ScenarioSeverity returns the maximum impact over the feared events a
// strategy references, 0 when none of them resolve.
func ScenarioSeverity(a *model.Analysis, strategy *model.Strategy) int {
	byID := make(map[types.EventID]*model.Event, len(a.Data.Events))
	for _, e := range a.Data.Events {
		byID[e.ID] = e
	}

	severity := 0
	for _, id := range strategy.EventIDs {
		e, ok := byID[id]
		if !ok {
			continue
		}
		if impact := e.Impact.ClampImpact().Int(); impact > severity {
			severity = impact
		}
	}
	return severity
}

// RiskResidualRollup returns the maximum likelihood and severity across all
// operational-scenario risk entries sharing the given name. It seeds the
// residual-risk defaults when building the treatment plan.
func RiskResidualRollup(a *model.Analysis, riskName string) (types.Score, types.Score) {
	var likelihood, severity types.Score
	for _, sc := range a.Data.Scenarios {
		for _, r := range sc.Risks {
			if r.Name != riskName {
				continue
			}
			if r.Vraisemblance > likelihood {
				likelihood = r.Vraisemblance
			}
			if r.Gravite > severity {
				severity = r.Gravite
			}
		}
	}
	return likelihood, severity
}

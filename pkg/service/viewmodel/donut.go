package viewmodel

import (
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/metrics"
)

// ComplianceDonut is the gap-analysis compliance chart: one slice per
// canonical status. An analysis without requirements yields an explicit
// no-data state instead of an empty chart.
type ComplianceDonut struct {
	NoData bool              `json:"noData"`
	Total  int               `json:"total"`
	Slices []ComplianceSlice `json:"slices"`
}

// ComplianceSlice is one status slice with its count and share
type ComplianceSlice struct {
	Status  types.ApplicationStatus `json:"status"`
	Count   int                     `json:"count"`
	Percent float64                 `json:"percent"`
}

// ProjectComplianceDonut builds the compliance donut view-model
func ProjectComplianceDonut(a *model.Analysis) ComplianceDonut {
	counts := metrics.GapComplianceCounts(a.Data.Requirements)
	total := counts.Total()
	if total == 0 {
		return ComplianceDonut{NoData: true}
	}

	byStatus := []struct {
		status types.ApplicationStatus
		count  int
	}{
		{types.ApplicationApplied, counts.Applied},
		{types.ApplicationPartiallyApplied, counts.PartiallyApplied},
		{types.ApplicationNotApplied, counts.NotApplied},
		{types.ApplicationNotApplicable, counts.NotApplicable},
	}

	donut := ComplianceDonut{
		Total:  total,
		Slices: make([]ComplianceSlice, 0, len(byStatus)),
	}
	for _, s := range byStatus {
		donut.Slices = append(donut.Slices, ComplianceSlice{
			Status:  s.status,
			Count:   s.count,
			Percent: 100 * float64(s.count) / float64(total),
		})
	}
	return donut
}

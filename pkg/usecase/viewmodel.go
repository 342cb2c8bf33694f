package usecase

import (
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/viewmodel"
)

// View-model projections over a snapshot of one analysis. Each call clones
// under the lock and projects outside it; projections are pure so repeated
// calls on an unchanged analysis return identical structures.

// MissionNetwork projects the mission/support network view-model
func (uc *UseCases) MissionNetwork(id types.AnalysisID) (viewmodel.MissionNetwork, error) {
	a, err := uc.GetAnalysis(id)
	if err != nil {
		return viewmodel.MissionNetwork{}, err
	}
	return viewmodel.ProjectMissionNetwork(a), nil
}

// ComplianceDonut projects the gap compliance donut view-model
func (uc *UseCases) ComplianceDonut(id types.AnalysisID) (viewmodel.ComplianceDonut, error) {
	a, err := uc.GetAnalysis(id)
	if err != nil {
		return viewmodel.ComplianceDonut{}, err
	}
	return viewmodel.ProjectComplianceDonut(a), nil
}

// SourceObjectiveNetwork projects the threat source/objective network
func (uc *UseCases) SourceObjectiveNetwork(id types.AnalysisID) (viewmodel.SourceObjectiveNetwork, error) {
	a, err := uc.GetAnalysis(id)
	if err != nil {
		return viewmodel.SourceObjectiveNetwork{}, err
	}
	return viewmodel.ProjectSourceObjectiveNetwork(a), nil
}

// Plan projects the treatment plan view-model
func (uc *UseCases) Plan(id types.AnalysisID) (viewmodel.Plan, error) {
	a, err := uc.GetAnalysis(id)
	if err != nil {
		return viewmodel.Plan{}, err
	}
	return viewmodel.ProjectPlan(a), nil
}

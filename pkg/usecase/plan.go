package usecase

import (
	"context"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/service/metrics"
)

// Treatment plan: the four action collections and their seeding helpers.
// Rows are upserted by their source key so the renderer can write back a
// whole row at a time.

// SetGapActions upserts the action row attached to a gap requirement
func (uc *UseCases) SetGapActions(ctx context.Context, analysisID types.AnalysisID, row *model.GapActionRow) (*model.GapActionRow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	row = row.Clone()
	row.Normalize()
	replaced := false
	for i, existing := range a.Data.GapActions {
		if existing.SourceID == row.SourceID {
			a.Data.GapActions[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		a.Data.GapActions = append(a.Data.GapActions, row)
	}

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

// SetSupportActions upserts the action row attached to a support name
func (uc *UseCases) SetSupportActions(ctx context.Context, analysisID types.AnalysisID, row *model.SupportActionRow) (*model.SupportActionRow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	row = row.Clone()
	row.Normalize()
	replaced := false
	for i, existing := range a.Data.SupportActions {
		if existing.SupportName == row.SupportName {
			a.Data.SupportActions[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		a.Data.SupportActions = append(a.Data.SupportActions, row)
	}

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

// SetStakeholderActions upserts the action row attached to a stakeholder
func (uc *UseCases) SetStakeholderActions(ctx context.Context, analysisID types.AnalysisID, row *model.StakeholderActionRow) (*model.StakeholderActionRow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	row = row.Clone()
	row.Normalize()
	replaced := false
	for i, existing := range a.Data.StakeholderActions {
		if existing.StakeholderID == row.StakeholderID {
			a.Data.StakeholderActions[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		a.Data.StakeholderActions = append(a.Data.StakeholderActions, row)
	}

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

// SetRiskActions upserts the action row attached to a named risk
func (uc *UseCases) SetRiskActions(ctx context.Context, analysisID types.AnalysisID, row *model.RiskActionRow) (*model.RiskActionRow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	row = row.Clone()
	row.Normalize()
	replaced := false
	for i, existing := range a.Data.RiskActions {
		if existing.RiskName == row.RiskName {
			a.Data.RiskActions[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		a.Data.RiskActions = append(a.Data.RiskActions, row)
	}

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

// SetRiskResiduals records the residual likelihood and severity of a named
// risk without touching its actions.
func (uc *UseCases) SetRiskResiduals(ctx context.Context, analysisID types.AnalysisID, riskName string, residualV, residualG types.Score) (*model.RiskActionRow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return nil, err
	}

	var row *model.RiskActionRow
	for _, existing := range a.Data.RiskActions {
		if existing.RiskName == riskName {
			row = existing
			break
		}
	}
	if row == nil {
		row = &model.RiskActionRow{RiskName: riskName}
		a.Data.RiskActions = append(a.Data.RiskActions, row)
	}
	row.ResidualV = residualV
	row.ResidualG = residualG
	row.Normalize()

	if err := uc.persist(ctx); err != nil {
		return nil, err
	}
	return row.Clone(), nil
}

// ImportGapActions seeds action rows from the gap analysis: one row per
// requirement that is not yet compliant. Requirements whose status reads
// as applied are excluded; rows that already exist are kept untouched.
func (uc *UseCases) ImportGapActions(ctx context.Context, analysisID types.AnalysisID) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	a, err := uc.analysis(analysisID)
	if err != nil {
		return 0, err
	}

	existing := make(map[types.RequirementID]bool, len(a.Data.GapActions))
	for _, row := range a.Data.GapActions {
		existing[row.SourceID] = true
	}

	added := 0
	for _, r := range a.Data.Requirements {
		if r.Application.IsApplied() {
			continue
		}
		if existing[r.ID] {
			continue
		}
		a.Data.GapActions = append(a.Data.GapActions, &model.GapActionRow{SourceID: r.ID})
		added++
	}
	if added == 0 {
		return 0, nil
	}

	if err := uc.persist(ctx); err != nil {
		return 0, err
	}
	return added, nil
}

// seedRiskResiduals fills missing residual ratings of risk action rows from
// the scenario rollup, and creates rows for named scenario risks that have
// none yet. Used when loading an imported document.
func seedRiskResiduals(a *model.Analysis) {
	rows := make(map[string]*model.RiskActionRow, len(a.Data.RiskActions))
	for _, row := range a.Data.RiskActions {
		rows[row.RiskName] = row
	}

	for _, s := range a.Data.Scenarios {
		for _, r := range s.Risks {
			row, ok := rows[r.Name]
			if !ok {
				row = &model.RiskActionRow{RiskName: r.Name}
				rows[r.Name] = row
				a.Data.RiskActions = append(a.Data.RiskActions, row)
			}
			if row.ResidualV == 0 || row.ResidualG == 0 {
				v, g := metrics.RiskResidualRollup(a, r.Name)
				if row.ResidualV == 0 {
					row.ResidualV = v
				}
				if row.ResidualG == 0 {
					row.ResidualG = g
				}
			}
		}
	}
}

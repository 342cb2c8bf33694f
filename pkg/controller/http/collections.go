package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// mountCollections registers the per-collection mutation routes under one
// analysis. Every collection gets the same POST/PUT/DELETE surface; the id
// in the URL wins over the one in the body on update.
func (s *Server) mountCollections(r chi.Router) {
	mountCollection(r, "/missions", s.uc.AddMission, s.uc.UpdateMission, s.uc.RemoveMission,
		func(m *model.Mission, id string) { m.ID = types.MissionID(id) },
		func(id string) types.MissionID { return types.MissionID(id) })
	mountCollection(r, "/events", s.uc.AddEvent, s.uc.UpdateEvent, s.uc.RemoveEvent,
		func(e *model.Event, id string) { e.ID = types.EventID(id) },
		func(id string) types.EventID { return types.EventID(id) })
	mountCollection(r, "/gap", s.uc.AddGapRequirement, s.uc.UpdateGapRequirement, s.uc.RemoveGapRequirement,
		func(g *model.GapRequirement, id string) { g.ID = types.RequirementID(id) },
		func(id string) types.RequirementID { return types.RequirementID(id) })
	mountCollection(r, "/srov", s.uc.AddSrovCouple, s.uc.UpdateSrovCouple, s.uc.RemoveSrovCouple,
		func(c *model.SrovCouple, id string) { c.ID = types.CoupleID(id) },
		func(id string) types.CoupleID { return types.CoupleID(id) })
	mountCollection(r, "/stakeholders", s.uc.AddStakeholder, s.uc.UpdateStakeholder, s.uc.RemoveStakeholder,
		func(p *model.Stakeholder, id string) { p.ID = types.StakeholderID(id) },
		func(id string) types.StakeholderID { return types.StakeholderID(id) })
	mountCollection(r, "/strategies", s.uc.AddStrategy, s.uc.UpdateStrategy, s.uc.RemoveStrategy,
		func(st *model.Strategy, id string) { st.ID = types.StrategyID(id) },
		func(id string) types.StrategyID { return types.StrategyID(id) })
	mountCollection(r, "/scenarios", s.uc.AddScenario, s.uc.UpdateScenario, s.uc.RemoveScenario,
		func(sc *model.OperationalScenario, id string) { sc.ID = types.ScenarioID(id) },
		func(id string) types.ScenarioID { return types.ScenarioID(id) })
	mountCollection(r, "/risks", s.uc.AddRisk, s.uc.UpdateRisk, s.uc.RemoveRisk,
		func(rk *model.Risk, id string) { rk.ID = types.RiskID(id) },
		func(id string) types.RiskID { return types.RiskID(id) })

	r.Post("/gap/import", s.importGapRequirements)
}

func mountCollection[T any, ID ~string](
	r chi.Router,
	pattern string,
	add func(context.Context, types.AnalysisID, *T) (*T, error),
	update func(context.Context, types.AnalysisID, *T) (*T, error),
	remove func(context.Context, types.AnalysisID, ID) error,
	setID func(*T, string),
	parseID func(string) ID,
) {
	r.Post(pattern, func(w http.ResponseWriter, req *http.Request) {
		var entity T
		if err := decodeJSON(req, &entity); err != nil {
			respondErr(w, req, err)
			return
		}
		created, err := add(req.Context(), analysisID(req), &entity)
		if err != nil {
			respondErr(w, req, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	})

	r.Put(pattern+"/{entityID}", func(w http.ResponseWriter, req *http.Request) {
		var entity T
		if err := decodeJSON(req, &entity); err != nil {
			respondErr(w, req, err)
			return
		}
		setID(&entity, chi.URLParam(req, "entityID"))
		updated, err := update(req.Context(), analysisID(req), &entity)
		if err != nil {
			respondErr(w, req, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	})

	r.Delete(pattern+"/{entityID}", func(w http.ResponseWriter, req *http.Request) {
		id := parseID(chi.URLParam(req, "entityID"))
		if err := remove(req.Context(), analysisID(req), id); err != nil {
			respondErr(w, req, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

// mountPlan registers the treatment plan routes under one analysis. Rows
// are upserted whole, keyed by their source reference.
func (s *Server) mountPlan(r chi.Router) {
	r.Route("/plan", func(r chi.Router) {
		r.Put("/gap", s.setGapActions)
		r.Post("/gap/import", s.importGapActions)
		r.Put("/supports", s.setSupportActions)
		r.Put("/stakeholders", s.setStakeholderActions)
		r.Put("/risks", s.setRiskActions)
		r.Put("/risks/{riskName}/residuals", s.setRiskResiduals)
	})
}

func (s *Server) setGapActions(w http.ResponseWriter, r *http.Request) {
	var row model.GapActionRow
	if err := decodeJSON(r, &row); err != nil {
		respondErr(w, r, err)
		return
	}
	saved, err := s.uc.SetGapActions(r.Context(), analysisID(r), &row)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) setSupportActions(w http.ResponseWriter, r *http.Request) {
	var row model.SupportActionRow
	if err := decodeJSON(r, &row); err != nil {
		respondErr(w, r, err)
		return
	}
	saved, err := s.uc.SetSupportActions(r.Context(), analysisID(r), &row)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) setStakeholderActions(w http.ResponseWriter, r *http.Request) {
	var row model.StakeholderActionRow
	if err := decodeJSON(r, &row); err != nil {
		respondErr(w, r, err)
		return
	}
	saved, err := s.uc.SetStakeholderActions(r.Context(), analysisID(r), &row)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) setRiskActions(w http.ResponseWriter, r *http.Request) {
	var row model.RiskActionRow
	if err := decodeJSON(r, &row); err != nil {
		respondErr(w, r, err)
		return
	}
	saved, err := s.uc.SetRiskActions(r.Context(), analysisID(r), &row)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) setRiskResiduals(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResidualV types.Score `json:"residualV"`
		ResidualG types.Score `json:"residualG"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}
	saved, err := s.uc.SetRiskResiduals(r.Context(), analysisID(r),
		chi.URLParam(r, "riskName"), req.ResidualV, req.ResidualG)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (s *Server) importGapActions(w http.ResponseWriter, r *http.Request) {
	added, err := s.uc.ImportGapActions(r.Context(), analysisID(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"added": added})
}

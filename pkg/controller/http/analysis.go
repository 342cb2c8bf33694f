package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

func analysisID(r *http.Request) types.AnalysisID {
	return types.AnalysisID(chi.URLParam(r, "analysisID"))
}

func (s *Server) listAnalyses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.ListAnalyses())
}

func (s *Server) createAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	a, err := s.uc.CreateAnalysis(r.Context(), req.Title)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, a)
}

func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.GetAnalysis(analysisID(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (s *Server) renameAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	a, err := s.uc.RenameAnalysis(r.Context(), analysisID(r), req.Title)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (s *Server) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.DeleteAnalysis(r.Context(), analysisID(r)); err != nil {
		respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) selectAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.SelectAnalysis(r.Context(), analysisID(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (s *Server) currentAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.CurrentAnalysis()
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

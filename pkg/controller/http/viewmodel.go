package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/utils/errutil"
)

func (s *Server) viewModel(w http.ResponseWriter, r *http.Request) {
	id := analysisID(r)

	var (
		body any
		err  error
	)
	switch view := chi.URLParam(r, "view"); view {
	case "network":
		body, err = s.uc.MissionNetwork(id)
	case "compliance":
		body, err = s.uc.ComplianceDonut(id)
	case "sources":
		body, err = s.uc.SourceObjectiveNetwork(id)
	case "plan":
		body, err = s.uc.Plan(id)
	default:
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("unknown view model", goerr.V("view", view)), http.StatusNotFound)
		return
	}
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, body)
}

func (s *Server) labelsHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.labels)
}

func (s *Server) catalogue(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.uc.Catalogue())
}

func (s *Server) loadCatalogue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	count, err := s.uc.LoadCatalogue(r.Context(), req.URL)
	if err != nil {
		// fail-soft: the previous catalogue is kept, the notice is the body
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadGateway)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"techniques": count})
}

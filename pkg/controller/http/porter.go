package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/service/porter"
)

const maxImportSize = 32 << 20 // 32MiB

func (s *Server) exportAnalysis(w http.ResponseWriter, r *http.Request) {
	data, filename, err := s.uc.ExportAnalysis(analysisID(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) exportAll(w http.ResponseWriter, r *http.Request) {
	data, err := s.uc.ExportAll()
	if err != nil {
		respondErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="analyses.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) importDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		respondErr(w, r, goerr.Wrap(err, "failed to read import document"))
		return
	}

	imported, err := s.uc.ImportDocument(r.Context(), data)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, imported)
}

func (s *Server) importGapRequirements(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		respondErr(w, r, goerr.Wrap(err, "failed to read gap import document"))
		return
	}

	rows, err := porter.ImportGapRequirements(data)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	added, err := s.uc.ImportGapRequirements(r.Context(), analysisID(r), rows)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"added": added})
}

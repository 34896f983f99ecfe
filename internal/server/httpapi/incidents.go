package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

func (s *Server) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	logs, err := s.incidents.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleGetIncident(w http.ResponseWriter, r *http.Request) {
	log, err := s.incidents.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var draft models.IncidentLogDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	log, err := s.incidents.Create(r.Context(), draft)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (s *Server) handleUpdateIncident(w http.ResponseWriter, r *http.Request) {
	var draft models.IncidentLogDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	log, err := s.incidents.Update(r.Context(), mux.Vars(r)["id"], draft)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (s *Server) handleDeleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := s.incidents.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

func (s *Server) handleListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := s.actors.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actors)
}

func (s *Server) handleGetActor(w http.ResponseWriter, r *http.Request) {
	actor, err := s.actors.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actor)
}

func (s *Server) handleCreateActor(w http.ResponseWriter, r *http.Request) {
	var draft models.ThreatActorDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	actor, err := s.actors.Create(r.Context(), draft)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, actor)
}

func (s *Server) handleUpdateActor(w http.ResponseWriter, r *http.Request) {
	var draft models.ThreatActorDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	actor, err := s.actors.Update(r.Context(), mux.Vars(r)["id"], draft)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actor)
}

func (s *Server) handleDeleteActor(w http.ResponseWriter, r *http.Request) {
	if err := s.actors.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

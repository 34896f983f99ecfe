// Package httpapi exposes the REST surface of the backend:
//
//	POST /api/auth/login           authenticate, returns {user, token}
//	POST /api/auth/register        create account, returns {user, token}
//	GET  /api/auth/me              resolve the bearer token to a user
//	GET/POST /api/threatactors     list / create
//	GET/PUT/DELETE /api/threatactors/{id}
//	GET/POST /api/incidentlogs     list / create
//	GET/PUT/DELETE /api/incidentlogs/{id}
//
// Every entity route requires a bearer token. Errors use the
// {"error": "..."} envelope.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/ctibook/internal/logging"
	"github.com/dmitrijs2005/ctibook/internal/server/services"
)

// Server holds the handler dependencies and builds the router.
type Server struct {
	logger    logging.Logger
	users     *services.UserService
	actors    *services.ActorService
	incidents *services.IncidentService
	secretKey []byte
}

// NewServer wires handlers to their services.
func NewServer(logger logging.Logger, users *services.UserService, actors *services.ActorService,
	incidents *services.IncidentService, secretKey []byte) *Server {
	return &Server{
		logger:    logger,
		users:     users,
		actors:    actors,
		incidents: incidents,
		secretKey: secretKey,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", s.requireAuth(s.handleMe)).Methods(http.MethodGet)

	r.HandleFunc("/api/threatactors", s.requireAuth(s.handleListActors)).Methods(http.MethodGet)
	r.HandleFunc("/api/threatactors", s.requireAuth(s.handleCreateActor)).Methods(http.MethodPost)
	r.HandleFunc("/api/threatactors/{id}", s.requireAuth(s.handleGetActor)).Methods(http.MethodGet)
	r.HandleFunc("/api/threatactors/{id}", s.requireAuth(s.handleUpdateActor)).Methods(http.MethodPut)
	r.HandleFunc("/api/threatactors/{id}", s.requireAuth(s.handleDeleteActor)).Methods(http.MethodDelete)

	r.HandleFunc("/api/incidentlogs", s.requireAuth(s.handleListIncidents)).Methods(http.MethodGet)
	r.HandleFunc("/api/incidentlogs", s.requireAuth(s.handleCreateIncident)).Methods(http.MethodPost)
	r.HandleFunc("/api/incidentlogs/{id}", s.requireAuth(s.handleGetIncident)).Methods(http.MethodGet)
	r.HandleFunc("/api/incidentlogs/{id}", s.requireAuth(s.handleUpdateIncident)).Methods(http.MethodPut)
	r.HandleFunc("/api/incidentlogs/{id}", s.requireAuth(s.handleDeleteIncident)).Methods(http.MethodDelete)

	return r
}

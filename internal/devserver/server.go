// Package devserver is a small local stand-in for the remote asset service,
// exposing exactly the five paths of the external contract. It exists so the
// client can be developed and tested without the real backend; it is not
// that backend.
package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/logging"
)

type Server struct {
	store *Store
	log   logging.Logger
}

func NewServer(store *Store, log logging.Logger) *Server {
	return &Server{store: store, log: log.With("component", "devserver")}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/inventarios/", s.handleListAssets)
	r.Post("/api/cadastro/", s.handleRegister)
	r.Post("/api/login/", s.handleLogin)
	r.Put("/api/editar_sala", s.handleEditRoom)
	r.Delete("/api/delete_sala", s.handleDeleteRoom)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.store.ListAssets(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "listing assets", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	User      string `json:"user"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Group     string `json:"group"`
	Room      string `json:"sala"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed request body"})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "first_name, last_name, email and password are required"})
		return
	}
	if req.Group != models.RoleCoordinator && req.Group != models.RoleProfessor {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "group must be Coordenador or Professor"})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
		return
	}

	err = s.store.CreateUser(r.Context(), User{
		User:         req.User,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Group:        req.Group,
		Room:         req.Room,
	})
	switch {
	case errors.Is(err, ErrDuplicate):
		writeJSON(w, http.StatusConflict, map[string]string{"detail": "user or e-mail already registered"})
	case err != nil:
		s.log.Error(r.Context(), "creating user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "registered"})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "malformed request body"})
		return
	}

	u, err := s.store.GetUser(r.Context(), req.Username)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}
	if err != nil {
		s.log.Error(r.Context(), "loading user", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
		return
	}
	if checkPassword(u.PasswordHash, req.Password) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"user":       u.User,
		"user_type":  u.Group,
		"first_name": u.FirstName,
	})
}

func (s *Server) handleEditRoom(w http.ResponseWriter, r *http.Request) {
	var room models.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil || room.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed room record"})
		return
	}
	if err := s.store.UpsertRoom(r.Context(), room); err != nil {
		s.log.Error(r.Context(), "upserting room", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Room string `json:"sala"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Room == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "sala is required"})
		return
	}

	err := s.store.DeleteRoom(r.Context(), req.Room)
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "sala not found"})
	case err != nil:
		s.log.Error(r.Context(), "deleting room", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
	}
}

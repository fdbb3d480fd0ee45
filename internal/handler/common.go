package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/middleware"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleError logs err and maps it to a status code.
func handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg, "error", err, "requestID", chmw.GetReqID(r.Context()))

	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPasswordsDoNotMatch):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, domain.ErrNotOrganisor):
		respondWithError(w, http.StatusForbidden, "Organisor role required")
	case errors.Is(err, domain.ErrUsernameTaken):
		respondWithError(w, http.StatusConflict, "Username already taken")
	case domain.IsNotFound(err):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// actorFrom returns the request actor. Routes behind RequireLogin always
// have one.
func actorFrom(r *http.Request) model.Actor {
	if actor := middleware.ActorFromContext(r.Context()); actor != nil {
		return *actor
	}
	return model.Actor{}
}

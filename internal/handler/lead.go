// internal/handler/lead.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/crmaster/internal/service"
	"github.com/google/uuid"
)

type LeadHandler struct {
	leadService *service.LeadService
}

func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	listing, err := h.leadService.List(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, "Failed to list leads", err)
		return
	}
	respondWithJSON(w, http.StatusOK, listing)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	lead, err := h.leadService.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		handleError(w, r, "Failed to get lead", err)
		return
	}
	respondWithJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.LeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.leadService.Create(r.Context(), actorFrom(r), input)
	if err != nil {
		handleError(w, r, "Failed to create lead", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input service.LeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.leadService.Update(r.Context(), actorFrom(r), id, input)
	if err != nil {
		handleError(w, r, "Failed to update lead", err)
		return
	}
	respondWithJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.leadService.Delete(r.Context(), actorFrom(r), id); err != nil {
		handleError(w, r, "Failed to delete lead", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type AssignAgentRequest struct {
	AgentID uuid.UUID `json:"agent_id"`
}

// Assign sets the lead's agent. A failed notification is reported as a
// server error even though the assignment was saved.
func (h *LeadHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req AssignAgentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.leadService.AssignAgent(r.Context(), actorFrom(r), id, req.AgentID)
	if err != nil {
		handleError(w, r, "Failed to assign agent", err)
		return
	}
	respondWithJSON(w, http.StatusOK, lead)
}

type UpdateCategoryRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
}

func (h *LeadHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.leadService.UpdateCategory(r.Context(), actorFrom(r), id, req.CategoryID)
	if err != nil {
		handleError(w, r, "Failed to update lead category", err)
		return
	}
	respondWithJSON(w, http.StatusOK, lead)
}

// internal/handler/agent.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/crmaster/internal/service"
)

type AgentHandler struct {
	agentService *service.AgentService
}

func NewAgentHandler(agentService *service.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agentService.List(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, "Failed to list agents", err)
		return
	}
	respondWithJSON(w, http.StatusOK, agents)
}

func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	agent, err := h.agentService.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		handleError(w, r, "Failed to get agent", err)
		return
	}
	respondWithJSON(w, http.StatusOK, agent)
}

// Create provisions the agent. When the invitation cannot be sent the agent
// still exists and the response is a server error.
func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.AgentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	agent, err := h.agentService.Create(r.Context(), actorFrom(r), input)
	if err != nil {
		handleError(w, r, "Failed to create agent", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input service.AgentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	agent, err := h.agentService.Update(r.Context(), actorFrom(r), id, input)
	if err != nil {
		handleError(w, r, "Failed to update agent", err)
		return
	}
	respondWithJSON(w, http.StatusOK, agent)
}

func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.agentService.Delete(r.Context(), actorFrom(r), id); err != nil {
		handleError(w, r, "Failed to delete agent", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

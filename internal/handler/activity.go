package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/dangerclosesec/crmaster/internal/service"
)

// ActivityHandler serves the organisation's activity log
type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type ActivityResponse struct {
	Logs  []model.ActivityLog `json:"logs"`
	Total int64               `json:"total"`
}

// List handles requests to retrieve activity with filtering
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	params := repository.ActivityQueryParams{}
	q := r.URL.Query()

	params.Action = q.Get("action")
	params.EntityType = q.Get("entity_type")
	params.EntityID = q.Get("entity_id")

	if startTimeStr := q.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := q.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.activityService.List(r.Context(), actorFrom(r), params)
	if err != nil {
		handleError(w, r, "Failed to retrieve activity", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ActivityResponse{Logs: logs, Total: total})
}

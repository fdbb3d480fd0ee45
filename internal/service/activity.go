package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityService records and lists the activity log of an organisation.
type ActivityService struct {
	repo repository.ActivityLogRepositoryIface
}

func NewActivityService(repo repository.ActivityLogRepositoryIface) *ActivityService {
	return &ActivityService{repo: repo}
}

// Record appends an entry for an action taken by actor. A failed write is
// logged and swallowed so it never undoes the action it describes.
func (s *ActivityService) Record(ctx context.Context, actor model.Actor, action, entityType, entityID string, details map[string]interface{}) {
	if s == nil {
		return
	}

	entry := &model.ActivityLog{
		OrganisationID: actor.OrganisationID,
		ActorUserID:    actor.UserID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		Details:        model.JSONMap(details),
		RequestID:      middleware.GetReqID(ctx),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		slog.WarnContext(ctx, "Failed to record activity", "error", err, "action", action, "entityID", entityID)
	}
}

// List returns the actor's organisation activity, newest first.
func (s *ActivityService) List(ctx context.Context, actor model.Actor, params repository.ActivityQueryParams) ([]model.ActivityLog, int64, error) {
	if !actor.IsOrganisor() {
		return nil, 0, domain.ErrNotOrganisor
	}

	params.OrganisationID = actor.OrganisationID
	switch {
	case params.Limit <= 0:
		params.Limit = defaultActivityLimit
	case params.Limit > maxActivityLimit:
		params.Limit = maxActivityLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	logs, total, err := s.repo.Query(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("querying activity: %w", err)
	}
	return logs, total, nil
}

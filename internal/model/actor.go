// internal/model/actor.go
package model

import "github.com/google/uuid"

type Role string

const (
	RoleOrganisor Role = "organisor"
	RoleAgent     Role = "agent"
)

// Actor is the authenticated user together with the organisation scope they
// act in. For agents AgentID is set as well.
type Actor struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	OrganisationID uuid.UUID `json:"organisation_id"`
	AgentID        uuid.UUID `json:"agent_id,omitempty"`
}

func (a *Actor) IsOrganisor() bool {
	return a != nil && a.Role == RoleOrganisor
}

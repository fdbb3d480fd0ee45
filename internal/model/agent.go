// internal/model/agent.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User         User         `gorm:"foreignKey:UserID" json:"user"`
	Organisation Organisation `gorm:"foreignKey:OrganisationID" json:"-"`
}

// NotificationAddress is the address assignment mails go to, or "" when the
// agent's user has none.
func (a *Agent) NotificationAddress() string {
	if a == nil {
		return ""
	}
	return a.User.Email
}

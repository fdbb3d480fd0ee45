// internal/model/lead.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName      string     `gorm:"type:text;not null" json:"first_name"`
	LastName       string     `gorm:"type:text;not null" json:"last_name"`
	Age            int        `gorm:"not null;default:0" json:"age"`
	Email          string     `gorm:"type:text;not null;default:''" json:"email"`
	PhoneNumber    string     `gorm:"type:text;not null;default:''" json:"phone_number"`
	Description    string     `gorm:"type:text;not null;default:''" json:"description"`
	AgentID        *uuid.UUID `gorm:"type:uuid;index" json:"agent_id"`
	CategoryID     *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	OrganisationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organisation_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Agent    *Agent    `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// IsAssigned reports whether an agent has been set.
func (l *Lead) IsAssigned() bool {
	return l.AgentID != nil
}

// IsFresh reports whether the lead has not been categorised yet.
func (l *Lead) IsFresh() bool {
	return l.CategoryID == nil
}

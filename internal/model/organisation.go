// internal/model/organisation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organisation is the tenant owned by a single organisor user.
type Organisation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Name      string    `gorm:"type:text;not null;default:''" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

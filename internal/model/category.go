// internal/model/category.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a pipeline stage such as "Converted" or "Unconverted".
type Category struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	OrganisationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organisation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

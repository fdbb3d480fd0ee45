// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:text;not null;default:''" json:"email"`
	FirstName    string    `gorm:"type:text;not null;default:''" json:"first_name"`
	LastName     string    `gorm:"type:text;not null;default:''" json:"last_name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	IsOrganisor  bool      `gorm:"not null" json:"is_organisor"`
	IsAgent      bool      `gorm:"not null" json:"is_agent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role reports the role the user acts under. Organisor wins if both flags
// are set, matching how every view checks is_organisor first.
func (u *User) Role() Role {
	if u.IsOrganisor {
		return RoleOrganisor
	}
	return RoleAgent
}

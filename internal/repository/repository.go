// internal/repository/repository.go
package repository

import (
	"github.com/dangerclosesec/crmaster/internal/model"
	"gorm.io/gorm"
)

// Scope is a gorm scope function, applied with db.Scopes.
type Scope func(*gorm.DB) *gorm.DB

// LeadScope restricts leads to what the actor may see. Organisors see every
// lead of their organisation. Agents see only leads assigned to them; the
// organisation predicate is not applied for agents, ownership of the
// assignment alone decides.
func LeadScope(actor model.Actor) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if actor.IsOrganisor() {
			return db.Where("leads.organisation_id = ?", actor.OrganisationID)
		}
		return db.
			Joins("JOIN agents ON agents.id = leads.agent_id").
			Where("agents.user_id = ?", actor.UserID)
	}
}

// OrganisationLeadScope restricts leads to the actor's organisation
// regardless of role.
func OrganisationLeadScope(actor model.Actor) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("leads.organisation_id = ?", actor.OrganisationID)
	}
}

func CategoryScope(actor model.Actor) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("categories.organisation_id = ?", actor.OrganisationID)
	}
}

func AgentScope(actor model.Actor) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("agents.organisation_id = ?", actor.OrganisationID)
	}
}

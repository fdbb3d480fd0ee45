package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ActivityLog records a mutating action performed inside an organisation.
type ActivityLog struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;not null;index"`
	ActorUserID    uuid.UUID `json:"actor_user_id" gorm:"type:uuid;not null"`
	Action         string    `json:"action" gorm:"type:text;not null"`
	EntityType     string    `json:"entity_type" gorm:"type:text;not null"`
	EntityID       string    `json:"entity_id" gorm:"type:text;not null"`
	Details        JSONMap   `json:"details" gorm:"type:jsonb"`
	RequestID      string    `json:"request_id"`
	CreatedAt      time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Activity actions
const (
	ActionLeadCreated     = "lead.created"
	ActionLeadUpdated     = "lead.updated"
	ActionLeadDeleted     = "lead.deleted"
	ActionLeadAssigned    = "lead.assigned"
	ActionLeadCategorised = "lead.categorised"
	ActionAgentCreated    = "agent.created"
	ActionAgentUpdated    = "agent.updated"
	ActionAgentDeleted    = "agent.deleted"
	ActionCategoryCreated = "category.created"
	ActionCategoryUpdated = "category.updated"
	ActionCategoryDeleted = "category.deleted"
)

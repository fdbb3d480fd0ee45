// internal/repository/agent.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentRepositoryIface interface {
	Create(ctx context.Context, agent *model.Agent) error
	UpdateUser(ctx context.Context, agent *model.Agent) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Agent, error)
	FindScoped(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Agent, error)
	List(ctx context.Context, actor model.Actor) ([]*model.Agent, error)
}

type AgentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

func (r *AgentRepository) Create(ctx context.Context, agent *model.Agent) error {
	if err := r.db.WithContext(ctx).Omit("User", "Organisation").Create(agent).Error; err != nil {
		return fmt.Errorf("creating agent: %w", err)
	}
	return nil
}

// UpdateUser persists the editable fields of the agent's user.
func (r *AgentRepository) UpdateUser(ctx context.Context, agent *model.Agent) error {
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", agent.UserID).
		Updates(map[string]interface{}{
			"username":   agent.User.Username,
			"email":      agent.User.Email,
			"first_name": agent.User.FirstName,
			"last_name":  agent.User.LastName,
		}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("updating agent user: %w", err)
	}
	return nil
}

// Delete removes the agent; its leads become unassigned.
func (r *AgentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lead{}).
			Where("agent_id = ?", id).
			Update("agent_id", nil).Error; err != nil {
			return fmt.Errorf("unassigning leads: %w", err)
		}

		result := tx.Delete(&model.Agent{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting agent: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAgentNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *AgentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Agent, error) {
	var agent model.Agent
	if err := r.db.WithContext(ctx).First(&agent, "agents.user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("finding agent: %w", err)
	}
	return &agent, nil
}

func (r *AgentRepository) FindScoped(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Agent, error) {
	var agent model.Agent
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(AgentScope(actor)).
		Where("agents.id = ?", id).
		First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("finding agent: %w", err)
	}
	return &agent, nil
}

func (r *AgentRepository) List(ctx context.Context, actor model.Actor) ([]*model.Agent, error) {
	var agents []*model.Agent
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(AgentScope(actor)).
		Order("agents.created_at").
		Find(&agents).Error
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	return agents, nil
}

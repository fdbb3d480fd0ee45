// internal/repository/lead.go
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

type LeadRepositoryIface interface {
	Create(ctx context.Context, lead *model.Lead) error
	Update(ctx context.Context, lead *model.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID loads a lead by primary key without any organisation check.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	FindScoped(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, actor model.Actor) ([]*model.Lead, error)
	ListUnassigned(ctx context.Context, actor model.Actor) ([]*model.Lead, error)
	CountFresh(ctx context.Context, actor model.Actor) (int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*model.Lead, error)
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Agent.User").Preload("Category")
}

func (r *LeadRepository) Create(ctx context.Context, lead *model.Lead) error {
	if err := r.db.WithContext(ctx).Omit("Agent", "Category").Create(lead).Error; err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *model.Lead) error {
	if err := r.db.WithContext(ctx).Omit("Agent", "Category").Save(lead).Error; err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Lead{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := r.withRelations(ctx).First(&lead, "leads.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("finding lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) FindScoped(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	err := r.withRelations(ctx).
		Scopes(LeadScope(actor)).
		Where("leads.id = ?", id).
		First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("finding lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, actor model.Actor) ([]*model.Lead, error) {
	var leads []*model.Lead
	err := r.withRelations(ctx).
		Scopes(LeadScope(actor)).
		Order("leads.created_at").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}

// ListUnassigned returns the organisation's leads that have no agent.
func (r *LeadRepository) ListUnassigned(ctx context.Context, actor model.Actor) ([]*model.Lead, error) {
	var leads []*model.Lead
	err := r.withRelations(ctx).
		Scopes(OrganisationLeadScope(actor)).
		Where("leads.agent_id IS NULL").
		Order("leads.created_at").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("listing unassigned leads: %w", err)
	}
	return leads, nil
}

// CountFresh counts the organisation's leads that have no category.
func (r *LeadRepository) CountFresh(ctx context.Context, actor model.Actor) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Lead{}).
		Scopes(OrganisationLeadScope(actor)).
		Where("leads.category_id IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting fresh leads: %w", err)
	}
	return count, nil
}

func (r *LeadRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*model.Lead, error) {
	var leads []*model.Lead
	err := r.withRelations(ctx).
		Where("leads.category_id = ?", categoryID).
		Order("leads.created_at").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("listing category leads: %w", err)
	}
	return leads, nil
}

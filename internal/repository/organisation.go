// internal/repository/organisation.go
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

type OrganisationRepositoryIface interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Organisation, error)
}

type OrganisationRepository struct {
	db *gorm.DB
}

func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// FindByUserID returns the organisation profile owned by an organisor.
func (r *OrganisationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Organisation, error) {
	var org model.Organisation
	if err := r.db.WithContext(ctx).First(&org, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("finding organisation: %w", err)
	}
	return &org, nil
}

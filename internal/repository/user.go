// internal/repository/user.go
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

// Inserts report a unique violation on username as domain.ErrUsernameTaken.
// The gorm connection must be opened with TranslateError.
type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	CreateWithOrganisation(ctx context.Context, user *model.User, org *model.Organisation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

// CreateWithOrganisation creates an organisor and their organisation
// profile in a single transaction.
func (r *UserRepository) CreateWithOrganisation(ctx context.Context, user *model.User, org *model.Organisation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrUsernameTaken
			}
			return fmt.Errorf("creating user: %w", err)
		}

		org.UserID = user.ID
		if err := tx.Omit("User").Create(org).Error; err != nil {
			return fmt.Errorf("creating organisation: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

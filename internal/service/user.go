// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	orgRepo        repository.OrganisationRepositoryIface
	agentRepo      repository.AgentRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
}

func NewUserService(
	repo repository.UserRepositoryIface,
	orgRepo repository.OrganisationRepositoryIface,
	agentRepo repository.AgentRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *UserService {
	return &UserService{
		repo:           repo,
		orgRepo:        orgRepo,
		agentRepo:      agentRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
	}
}

type RegisterInput struct {
	Username        string `json:"username" validate:"required,max=150"`
	Email           string `json:"email" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// Register signs up an organisor and creates their organisation profile.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordsDoNotMatch
	}

	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		IsOrganisor:  true,
	}
	org := &model.Organisation{Name: input.Username}

	if err := s.repo.CreateWithOrganisation(ctx, user, org); err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return user, nil
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// ResolveActor loads the user and the organisation scope they act in.
func (s *UserService) ResolveActor(ctx context.Context, userID uuid.UUID) (*model.Actor, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	actor := &model.Actor{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role(),
	}

	if actor.Role == model.RoleOrganisor {
		org, err := s.orgRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, domain.ErrOrganisationNotFound) {
				return nil, domain.ErrProfileNotFound
			}
			return nil, err
		}
		actor.OrganisationID = org.ID
		return actor, nil
	}

	agent, err := s.agentRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	actor.OrganisationID = agent.OrganisationID
	actor.AgentID = agent.ID
	return actor, nil
}

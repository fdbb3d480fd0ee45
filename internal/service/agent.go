// internal/service/agent.go
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

// AgentPlaceholderPassword is the password every provisioned agent gets.
// It is the literal text of an expression, not a random number.
// TODO: generate a per-agent secret once product confirms nobody logs in
// with the placeholder.
const AgentPlaceholderPassword = "random.randint(1,10000000)"

type AgentService struct {
	users          repository.UserRepositoryIface
	agents         repository.AgentRepositoryIface
	passwordHasher *auth.PasswordHasher
	notifier       Notifier
	activity       *ActivityService
}

func NewAgentService(
	users repository.UserRepositoryIface,
	agents repository.AgentRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	notifier Notifier,
	activity *ActivityService,
) *AgentService {
	return &AgentService{
		users:          users,
		agents:         agents,
		passwordHasher: passwordHasher,
		notifier:       notifier,
		activity:       activity,
	}
}

type AgentInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

func (s *AgentService) List(ctx context.Context, actor model.Actor) ([]*model.Agent, error) {
	return s.agents.List(ctx, actor)
}

func (s *AgentService) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Agent, error) {
	return s.agents.FindScoped(ctx, actor, id)
}

// Create provisions an agent user in the actor's organisation and mails
// them an invitation. The user and agent rows are written before the mail
// goes out and stay in place if sending fails.
func (s *AgentService) Create(ctx context.Context, actor model.Actor, input AgentInput) (*model.Agent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, input.Username, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(AgentPlaceholderPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		IsAgent:      true,
		IsOrganisor:  false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating agent user: %w", err)
	}

	agent := &model.Agent{
		UserID:         user.ID,
		OrganisationID: actor.OrganisationID,
		User:           *user,
	}
	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}

	s.activity.Record(ctx, actor, model.ActionAgentCreated, "agent", agent.ID.String(), map[string]interface{}{
		"username": user.Username,
	})

	if err := s.notifier.AgentInvited(ctx, user.Email); err != nil {
		return agent, fmt.Errorf("sending agent invite: %w", err)
	}

	return agent, nil
}

func (s *AgentService) Update(ctx context.Context, actor model.Actor, id uuid.UUID, input AgentInput) (*model.Agent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	agent, err := s.agents.FindScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Username != agent.User.Username {
		if err := s.ensureUsernameFree(ctx, input.Username, agent.UserID); err != nil {
			return nil, err
		}
	}

	agent.User.Username = input.Username
	agent.User.Email = input.Email
	agent.User.FirstName = input.FirstName
	agent.User.LastName = input.LastName

	if err := s.agents.UpdateUser(ctx, agent); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, model.ActionAgentUpdated, "agent", agent.ID.String(), nil)
	return agent, nil
}

func (s *AgentService) Delete(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	agent, err := s.agents.FindScoped(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.agents.Delete(ctx, agent.ID); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, model.ActionAgentDeleted, "agent", agent.ID.String(), nil)
	return nil
}

func (s *AgentService) ensureUsernameFree(ctx context.Context, username string, owner uuid.UUID) error {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != owner {
		return domain.ErrUsernameTaken
	}
	return nil
}

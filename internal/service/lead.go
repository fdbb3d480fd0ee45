// internal/service/lead.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/google/uuid"
)

type LeadService struct {
	leads      repository.LeadRepositoryIface
	agents     repository.AgentRepositoryIface
	categories repository.CategoryRepositoryIface
	notifier   Notifier
	activity   *ActivityService
}

func NewLeadService(
	leads repository.LeadRepositoryIface,
	agents repository.AgentRepositoryIface,
	categories repository.CategoryRepositoryIface,
	notifier Notifier,
	activity *ActivityService,
) *LeadService {
	return &LeadService{
		leads:      leads,
		agents:     agents,
		categories: categories,
		notifier:   notifier,
		activity:   activity,
	}
}

type LeadInput struct {
	FirstName   string     `json:"first_name" validate:"required,max=20"`
	LastName    string     `json:"last_name" validate:"required,max=20"`
	Age         int        `json:"age" validate:"gte=0,lte=150"`
	Email       string     `json:"email" validate:"omitempty,email"`
	PhoneNumber string     `json:"phone_number" validate:"omitempty,max=20"`
	Description string     `json:"description"`
	AgentID     *uuid.UUID `json:"agent_id"`
}

// LeadListing is the lead list as seen by one actor. Unassigned and
// FreshCount are only filled in for organisors.
type LeadListing struct {
	Leads      []*model.Lead `json:"leads"`
	Unassigned []*model.Lead `json:"unassigned_leads,omitempty"`
	FreshCount *int64        `json:"fresh_lead_count,omitempty"`
}

func (s *LeadService) List(ctx context.Context, actor model.Actor) (*LeadListing, error) {
	leads, err := s.leads.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	listing := &LeadListing{Leads: leads}
	if !actor.IsOrganisor() {
		return listing, nil
	}

	unassigned, err := s.leads.ListUnassigned(ctx, actor)
	if err != nil {
		return nil, err
	}

	fresh, err := s.leads.CountFresh(ctx, actor)
	if err != nil {
		return nil, err
	}

	listing.Unassigned = unassigned
	listing.FreshCount = &fresh
	return listing, nil
}

func (s *LeadService) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Lead, error) {
	return s.leads.FindScoped(ctx, actor, id)
}

// Create adds a lead to the actor's organisation. When an agent is picked
// and has an email address they are notified.
func (s *LeadService) Create(ctx context.Context, actor model.Actor, input LeadInput) (*model.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lead := &model.Lead{OrganisationID: actor.OrganisationID}
	applyLeadInput(lead, input)

	if input.AgentID != nil {
		agent, err := s.agents.FindScoped(ctx, actor, *input.AgentID)
		if err != nil {
			return nil, invalidReference(err)
		}
		lead.AgentID = &agent.ID
		lead.Agent = agent
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, model.ActionLeadCreated, "lead", lead.ID.String(), map[string]interface{}{
		"name": lead.FirstName + " " + lead.LastName,
	})

	if addr := lead.Agent.NotificationAddress(); addr != "" {
		if err := s.notifier.LeadAssigned(ctx, addr); err != nil {
			return lead, fmt.Errorf("notifying agent: %w", err)
		}
	}

	return lead, nil
}

func (s *LeadService) Update(ctx context.Context, actor model.Actor, id uuid.UUID, input LeadInput) (*model.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lead, err := s.leads.FindScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	applyLeadInput(lead, input)

	lead.AgentID, lead.Agent = nil, nil
	if input.AgentID != nil {
		agent, err := s.agents.FindScoped(ctx, actor, *input.AgentID)
		if err != nil {
			return nil, invalidReference(err)
		}
		lead.AgentID = &agent.ID
		lead.Agent = agent
	}

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, model.ActionLeadUpdated, "lead", lead.ID.String(), nil)
	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	lead, err := s.leads.FindScoped(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.leads.Delete(ctx, lead.ID); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, model.ActionLeadDeleted, "lead", lead.ID.String(), nil)
	return nil
}

// AssignAgent sets the lead's agent and notifies the agent by mail when
// they have an address.
//
// The lead is looked up by primary key alone, so an organisor can reach a
// lead of another organisation if they know its id. The agent must belong
// to the actor's organisation.
func (s *LeadService) AssignAgent(ctx context.Context, actor model.Actor, leadID, agentID uuid.UUID) (*model.Lead, error) {
	agent, err := s.agents.FindScoped(ctx, actor, agentID)
	if err != nil {
		return nil, invalidReference(err)
	}

	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.AgentID = &agent.ID
	lead.Agent = agent
	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, model.ActionLeadAssigned, "lead", lead.ID.String(), map[string]interface{}{
		"agent_id": agent.ID.String(),
	})

	if addr := agent.NotificationAddress(); addr != "" {
		if err := s.notifier.LeadAssigned(ctx, addr); err != nil {
			return lead, fmt.Errorf("notifying agent: %w", err)
		}
	}

	return lead, nil
}

// UpdateCategory moves a lead between pipeline stages. A nil categoryID
// makes the lead fresh again.
func (s *LeadService) UpdateCategory(ctx context.Context, actor model.Actor, leadID uuid.UUID, categoryID *uuid.UUID) (*model.Lead, error) {
	lead, err := s.leads.FindScoped(ctx, actor, leadID)
	if err != nil {
		return nil, err
	}

	lead.CategoryID, lead.Category = nil, nil
	if categoryID != nil {
		category, err := s.categories.FindScoped(ctx, actor, *categoryID)
		if err != nil {
			return nil, invalidReference(err)
		}
		lead.CategoryID = &category.ID
		lead.Category = category
	}

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	details := map[string]interface{}{"category_id": nil}
	if lead.CategoryID != nil {
		details["category_id"] = lead.CategoryID.String()
	}
	s.activity.Record(ctx, actor, model.ActionLeadCategorised, "lead", lead.ID.String(), details)

	return lead, nil
}

func applyLeadInput(lead *model.Lead, input LeadInput) {
	lead.FirstName = input.FirstName
	lead.LastName = input.LastName
	lead.Age = input.Age
	lead.Email = input.Email
	lead.PhoneNumber = input.PhoneNumber
	lead.Description = input.Description
}

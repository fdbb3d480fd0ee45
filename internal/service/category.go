// internal/service/category.go
package service

import (
	"context"

	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/google/uuid"
)

type CategoryService struct {
	categories repository.CategoryRepositoryIface
	leads      repository.LeadRepositoryIface
	activity   *ActivityService
}

func NewCategoryService(
	categories repository.CategoryRepositoryIface,
	leads repository.LeadRepositoryIface,
	activity *ActivityService,
) *CategoryService {
	return &CategoryService{
		categories: categories,
		leads:      leads,
		activity:   activity,
	}
}

type CategoryInput struct {
	Name string `json:"name" validate:"required,max=30"`
}

// CategoryListing carries the organisation's categories and the number of
// its leads that have no category yet.
type CategoryListing struct {
	Categories []*model.Category `json:"categories"`
	FreshCount int64             `json:"fresh_lead_count"`
}

type CategoryDetail struct {
	Category *model.Category `json:"category"`
	Leads    []*model.Lead   `json:"leads"`
}

func (s *CategoryService) List(ctx context.Context, actor model.Actor) (*CategoryListing, error) {
	categories, err := s.categories.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	fresh, err := s.leads.CountFresh(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &CategoryListing{Categories: categories, FreshCount: fresh}, nil
}

// Get returns the category with every lead in it. The leads are not
// narrowed to the agent's own assignments.
func (s *CategoryService) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (*CategoryDetail, error) {
	category, err := s.categories.FindScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	leads, err := s.leads.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	return &CategoryDetail{Category: category, Leads: leads}, nil
}

func (s *CategoryService) Create(ctx context.Context, actor model.Actor, input CategoryInput) (*model.Category, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	category := &model.Category{
		Name:           input.Name,
		OrganisationID: actor.OrganisationID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, model.ActionCategoryCreated, "category", category.ID.String(), map[string]interface{}{
		"name": category.Name,
	})
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, actor model.Actor, id uuid.UUID, input CategoryInput) (*model.Category, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	category, err := s.categories.FindScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, model.ActionCategoryUpdated, "category", category.ID.String(), map[string]interface{}{
		"name": category.Name,
	})
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	category, err := s.categories.FindScoped(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, category.ID); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, model.ActionCategoryDeleted, "category", category.ID.String(), nil)
	return nil
}

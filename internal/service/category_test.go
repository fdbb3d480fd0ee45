package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/mocks"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	categories := []*model.Category{
		{ID: uuid.New(), Name: "Contacted", OrganisationID: orgID},
		{ID: uuid.New(), Name: "Converted", OrganisationID: orgID},
	}

	for _, actor := range []model.Actor{organisor(orgID), agentActor(orgID)} {
		t.Run(string(actor.Role), func(t *testing.T) {
			categoryRepo := mocks.NewMockCategoryRepositoryIface(ctrl)
			leadRepo := mocks.NewMockLeadRepositoryIface(ctrl)

			categoryRepo.EXPECT().List(gomock.Any(), actor).Return(categories, nil)
			leadRepo.EXPECT().CountFresh(gomock.Any(), actor).Return(int64(2), nil)

			svc := service.NewCategoryService(categoryRepo, leadRepo, nil)
			listing, err := svc.List(context.Background(), actor)
			require.NoError(t, err)
			assert.Len(t, listing.Categories, 2)
			assert.Equal(t, int64(2), listing.FreshCount)
		})
	}
}

func TestCategoryGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := agentActor(uuid.New())
	category := &model.Category{ID: uuid.New(), Name: "Contacted", OrganisationID: actor.OrganisationID}
	leads := []*model.Lead{{ID: uuid.New(), CategoryID: &category.ID}}

	categoryRepo := mocks.NewMockCategoryRepositoryIface(ctrl)
	leadRepo := mocks.NewMockLeadRepositoryIface(ctrl)

	categoryRepo.EXPECT().FindScoped(gomock.Any(), actor, category.ID).Return(category, nil)
	leadRepo.EXPECT().ListByCategory(gomock.Any(), category.ID).Return(leads, nil)

	svc := service.NewCategoryService(categoryRepo, leadRepo, nil)
	detail, err := svc.Get(context.Background(), actor, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category, detail.Category)
	assert.Equal(t, leads, detail.Leads)
}

func TestCategoryCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := organisor(uuid.New())

	t.Run("belongs to the actor's organisation", func(t *testing.T) {
		categoryRepo := mocks.NewMockCategoryRepositoryIface(ctrl)
		categoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *model.Category) error {
				assert.Equal(t, actor.OrganisationID, c.OrganisationID)
				return nil
			})

		svc := service.NewCategoryService(categoryRepo, nil, nil)
		category, err := svc.Create(context.Background(), actor, service.CategoryInput{Name: "Contacted"})
		require.NoError(t, err)
		assert.Equal(t, "Contacted", category.Name)
	})

	t.Run("name longer than 30 characters", func(t *testing.T) {
		svc := service.NewCategoryService(nil, nil, nil)
		_, err := svc.Create(context.Background(), actor, service.CategoryInput{Name: "abcdefghijklmnopqrstuvwxyz012345"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCategoryDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := organisor(uuid.New())
	category := &model.Category{ID: uuid.New(), OrganisationID: actor.OrganisationID}
	categoryRepo := mocks.NewMockCategoryRepositoryIface(ctrl)

	categoryRepo.EXPECT().FindScoped(gomock.Any(), actor, category.ID).Return(category, nil)
	categoryRepo.EXPECT().Delete(gomock.Any(), category.ID).Return(nil)

	svc := service.NewCategoryService(categoryRepo, nil, nil)
	require.NoError(t, svc.Delete(context.Background(), actor, category.ID))
}

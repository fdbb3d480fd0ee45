package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/mocks"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/dangerclosesec/crmaster/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActivityRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := organisor(uuid.New())

	t.Run("writes an entry for the organisation", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *model.ActivityLog) error {
				assert.Equal(t, actor.OrganisationID, entry.OrganisationID)
				assert.Equal(t, actor.UserID, entry.ActorUserID)
				assert.Equal(t, model.ActionLeadAssigned, entry.Action)
				assert.Equal(t, "abc", entry.Details["agent_id"])
				return nil
			})

		svc := service.NewActivityService(repo)
		svc.Record(context.Background(), actor, model.ActionLeadAssigned, "lead", "1", map[string]interface{}{"agent_id": "abc"})
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		svc := service.NewActivityService(repo)
		assert.NotPanics(t, func() {
			svc.Record(context.Background(), actor, model.ActionLeadDeleted, "lead", "1", nil)
		})
	})

	t.Run("recording through lead service", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		leads := mocks.NewMockLeadRepositoryIface(ctrl)
		lead := &model.Lead{ID: uuid.New(), OrganisationID: actor.OrganisationID}

		leads.EXPECT().FindScoped(gomock.Any(), actor, lead.ID).Return(lead, nil)
		leads.EXPECT().Delete(gomock.Any(), lead.ID).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *model.ActivityLog) error {
				assert.Equal(t, model.ActionLeadDeleted, entry.Action)
				assert.Equal(t, lead.ID.String(), entry.EntityID)
				return nil
			})

		svc := service.NewLeadService(leads, nil, nil, nil, service.NewActivityService(repo))
		require.NoError(t, svc.Delete(context.Background(), actor, lead.ID))
	})
}

func TestActivityList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("forces organisation and clamps limit", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		actor := organisor(orgID)

		repo.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params repository.ActivityQueryParams) ([]model.ActivityLog, int64, error) {
				assert.Equal(t, orgID, params.OrganisationID)
				assert.Equal(t, 200, params.Limit)
				return []model.ActivityLog{{Action: model.ActionLeadCreated}}, 1, nil
			})

		svc := service.NewActivityService(repo)
		logs, total, err := svc.List(context.Background(), actor, repository.ActivityQueryParams{
			OrganisationID: uuid.New(),
			Limit:          5000,
		})
		require.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("agents are refused", func(t *testing.T) {
		svc := service.NewActivityService(nil)
		_, _, err := svc.List(context.Background(), agentActor(orgID), repository.ActivityQueryParams{})
		assert.ErrorIs(t, err, domain.ErrNotOrganisor)
	})
}

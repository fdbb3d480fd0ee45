package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/dangerclosesec/crmaster/internal/domain"
	"github.com/dangerclosesec/crmaster/internal/handler"
	"github.com/dangerclosesec/crmaster/internal/mocks"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/dangerclosesec/crmaster/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type actorsByID map[uuid.UUID]*model.Actor

func (a actorsByID) ResolveActor(_ context.Context, userID uuid.UUID) (*model.Actor, error) {
	actor, ok := a[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return actor, nil
}

type testServer struct {
	handler   http.Handler
	tokens    *auth.TokenManager
	organisor *model.Actor
	agent     *model.Actor
	leads     *mocks.MockLeadRepositoryIface
	agents    *mocks.MockAgentRepositoryIface
	users     *mocks.MockUserRepositoryIface
	notifier  *mocks.MockNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	orgID := uuid.New()
	ts := &testServer{
		tokens:    auth.NewTokenManager("test-secret", time.Hour),
		organisor: &model.Actor{UserID: uuid.New(), Username: "boss", Role: model.RoleOrganisor, OrganisationID: orgID},
		agent:     &model.Actor{UserID: uuid.New(), Username: "jane", Role: model.RoleAgent, OrganisationID: orgID, AgentID: uuid.New()},
		leads:     mocks.NewMockLeadRepositoryIface(ctrl),
		agents:    mocks.NewMockAgentRepositoryIface(ctrl),
		users:     mocks.NewMockUserRepositoryIface(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
	}

	categories := mocks.NewMockCategoryRepositoryIface(ctrl)
	users := ts.users

	h, err := handler.NewRouter(handler.RouterOptions{
		TokenManager: ts.tokens,
		Resolver:     actorsByID{ts.organisor.UserID: ts.organisor, ts.agent.UserID: ts.agent},
		Users:        service.NewUserService(users, nil, nil, auth.NewPasswordHasher(), ts.tokens),
		Leads:        service.NewLeadService(ts.leads, ts.agents, categories, ts.notifier, nil),
		Categories:   service.NewCategoryService(categories, ts.leads, nil),
		Agents:       service.NewAgentService(users, ts.agents, auth.NewPasswordHasher(), ts.notifier, nil),
		Activity:     service.NewActivityService(nil),
	})
	require.NoError(t, err)
	ts.handler = h

	return ts
}

func (ts *testServer) do(t *testing.T, actor *model.Actor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if actor != nil {
		token, err := ts.tokens.Generate(actor.UserID, actor.Username)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestOrganisorRoutesRedirectAgents(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New().String()

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/leads", `{"first_name":"a","last_name":"b"}`},
		{http.MethodPut, "/api/leads/" + id, `{"first_name":"a","last_name":"b"}`},
		{http.MethodDelete, "/api/leads/" + id, ""},
		{http.MethodPost, "/api/leads/" + id + "/assign", `{"agent_id":"` + id + `"}`},
		{http.MethodPost, "/api/categories", `{"name":"x"}`},
		{http.MethodPut, "/api/categories/" + id, `{"name":"x"}`},
		{http.MethodDelete, "/api/categories/" + id, ""},
		{http.MethodGet, "/api/agents", ""},
		{http.MethodPost, "/api/agents", `{"username":"x","email":"x@example.com"}`},
		{http.MethodGet, "/api/agents/" + id, ""},
		{http.MethodPut, "/api/agents/" + id, `{"username":"x","email":"x@example.com"}`},
		{http.MethodDelete, "/api/agents/" + id, ""},
		{http.MethodGet, "/api/activity", ""},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := ts.do(t, ts.agent, rt.method, rt.path, rt.body)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/api/leads", rec.Header().Get("Location"))
		})
	}
}

func TestAnonymousIsSentToLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, nil, http.MethodGet, "/api/leads", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/auth/login", rec.Header().Get("Location"))
}

func TestLeadListByRole(t *testing.T) {
	ts := newTestServer(t)
	leads := []*model.Lead{{ID: uuid.New(), FirstName: "Ann", OrganisationID: ts.organisor.OrganisationID}}

	t.Run("organisor", func(t *testing.T) {
		ts.leads.EXPECT().List(gomock.Any(), *ts.organisor).Return(leads, nil)
		ts.leads.EXPECT().ListUnassigned(gomock.Any(), *ts.organisor).Return(leads, nil)
		ts.leads.EXPECT().CountFresh(gomock.Any(), *ts.organisor).Return(int64(1), nil)

		rec := ts.do(t, ts.organisor, http.MethodGet, "/api/leads", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "unassigned_leads")
		assert.JSONEq(t, "1", string(body["fresh_lead_count"]))
	})

	t.Run("agent", func(t *testing.T) {
		ts.leads.EXPECT().List(gomock.Any(), *ts.agent).Return(leads, nil)

		rec := ts.do(t, ts.agent, http.MethodGet, "/api/leads", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotContains(t, body, "unassigned_leads")
		assert.NotContains(t, body, "fresh_lead_count")
	})
}

func TestAssignScenario(t *testing.T) {
	ts := newTestServer(t)
	orgID := ts.organisor.OrganisationID

	agent := &model.Agent{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		OrganisationID: orgID,
		User:           model.User{Username: "a1", Email: "a1@example.com", IsAgent: true},
	}
	lead := &model.Lead{ID: uuid.New(), FirstName: "L1", OrganisationID: orgID}

	ts.agents.EXPECT().FindScoped(gomock.Any(), *ts.organisor, agent.ID).Return(agent, nil)
	ts.leads.EXPECT().FindByID(gomock.Any(), lead.ID).Return(lead, nil)
	ts.leads.EXPECT().Update(gomock.Any(), lead).Return(nil)
	ts.notifier.EXPECT().LeadAssigned(gomock.Any(), "a1@example.com").Return(nil).Times(1)

	rec := ts.do(t, ts.organisor, http.MethodPost, "/api/leads/"+lead.ID.String()+"/assign", `{"agent_id":"`+agent.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, lead.IsAssigned())
	assert.Equal(t, agent.ID, *lead.AgentID)
	assert.True(t, lead.IsFresh())
}

func TestAssignMailFailureIsServerError(t *testing.T) {
	ts := newTestServer(t)

	agent := &model.Agent{ID: uuid.New(), OrganisationID: ts.organisor.OrganisationID, User: model.User{Email: "a1@example.com"}}
	lead := &model.Lead{ID: uuid.New(), OrganisationID: ts.organisor.OrganisationID}

	ts.agents.EXPECT().FindScoped(gomock.Any(), *ts.organisor, agent.ID).Return(agent, nil)
	ts.leads.EXPECT().FindByID(gomock.Any(), lead.ID).Return(lead, nil)
	ts.leads.EXPECT().Update(gomock.Any(), lead).Return(nil)
	ts.notifier.EXPECT().LeadAssigned(gomock.Any(), "a1@example.com").Return(errors.New("smtp: 451"))

	rec := ts.do(t, ts.organisor, http.MethodPost, "/api/leads/"+lead.ID.String()+"/assign", `{"agent_id":"`+agent.ID.String()+`"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	ts := newTestServer(t)

	t.Run("unknown lead is 404", func(t *testing.T) {
		id := uuid.New()
		ts.leads.EXPECT().FindScoped(gomock.Any(), *ts.agent, id).Return(nil, domain.ErrLeadNotFound)

		rec := ts.do(t, ts.agent, http.MethodGet, "/api/leads/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		rec := ts.do(t, ts.agent, http.MethodGet, "/api/leads/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation is 400", func(t *testing.T) {
		rec := ts.do(t, ts.organisor, http.MethodPost, "/api/categories", `{"name":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, nil, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRegisterRaceReportsConflict(t *testing.T) {
	ts := newTestServer(t)

	ts.users.EXPECT().FindByUsername(gomock.Any(), "boss").Return(nil, domain.ErrUserNotFound)
	ts.users.EXPECT().CreateWithOrganisation(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrUsernameTaken)

	rec := ts.do(t, nil, http.MethodPost, "/api/auth/register",
		`{"username":"boss","password":"s3cretpass","confirm_password":"s3cretpass"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

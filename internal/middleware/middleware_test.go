package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/dangerclosesec/crmaster/internal/middleware"
	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	actor *model.Actor
	err   error
}

func (s stubResolver) ResolveActor(_ context.Context, userID uuid.UUID) (*model.Actor, error) {
	if s.err != nil {
		return nil, s.err
	}
	actor := *s.actor
	actor.UserID = userID
	return &actor, nil
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRoleGuardCheck(t *testing.T) {
	guard := middleware.NewRoleGuard("")

	tests := []struct {
		name    string
		actor   *model.Actor
		allowed bool
	}{
		{"anonymous", nil, false},
		{"agent", &model.Actor{Role: model.RoleAgent}, false},
		{"organisor", &model.Actor{Role: model.RoleOrganisor}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := guard.Check(tt.actor)
			assert.Equal(t, tt.allowed, decision.Allowed)
			if !tt.allowed {
				assert.Equal(t, middleware.DefaultFallback, decision.RedirectTo)
			} else {
				assert.Empty(t, decision.RedirectTo)
			}
		})
	}
}

func TestRequireOrganisor(t *testing.T) {
	guarded := func(called *bool) http.Handler {
		return middleware.RequireOrganisor(middleware.NewRoleGuard(""))(okHandler(called))
	}

	t.Run("agent is redirected and handler never runs", func(t *testing.T) {
		called := false
		req := httptest.NewRequest(http.MethodPost, "/api/agents", nil)
		req = req.WithContext(middleware.WithActor(req.Context(), &model.Actor{Role: model.RoleAgent}))
		rec := httptest.NewRecorder()

		guarded(&called).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, middleware.DefaultFallback, rec.Header().Get("Location"))
		assert.False(t, called)
	})

	t.Run("anonymous is redirected", func(t *testing.T) {
		called := false
		rec := httptest.NewRecorder()

		guarded(&called).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/agents", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.False(t, called)
	})

	t.Run("organisor passes", func(t *testing.T) {
		called := false
		req := httptest.NewRequest(http.MethodGet, "/api/agents", nil)
		req = req.WithContext(middleware.WithActor(req.Context(), &model.Actor{Role: model.RoleOrganisor}))
		rec := httptest.NewRecorder()

		guarded(&called).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})
}

func TestRequireLogin(t *testing.T) {
	called := false
	h := middleware.RequireLogin(middleware.DefaultLoginURL)(okHandler(&called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, middleware.DefaultLoginURL, rec.Header().Get("Location"))
	assert.False(t, called)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), &model.Actor{Role: model.RoleAgent}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.Generate(userID, "boss")
	require.NoError(t, err)

	capture := func(got **model.Actor) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*got = middleware.ActorFromContext(r.Context())
		})
	}

	t.Run("valid token stores the actor", func(t *testing.T) {
		var got *model.Actor
		h := middleware.Authenticate(tokens, stubResolver{actor: &model.Actor{Role: model.RoleOrganisor}})(capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, got)
		assert.Equal(t, userID, got.UserID)
		assert.True(t, got.IsOrganisor())
	})

	t.Run("invalid token stays anonymous", func(t *testing.T) {
		var got *model.Actor
		h := middleware.Authenticate(tokens, stubResolver{actor: &model.Actor{}})(capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Nil(t, got)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unresolvable user stays anonymous", func(t *testing.T) {
		var got *model.Actor
		h := middleware.Authenticate(tokens, stubResolver{err: errors.New("no profile")})(capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Nil(t, got)
	})
}

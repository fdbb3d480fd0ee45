// internal/middleware/auth.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/dangerclosesec/crmaster/internal/model"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type actorContextKey string

var ActorKey actorContextKey = "crm_actor"

// ActorResolver turns an authenticated user id into the actor the request
// runs as.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID uuid.UUID) (*model.Actor, error)
}

// Authenticate reads a bearer token and stores the resolved actor in the
// request context. Requests without a usable token pass through
// anonymously; RequireLogin and RequireOrganisor decide what they may reach.
func Authenticate(tokenManager *auth.TokenManager, resolver ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				slog.DebugContext(r.Context(), "Ignoring invalid token", "error", err, "requestID", chimw.GetReqID(r.Context()))
				next.ServeHTTP(w, r)
				return
			}

			userID, err := claims.UserUUID()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), userID)
			if err != nil {
				slog.WarnContext(r.Context(), "Failed to resolve actor", "error", err, "userID", userID, "requestID", chimw.GetReqID(r.Context()))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// ActorFromContext returns the request's actor, or nil when anonymous.
func ActorFromContext(ctx context.Context) *model.Actor {
	actor, _ := ctx.Value(ActorKey).(*model.Actor)
	return actor
}

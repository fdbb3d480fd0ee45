// internal/middleware/guard.go
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/crmaster/internal/metrics"
	"github.com/dangerclosesec/crmaster/internal/model"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DefaultFallback = "/api/leads"
	DefaultLoginURL = "/api/auth/login"
)

// Decision is the outcome of a guard check. RedirectTo is set when the
// request is denied.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

type RoleGuard struct {
	Fallback string
}

func NewRoleGuard(fallback string) RoleGuard {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return RoleGuard{Fallback: fallback}
}

// Check allows authenticated organisors only.
func (g RoleGuard) Check(actor *model.Actor) Decision {
	if actor.IsOrganisor() {
		return Decision{Allowed: true}
	}

	target := g.Fallback
	if target == "" {
		target = DefaultFallback
	}
	return Decision{RedirectTo: target}
}

// RequireOrganisor redirects everyone but organisors to the guard's
// fallback without calling next.
func RequireOrganisor(guard RoleGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())

			decision := guard.Check(actor)
			if !decision.Allowed {
				reason := "anonymous"
				if actor != nil {
					reason = "not_organisor"
				}
				metrics.RecordGuardDenial(reason)
				slog.DebugContext(r.Context(), "Organisor guard denied request",
					"path", r.URL.Path,
					"reason", reason,
					"requestID", chimw.GetReqID(r.Context()),
				)

				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin redirects anonymous requests to loginURL.
func RequireLogin(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ActorFromContext(r.Context()) == nil {
				metrics.RecordGuardDenial("login_required")
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// internal/handler/router.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/dangerclosesec/crmaster/internal/config"
	"github.com/dangerclosesec/crmaster/internal/metrics"
	"github.com/dangerclosesec/crmaster/internal/middleware"
	"github.com/dangerclosesec/crmaster/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterOptions struct {
	Logger       *slog.Logger
	TokenManager *auth.TokenManager
	Resolver     middleware.ActorResolver

	Users      *service.UserService
	Leads      *service.LeadService
	Categories *service.CategoryService
	Agents     *service.AgentService
	Activity   *service.ActivityService

	Guard     config.GuardOptions
	RateLimit config.RateLimitOptions
	Metrics   config.MetricsOptions
}

func NewRouter(opts RouterOptions) (http.Handler, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandler := NewAuthHandler(opts.Users)
	leadHandler := NewLeadHandler(opts.Leads)
	categoryHandler := NewCategoryHandler(opts.Categories)
	agentHandler := NewAgentHandler(opts.Agents)
	activityHandler := NewActivityHandler(opts.Activity)

	guard := middleware.NewRoleGuard(opts.Guard.Fallback)
	organisorOnly := middleware.RequireOrganisor(guard)

	loginURL := opts.Guard.LoginURL
	if loginURL == "" {
		loginURL = middleware.DefaultLoginURL
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	if opts.Metrics.Enabled {
		r.Use(metrics.Middleware)
	}
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if opts.Metrics.Enabled {
		path := opts.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, metrics.Handler())
	}

	var rateLimit func(http.Handler) http.Handler
	if opts.RateLimit.Enabled {
		mw, err := middleware.RateLimit(opts.RateLimit.Rate)
		if err != nil {
			return nil, err
		}
		rateLimit = mw
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		r.Route("/auth", func(r chi.Router) {
			if rateLimit != nil {
				r.Use(rateLimit)
			}
			r.Post("/register", authHandler.RegisterHandler)
			r.Post("/login", authHandler.LoginHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(opts.TokenManager, opts.Resolver))
			r.Use(middleware.RequireLogin(loginURL))

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", leadHandler.List)
				r.With(organisorOnly).Post("/", leadHandler.Create)
				r.Get("/{id}", leadHandler.Get)
				r.With(organisorOnly).Put("/{id}", leadHandler.Update)
				r.With(organisorOnly).Delete("/{id}", leadHandler.Delete)
				r.With(organisorOnly).Post("/{id}/assign", leadHandler.Assign)
				r.Put("/{id}/category", leadHandler.UpdateCategory)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.List)
				r.With(organisorOnly).Post("/", categoryHandler.Create)
				r.Get("/{id}", categoryHandler.Get)
				r.With(organisorOnly).Put("/{id}", categoryHandler.Update)
				r.With(organisorOnly).Delete("/{id}", categoryHandler.Delete)
			})

			r.Route("/agents", func(r chi.Router) {
				r.Use(organisorOnly)
				r.Get("/", agentHandler.List)
				r.Post("/", agentHandler.Create)
				r.Get("/{id}", agentHandler.Get)
				r.Put("/{id}", agentHandler.Update)
				r.Delete("/{id}", agentHandler.Delete)
			})

			r.With(organisorOnly).Get("/activity", activityHandler.List)
		})
	})

	return r, nil
}

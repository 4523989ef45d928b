package router

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bhushansable/Gurukrupa-Mess/internal/config"
	"github.com/bhushansable/Gurukrupa-Mess/internal/handler"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
	mw "github.com/bhushansable/Gurukrupa-Mess/internal/middleware"
)

// New creates a Chi router serving the tiffin API under /api.
// Applies authentication and admin-role middleware as needed.
func New(cfg *config.Config, store *memstore.Store) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The mobile client and web preview call from any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	authHandler := handler.NewAuthHandler(store, cfg.JWTSecret)
	menuHandler := handler.NewMenuHandler(store)
	planHandler := handler.NewPlanHandler(store)
	orderHandler := handler.NewOrderHandler(store)
	subscriptionHandler := handler.NewSubscriptionHandler(store)
	adminHandler := handler.NewAdminHandler(store, store)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		authHandler.RegisterRoutes(r)
		menuHandler.RegisterRoutes(r)
		planHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)

		// Protected routes (require authentication)
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate(cfg.JWTSecret, store))

			authHandler.RegisterSessionRoutes(r)
			orderHandler.RegisterRoutes(r)
			subscriptionHandler.RegisterRoutes(r)
			adminHandler.RegisterSessionRoutes(r)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAdmin)
				menuHandler.RegisterAdminRoutes(r)
				planHandler.RegisterAdminRoutes(r)
				orderHandler.RegisterAdminRoutes(r)
				subscriptionHandler.RegisterAdminRoutes(r)
				adminHandler.RegisterAdminRoutes(r)
			})
		})
	})

	log.Println("Router initialized with all routes")
	return r
}

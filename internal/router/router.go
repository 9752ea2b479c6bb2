// Package router sets up all HTTP routes and middleware for the local API
// server consumed by the tool screens.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/gateway"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/handlers"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/middleware"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// The server binds to loopback only; CORS exists for the tool screen
	// dev server running on a different localhost port.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Generation tools.
		r.Route("/tools", func(r chi.Router) {
			r.Post("/full-seo", api.FullSeo)
			r.Post("/titles", api.SimpleList(gateway.ListTitles, models.AssetTitles))
			r.Post("/tags", api.SimpleList(gateway.ListTags, models.AssetTags))
			r.Post("/hashtags", api.SimpleList(gateway.ListHashtags, models.AssetHashtags))
			r.Post("/video-ideas", api.SimpleList(gateway.ListIdeas, models.AssetVideoIdeas))
			r.Post("/script-outline", api.ScriptOutline)
			r.Post("/video-script", api.VideoScript)
			r.Post("/thumbnail-ideas", api.ThumbnailIdeas)
			r.Post("/hooks-intros", api.HooksIntros)
			r.Post("/community-posts", api.CommunityPosts)
			r.Post("/repurpose", api.Repurpose)
		})

		// Projects and their assets.
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", api.ListProjects)
			r.Post("/", api.CreateProject)
			r.Get("/{id}", api.GetProject)
			r.Put("/{id}", api.UpdateProject)
			r.Delete("/{id}", api.DeleteProject)
			r.Get("/{id}/assets/{assetID}/export", api.ExportAsset)
		})

		// Settings.
		r.Get("/settings/tone", api.GetTone)
		r.Put("/settings/tone", api.PutTone)
		r.Get("/brand-kit", api.GetBrandKit)
		r.Put("/brand-kit", api.PutBrandKit)

		// Dashboard.
		r.Get("/checklist", api.GetChecklist)
		r.Put("/checklist", api.PutChecklist)
		r.Get("/checklist/items", api.ChecklistItems)
		r.Get("/welcome", api.GetWelcome)
		r.Post("/welcome", api.PostWelcome)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/social", h.socialLogin)
		r.Get("/api/activate/{id}", h.activate)
		r.Post("/api/users/reset", h.requestPasswordReset)
		r.Post("/api/update_password/{token}", h.updatePassword)

		r.Get("/api/feeds", h.feed)
		r.Get("/api/articles/{slug}", h.viewArticle)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Post("/api/articles", h.createArticle)
		r.Get("/api/articles", h.listOwnPublished)
		r.Get("/api/articles/drafts", h.listOwnDrafts)
		r.Put("/api/articles/{slug}", h.updateArticle)
		r.Delete("/api/articles/{slug}", h.deleteArticle)
		r.Post("/api/articles/{slug}/rate", h.rateArticle)

		r.Post("/api/articles/{slug}/bookmark", h.addBookmark)
		r.Delete("/api/articles/{slug}/bookmark", h.removeBookmark)
		r.Get("/api/bookmarks", h.listBookmarks)
		r.Get("/api/bookmarks/{slug}", h.getBookmark)

		r.Post("/api/subscribe/{target}", h.subscribe)
		r.Post("/api/unsubscribe/{target}", h.unsubscribe)
	})

	router.Method("GET", "/metrics", promhttp.Handler())

	return router
}

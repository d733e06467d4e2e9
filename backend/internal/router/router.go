package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/forum/backend/internal/setup"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// New creates a chi router with every route of the forum API.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureHeaders))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Registry))

	r.Post("/users", h.PostUser)

	r.Route("/authentications", func(r chi.Router) {
		r.Post("/", h.PostAuthentication)
		r.Put("/", h.PutAuthentication)
		r.Delete("/", h.DeleteAuthentication)
	})

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Post("/", h.PostThread)
			r.Route("/{threadId}/comments", func(r chi.Router) {
				r.Post("/", h.PostComment)
				r.Delete("/{commentId}", h.DeleteComment)
				r.Put("/{commentId}/likes", h.PutCommentLike)
				r.Post("/{commentId}/replies", h.PostReply)
				r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
			})
		})
	})

	return r
}

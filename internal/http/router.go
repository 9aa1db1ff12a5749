package http

import (
	"net/http"

	"promptbase/internal/auth"
	"promptbase/internal/config"
	"promptbase/internal/engagement"
	"promptbase/internal/essay"
	"promptbase/internal/http/handler"
	mw "promptbase/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, notifier *auth.Notifier) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(log.Logger))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	essaySvc := &essay.Service{DB: db}
	engSvc := &engagement.Service{DB: db}

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc, Notifier: notifier}
	eh := &handler.EssayHandler{Svc: essaySvc}
	gh := &handler.EngagementHandler{Svc: engSvc}
	me := &handler.MeHandler{Essays: essaySvc, Engagement: engSvc}
	ev := &handler.EventsHandler{Notifier: notifier}

	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)
	r.With(auth.RequireAuth(jwtSvc)).Post("/auth/logout", ah.Logout)
	r.With(auth.OptionalAuth(jwtSvc)).Get("/auth/session", ah.Session)
	r.Get("/auth/events", ev.Events)

	r.Get("/catalog", eh.Catalog)

	r.Route("/essays", func(r chi.Router) {
		r.Get("/", eh.List)
		r.Get("/{id}", eh.Get)
		r.With(auth.OptionalAuth(jwtSvc)).Get("/{id}/likes", gh.Status)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtSvc))

			r.Post("/", eh.Create)
			r.Put("/{id}", eh.Update)
			r.Delete("/{id}", eh.Delete)

			r.Post("/{id}/like", gh.Like)
			r.Delete("/{id}/like", gh.Unlike)
			r.Post("/{id}/save", gh.Save)
			r.Delete("/{id}/save", gh.Unsave)
		})
	})

	r.Route("/me", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", me.Me)
		r.Get("/essays", me.MyEssays)
		r.Get("/saved", me.SavedEssays)
		r.Get("/liked", me.LikedEssays)
	})

	return r
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/influenxers/coachbot/internal/bot"
	middlewarePkg "github.com/influenxers/coachbot/internal/middleware"
	"github.com/influenxers/coachbot/internal/session"
	"github.com/influenxers/coachbot/pkg/utils"
)

// NewRouter wires the local API: health, a test-drive endpoint for the
// coach pipeline, profile inspection and a websocket console.
func NewRouter(svc *bot.Service, sessions *session.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	coach := newCoachHandler(svc, sessions)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		api.Post("/events", coach.handleEvent)
		api.Get("/profiles/{userID}", coach.handleProfile)
		api.Get("/ws", coach.handleWS)
	})

	return r
}

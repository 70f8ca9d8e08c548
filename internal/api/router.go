package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Rasamaha24/m5-advocate-portal/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard)
				r.Post("/refresh", h.RefreshDashboard)
				r.Get("/ws", h.DashboardFeed)
				r.Delete("/session", h.CloseSession)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Put("/read", h.MarkAllNotificationsRead)
				r.Put("/{id}/read", h.MarkNotificationRead)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Post("/", h.CreateClient)
				r.Post("/{clientID}/bills", h.TrackBill)
				r.Delete("/{clientID}/bills/{billID}", h.UntrackBill)
				r.Put("/{clientID}/bills/{billID}/position", h.UpdateBillPosition)
			})
		})
	})

	return mux
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.getProfile)
		r.Put("/api/user/profile", h.updateProfile)

		r.Route("/api/diary", func(r chi.Router) {
			r.Get("/", h.listDiaries)
			r.Post("/", h.createDiary)
			r.Get("/type/{slot}", h.listDiariesBySlot)
			r.Get("/period", h.listDiariesByPeriod)
			r.Get("/{id}", h.getDiary)
			r.Put("/{id}", h.updateDiary)
			r.Delete("/{id}", h.deleteDiary)
		})

		r.Get("/api/report/monthly", h.getMonthlyReport)
		r.Post("/api/report/monthly", h.generateMonthlyReport)
	})

	return router
}

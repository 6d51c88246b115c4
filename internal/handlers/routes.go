package handlers

import (
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts the pages, form posts and JSON API on r
func RegisterRoutes(r chi.Router, h *Handler, limiter *rate.Limiter) {
	limited := RateLimit(limiter, h.log)

	r.Get("/", h.Landing)
	r.Get("/demo", h.Demo)
	r.Get("/contact", h.Contact)
	r.Get("/privacy", h.Privacy)
	r.Get("/terms", h.Terms)
	r.Get("/health", Health)

	r.With(limited).Post("/demo-request", h.SubmitDemoForm)
	r.With(limited).Post("/contact", h.SubmitContactForm)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tour", h.TourSteps)
		r.With(limited).Post("/demo-requests", h.CreateDemoRequest)
		r.With(limited).Post("/contact", h.CreateContactMessage)
	})
}

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/domain/tour"
	"github.com/flexxoo/website/pkg/logger"
)

// maxBodyBytes caps form and JSON submissions.
const maxBodyBytes = 64 << 10

// Handler serves the website pages, the form posts and the JSON API.
type Handler struct {
	leads *leads.Service
	steps []tour.Step
	log   *slog.Logger
	now   func() time.Time
}

// NewHandler creates the website handler
func NewHandler(svc *leads.Service, steps []tour.Step, log *slog.Logger) *Handler {
	return &Handler{
		leads: svc,
		steps: steps,
		log:   log.With(logger.Scope("handlers")),
		now:   time.Now,
	}
}

func (h *Handler) renderHTML(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.Error("render page", logger.Error(err))
	}
}

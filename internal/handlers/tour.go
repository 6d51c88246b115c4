package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flexxoo/website/domain/tour"
	"github.com/flexxoo/website/internal/components"
	"github.com/flexxoo/website/pkg/apperror"
	"github.com/flexxoo/website/pkg/logger"
)

const (
	tourPath = "/demo"
	// tickMs is how far one page refresh advances a playing tour.
	tickMs = 1000
)

func (h *Handler) freshTour() (components.TourView, error) {
	p, err := tour.NewPlayer(h.steps)
	if err != nil {
		return components.TourView{}, err
	}
	return components.NewTourView(tourPath, p), nil
}

// Demo handles GET /demo. The tour state lives in the query string; an
// action is applied to it and the resulting frame rendered. A playing tour
// refreshes itself once a second with a tick.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p, err := tour.Restore(h.steps, parseTourState(q))
	if err != nil {
		h.log.Debug("discarding tour state", logger.Error(err))
		if p, err = tour.NewPlayer(h.steps); err != nil {
			h.renderError(w, r, err)
			return
		}
	}

	if err := applyTourAction(p, q); err != nil {
		h.log.Debug("ignoring tour action", slog.String("action", q.Get("action")), logger.Error(err))
	}

	view := components.NewTourView(tourPath, p)
	cfg := components.PageConfig{
		Title:       "Product Tour - Flexxoo",
		Description: "Take an interactive tour of the Flexxoo platform.",
	}
	if p.Playing() {
		cfg.RefreshURL = components.TourURL(tourPath, p.State(), components.TourTick, 0)
		cfg.RefreshSeconds = 1
	}

	page := components.Layout(cfg,
		components.BackTopbar(),
		components.ProductTour(view),
		components.PageFooter(),
	)
	h.renderHTML(w, http.StatusOK, page)
}

func parseTourState(q url.Values) tour.State {
	step, _ := strconv.Atoi(q.Get("step"))
	elapsed, _ := strconv.Atoi(q.Get("elapsed"))
	playing, _ := strconv.ParseBool(q.Get("playing"))
	return tour.State{Index: step, ElapsedMs: elapsed, Playing: playing}
}

var errUnknownAction = errors.New("unknown tour action")

func applyTourAction(p *tour.Player, q url.Values) error {
	switch q.Get("action") {
	case "":
	case components.TourPlay:
		p.Play()
	case components.TourPause:
		p.Pause()
	case components.TourToggle:
		p.Toggle()
	case components.TourNext:
		p.Next()
	case components.TourPrevious:
		p.Previous()
	case components.TourTick:
		p.Tick(tickMs)
	case components.TourGoTo:
		to, err := strconv.Atoi(q.Get("to"))
		if err != nil {
			return err
		}
		return p.GoToStep(to)
	default:
		return errUnknownAction
	}
	return nil
}

// TourSteps handles GET /api/tour
func (h *Handler) TourSteps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"steps": h.steps})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apperror.WriteJSON(w, r, h.log, apperror.NewInternal("Something went wrong", err))
}

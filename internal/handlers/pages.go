package handlers

import (
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/flexxoo/website/internal/components"
)

func (h *Handler) landingPage(demo components.DemoFormState, tourView components.TourView) g.Node {
	return components.Layout(
		components.PageConfig{
			Title: "Flexxoo - Transform Your Healthcare Practice",
		},
		components.Topbar(),
		components.Hero(),
		components.ProblemSolution(),
		components.Features(),
		components.Audiences(),
		components.ProductTour(tourView),
		components.Testimonials(),
		components.DemoForm(demo),
		components.PageFooter(),
		components.StickyCTA(),
	)
}

// Landing handles GET /
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	view, err := h.freshTour()
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderHTML(w, http.StatusOK, h.landingPage(components.DemoFormState{}, view))
}

func (h *Handler) contactPage(state components.ContactFormState) g.Node {
	return components.Layout(
		components.PageConfig{
			Title:       "Contact Us - Flexxoo",
			Description: "Talk to the Flexxoo team about your clinic or hospital. We respond within 24 hours.",
		},
		components.BackTopbar(),
		components.ContactPage(state),
		components.PageFooter(),
	)
}

// Contact handles GET /contact
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, http.StatusOK, h.contactPage(components.ContactFormState{}))
}

// Privacy handles GET /privacy
func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.renderLegal(w, components.PrivacyPolicy(h.lastUpdated()))
}

// Terms handles GET /terms
func (h *Handler) Terms(w http.ResponseWriter, r *http.Request) {
	h.renderLegal(w, components.TermsOfService(h.lastUpdated()))
}

func (h *Handler) renderLegal(w http.ResponseWriter, doc components.LegalDocument) {
	page := components.Layout(
		components.PageConfig{Title: doc.Title + " - Flexxoo"},
		components.BackTopbar(),
		components.LegalPage(doc),
		components.PageFooter(),
	)
	h.renderHTML(w, http.StatusOK, page)
}

// lastUpdated renders today's date the Indian way, dd/mm/yyyy.
func (h *Handler) lastUpdated() string {
	return h.now().Format("02/01/2006")
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

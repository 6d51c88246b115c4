package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/internal/components"
	"github.com/flexxoo/website/pkg/logger"
)

const (
	demoRequestSent = "Demo request submitted! We'll contact you within 24 hours."
	contactSent     = "Message sent successfully! We'll get back to you within 24 hours."
	formUnreadable  = "Something went wrong. Please try again."
)

// SubmitDemoForm handles POST /demo-request from the landing page form.
func (h *Handler) SubmitDemoForm(w http.ResponseWriter, r *http.Request) {
	view, err := h.freshTour()
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		state := components.DemoFormState{Flash: &components.Flash{Kind: components.FlashError, Message: formUnreadable}}
		h.renderHTML(w, http.StatusBadRequest, h.landingPage(state, view))
		return
	}

	req := leads.DemoRequest{
		Name:            r.PostForm.Get("name"),
		Email:           r.PostForm.Get("email"),
		Phone:           r.PostForm.Get("phone"),
		ClinicName:      r.PostForm.Get("clinicName"),
		Specialty:       r.PostForm.Get("specialty"),
		CurrentSystem:   r.PostForm.Get("currentSystem"),
		TimeSlot:        r.PostForm.Get("timeSlot"),
		AdditionalNotes: r.PostForm.Get("additionalNotes"),
	}

	res, err := h.leads.SubmitDemoRequest(r.Context(), req)
	if err != nil {
		status, flash := h.failureFlash(err)
		h.renderHTML(w, status, h.landingPage(components.DemoFormState{Values: req, Flash: flash}, view))
		return
	}

	h.log.Info("demo request accepted", slog.String("id", res.ID))
	state := components.DemoFormState{Flash: &components.Flash{Kind: components.FlashSuccess, Message: demoRequestSent}}
	h.renderHTML(w, http.StatusOK, h.landingPage(state, view))
}

// SubmitContactForm handles POST /contact.
func (h *Handler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		state := components.ContactFormState{Flash: &components.Flash{Kind: components.FlashError, Message: formUnreadable}}
		h.renderHTML(w, http.StatusBadRequest, h.contactPage(state))
		return
	}

	msg := leads.ContactMessage{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	res, err := h.leads.SubmitContactForm(r.Context(), msg)
	if err != nil {
		status, flash := h.failureFlash(err)
		h.renderHTML(w, status, h.contactPage(components.ContactFormState{Values: msg, Flash: flash}))
		return
	}

	h.log.Info("contact message accepted", slog.String("id", res.ID))
	state := components.ContactFormState{Flash: &components.Flash{Kind: components.FlashSuccess, Message: contactSent}}
	h.renderHTML(w, http.StatusOK, h.contactPage(state))
}

// failureFlash turns a pipeline error into the status and notice shown
// alongside the re-rendered form.
func (h *Handler) failureFlash(err error) (int, *components.Flash) {
	appErr := leads.ToAppError(err)

	var verr *leads.ValidationError
	if !errors.As(err, &verr) {
		h.log.Warn("lead submission failed", logger.Error(err))
	}
	return appErr.HTTPStatus, &components.Flash{Kind: components.FlashError, Message: appErr.Message}
}

// Package leads validates, delivers and locally retains the demo requests
// and contact messages submitted through the website.
package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/flexxoo/website/domain/email"
	"github.com/flexxoo/website/internal/config"
	"github.com/flexxoo/website/pkg/logger"
)

const (
	notSpecified = "Not specified"
	noNotes      = "None"
	notProvided  = "Not provided"
)

// Service runs the submission pipeline: validate, sanitize, deliver, retain.
type Service struct {
	store     Store
	sender    email.Sender
	templates *email.TemplateService
	metrics   *Metrics
	log       *slog.Logger

	templateID string
	toEmail    string
	timeout    time.Duration

	checker *checker
	mu      sync.Mutex
	now     func() time.Time
	newID   func() string
}

// NewService creates the lead pipeline.
func NewService(
	store Store,
	sender email.Sender,
	templates *email.TemplateService,
	metrics *Metrics,
	cfg *config.Config,
	log *slog.Logger,
) *Service {
	return &Service{
		store:      store,
		sender:     sender,
		templates:  templates,
		metrics:    metrics,
		log:        log.With(logger.Scope("leads")),
		templateID: cfg.Email.TemplateID,
		toEmail:    cfg.Email.ToEmail,
		timeout:    cfg.Email.Timeout,
		checker:    newChecker(),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// SubmitDemoRequest validates and delivers a demo request. The sanitized
// request is retained locally whether or not delivery succeeds.
func (s *Service) SubmitDemoRequest(ctx context.Context, req DemoRequest) (*Result, error) {
	if err := s.checker.check(req, req.Email, req.Phone); err != nil {
		s.metrics.observe(FormDemoRequest, OutcomeInvalid)
		return nil, err
	}

	req = req.Sanitized()
	record := StoredDemoRequest{DemoRequest: req, ID: s.newID(), Timestamp: s.now().UTC()}

	return s.submit(ctx, FormDemoRequest, record.ID, record, func() (email.TemplateMessage, error) {
		body, err := s.templates.Render("demo_request", email.TemplateContext{
			"name":            req.Name,
			"email":           req.Email,
			"phone":           req.Phone,
			"clinicName":      req.ClinicName,
			"specialty":       lo.CoalesceOrEmpty(req.Specialty, notSpecified),
			"currentSystem":   lo.CoalesceOrEmpty(req.CurrentSystem, notSpecified),
			"timeSlot":        lo.CoalesceOrEmpty(req.TimeSlot, notSpecified),
			"additionalNotes": lo.CoalesceOrEmpty(req.AdditionalNotes, "None provided"),
		})
		if err != nil {
			return email.TemplateMessage{}, err
		}
		return email.TemplateMessage{
			TemplateID: s.templateID,
			Params: map[string]string{
				"to_email":         s.toEmail,
				"from_name":        req.Name,
				"from_email":       req.Email,
				"phone":            req.Phone,
				"clinic_name":      req.ClinicName,
				"specialty":        lo.CoalesceOrEmpty(req.Specialty, notSpecified),
				"current_system":   lo.CoalesceOrEmpty(req.CurrentSystem, notSpecified),
				"time_slot":        lo.CoalesceOrEmpty(req.TimeSlot, notSpecified),
				"additional_notes": lo.CoalesceOrEmpty(req.AdditionalNotes, noNotes),
				"form_type":        FormDemoRequest.Label(),
				"subject":          fmt.Sprintf("New Demo Request from %s - %s", req.Name, req.ClinicName),
				"message":          body,
			},
		}, nil
	})
}

// SubmitContactForm validates and delivers a contact message. The sanitized
// message is retained locally whether or not delivery succeeds.
func (s *Service) SubmitContactForm(ctx context.Context, msg ContactMessage) (*Result, error) {
	if err := s.checker.check(msg, msg.Email, msg.Phone); err != nil {
		s.metrics.observe(FormContact, OutcomeInvalid)
		return nil, err
	}

	msg = msg.Sanitized()
	record := StoredContactMessage{ContactMessage: msg, ID: s.newID(), Timestamp: s.now().UTC()}

	return s.submit(ctx, FormContact, record.ID, record, func() (email.TemplateMessage, error) {
		body, err := s.templates.Render("contact_message", email.TemplateContext{
			"name":    msg.Name,
			"email":   msg.Email,
			"phone":   msg.Phone,
			"message": msg.Message,
		})
		if err != nil {
			return email.TemplateMessage{}, err
		}
		return email.TemplateMessage{
			TemplateID: s.templateID,
			Params: map[string]string{
				"to_email":   s.toEmail,
				"from_name":  msg.Name,
				"from_email": msg.Email,
				"phone":      lo.CoalesceOrEmpty(msg.Phone, notProvided),
				"subject":    msg.Subject,
				"form_type":  FormContact.Label(),
				"message":    body,
			},
		}, nil
	})
}

func (s *Service) submit(
	ctx context.Context,
	form Form,
	id string,
	record any,
	build func() (email.TemplateMessage, error),
) (*Result, error) {
	log := s.log.With(slog.String("form", string(form)), slog.String("id", id))

	derr := s.deliver(ctx, form, build)

	// The local copy is written even when the visitor has gone away.
	storeErr := s.retain(context.WithoutCancel(ctx), form, record)

	if derr != nil {
		derr.StoreErr = storeErr
		s.metrics.observe(form, OutcomeDeliveryFailed)
		log.Warn("lead delivery failed, kept local copy", logger.Error(derr))
		return nil, derr
	}

	if storeErr != nil {
		log.Error("failed to keep local copy of delivered lead", logger.Error(storeErr))
	}
	s.metrics.observe(form, OutcomeDelivered)
	log.Info("lead delivered")
	return &Result{Success: true, ID: id}, nil
}

func (s *Service) deliver(ctx context.Context, form Form, build func() (email.TemplateMessage, error)) *DeliveryError {
	msg, err := build()
	if err != nil {
		return &DeliveryError{Form: form, Err: fmt.Errorf("render notification: %w", err)}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := s.sender.Send(ctx, msg)
	if err != nil {
		return &DeliveryError{Form: form, Err: err}
	}
	if !res.OK() {
		status := 0
		detail := "no response"
		if res != nil {
			status = res.StatusCode
			detail = lo.CoalesceOrEmpty(res.Error, "unexpected status")
		}
		return &DeliveryError{
			Form:       form,
			StatusCode: status,
			Err:        fmt.Errorf("provider answered %d: %s", status, detail),
		}
	}
	return nil
}

func (s *Service) retain(ctx context.Context, form Form, record any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendEntry(ctx, s.store, form.Key(), record)
}

// List returns the raw entries retained for form, oldest first.
func (s *Service) List(ctx context.Context, form Form) ([]json.RawMessage, error) {
	switch form {
	case FormDemoRequest, FormContact:
	default:
		return nil, fmt.Errorf("unknown form %q", form)
	}
	return s.store.Read(ctx, form.Key())
}

// DemoRequests returns the retained demo requests, oldest first.
func (s *Service) DemoRequests(ctx context.Context) ([]StoredDemoRequest, error) {
	return listAs[StoredDemoRequest](ctx, s, FormDemoRequest)
}

// ContactMessages returns the retained contact messages, oldest first.
func (s *Service) ContactMessages(ctx context.Context) ([]StoredContactMessage, error) {
	return listAs[StoredContactMessage](ctx, s, FormContact)
}

func listAs[T any](ctx context.Context, s *Service, form Form) ([]T, error) {
	entries, err := s.List(ctx, form)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	var errs []error
	for i, raw := range entries {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}

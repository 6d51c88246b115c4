package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/flexxoo/website/pkg/logger"
)

const emailJSSendPath = "/api/v1.0/email/send"

// EmailJSConfig holds the EmailJS account identifiers.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	PublicKey  string
	PrivateKey string
	Timeout    time.Duration
}

// EmailJSSender sends through the EmailJS REST API, which renders the
// template configured in the EmailJS dashboard.
type EmailJSSender struct {
	cfg    EmailJSConfig
	log    *slog.Logger
	client *resty.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSSender creates a sender bound to cfg.Endpoint.
func NewEmailJSSender(cfg EmailJSConfig, log *slog.Logger) *EmailJSSender {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &EmailJSSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("email.emailjs")),
		client: client,
	}
}

func (s *EmailJSSender) Send(ctx context.Context, msg TemplateMessage) (*SendResult, error) {
	if s.cfg.ServiceID == "" || s.cfg.PublicKey == "" {
		return nil, fmt.Errorf("EMAILJS_SERVICE_ID and EMAILJS_PUBLIC_KEY are required")
	}

	body := emailJSRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         s.cfg.PublicKey,
		AccessToken:    s.cfg.PrivateKey,
		TemplateParams: msg.Params,
	}

	s.log.Debug("sending email",
		slog.String("template", msg.TemplateID),
		slog.String("subject", msg.Params["subject"]))

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(emailJSSendPath)
	if err != nil {
		s.log.Error("emailjs request failed", logger.Error(err))
		return nil, fmt.Errorf("emailjs send: %w", err)
	}

	result := &SendResult{StatusCode: resp.StatusCode()}
	if resp.StatusCode() != http.StatusOK {
		result.Error = resp.String()
		s.log.Warn("emailjs rejected message",
			slog.Int("status", resp.StatusCode()),
			slog.String("body", result.Error))
		return result, nil
	}

	s.log.Info("email sent successfully", slog.String("template", msg.TemplateID))
	return result, nil
}

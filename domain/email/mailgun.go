package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/flexxoo/website/pkg/logger"
)

// MailgunConfig holds the Mailgun account and sender identity.
type MailgunConfig struct {
	Domain    string
	APIKey    string
	APIBase   string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// MailgunSender sends emails via a stored Mailgun template.
// This is a thin wrapper around the Mailgun SDK.
type MailgunSender struct {
	cfg    MailgunConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunSender creates a new Mailgun email sender.
func NewMailgunSender(cfg MailgunConfig, log *slog.Logger) *MailgunSender {
	client := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		client.SetAPIBase(cfg.APIBase)
	}

	return &MailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("email.mailgun")),
		client: client,
	}
}

// Send renders msg.TemplateID on Mailgun with msg.Params as template
// variables. The notification goes to the to_email parameter.
func (s *MailgunSender) Send(ctx context.Context, msg TemplateMessage) (*SendResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	to := msg.Params["to_email"]
	if to == "" {
		return nil, fmt.Errorf("mailgun send: to_email parameter is required")
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	message := s.client.NewMessage(from, msg.Params["subject"], msg.Params["message"], to)
	message.SetTemplate(msg.TemplateID)
	if reply := msg.Params["from_email"]; reply != "" {
		message.AddHeader("Reply-To", reply)
	}
	for k, v := range msg.Params {
		if err := message.AddTemplateVariable(k, v); err != nil {
			return nil, fmt.Errorf("mailgun template variable %s: %w", k, err)
		}
	}

	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		status := mailgun.GetStatusFromErr(err)
		if status <= 0 {
			s.log.Error("failed to send email", slog.String("to", to), logger.Error(err))
			return nil, fmt.Errorf("mailgun send: %w", err)
		}
		s.log.Warn("mailgun rejected message", slog.Int("status", status), logger.Error(err))
		return &SendResult{StatusCode: status, Error: err.Error()}, nil
	}

	s.log.Info("email sent successfully",
		slog.String("to", to),
		slog.String("message_id", messageID))

	return &SendResult{
		StatusCode: http.StatusOK,
		MessageID:  messageID,
	}, nil
}

// validate checks that the configuration is valid
func (s *MailgunSender) validate() error {
	if s.cfg.Domain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.APIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	return nil
}

package email

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/flexxoo/website/pkg/logger"
)

// Sender delivers a template-based transactional email.
type Sender interface {
	Send(ctx context.Context, msg TemplateMessage) (*SendResult, error)
}

// TemplateMessage names a provider-side template and the flat parameters it
// is rendered with.
type TemplateMessage struct {
	TemplateID string
	Params     map[string]string
}

// SendResult reports the provider's answer. StatusCode is the HTTP status the
// provider returned; a non-nil error from Send means no answer was obtained.
type SendResult struct {
	StatusCode int
	MessageID  string
	Error      string
}

// OK reports whether the provider accepted the message.
func (r *SendResult) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// noOpSender logs instead of sending (development/testing)
type noOpSender struct {
	log *slog.Logger
}

func newNoOpSender(log *slog.Logger) *noOpSender {
	return &noOpSender{log: log.With(logger.Scope("email.noop"))}
}

func (s *noOpSender) Send(ctx context.Context, msg TemplateMessage) (*SendResult, error) {
	s.log.Info("email send (no-op)",
		slog.String("template", msg.TemplateID),
		slog.String("to", msg.Params["to_email"]),
		slog.String("subject", msg.Params["subject"]))

	return &SendResult{
		StatusCode: http.StatusOK,
		MessageID:  "noop-" + msg.Params["from_email"],
	}, nil
}

package email

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexxoo/website/internal/config"
	"github.com/flexxoo/website/pkg/logger"
)

func contactMessage() TemplateMessage {
	return TemplateMessage{
		TemplateID: "template_flexxoo",
		Params: map[string]string{
			"to_email":   "admin@flexxoo.com",
			"from_name":  "Dr. Priya Sharma",
			"from_email": "priya@clinic.in",
			"subject":    "Pricing",
			"message":    "How much for three doctors?",
			"form_type":  "Contact Form",
		},
	}
}

func TestEmailJSSender_Send(t *testing.T) {
	var got emailJSRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{
		Endpoint:   srv.URL,
		ServiceID:  "service_flexxoo",
		PublicKey:  "public-key",
		PrivateKey: "private-key",
		Timeout:    5 * time.Second,
	}, logger.Discard())

	res, err := sender.Send(context.Background(), contactMessage())

	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, emailJSSendPath, path)
	assert.Equal(t, "service_flexxoo", got.ServiceID)
	assert.Equal(t, "template_flexxoo", got.TemplateID)
	assert.Equal(t, "public-key", got.UserID)
	assert.Equal(t, "private-key", got.AccessToken)
	assert.Equal(t, "Dr. Priya Sharma", got.TemplateParams["from_name"])
}

func TestEmailJSSender_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{
		Endpoint: srv.URL, ServiceID: "s", PublicKey: "bad", Timeout: time.Second,
	}, logger.Discard())

	res, err := sender.Send(context.Background(), contactMessage())

	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, res.Error, "Public Key")
}

func TestEmailJSSender_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	sender := NewEmailJSSender(EmailJSConfig{
		Endpoint: url, ServiceID: "s", PublicKey: "k", Timeout: time.Second,
	}, logger.Discard())

	res, err := sender.Send(context.Background(), contactMessage())

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestEmailJSSender_NotConfigured(t *testing.T) {
	sender := NewEmailJSSender(EmailJSConfig{Endpoint: "http://127.0.0.1:1"}, logger.Discard())

	_, err := sender.Send(context.Background(), contactMessage())

	assert.ErrorContains(t, err, "EMAILJS_PUBLIC_KEY")
}

func TestMailgunSenderValidate(t *testing.T) {
	valid := MailgunConfig{
		Domain:    "mg.flexxoo.com",
		APIKey:    "key-abc123",
		FromEmail: "noreply@flexxoo.com",
		FromName:  "Flexxoo Website",
	}

	tests := []struct {
		name      string
		mutate    func(*MailgunConfig)
		wantError string
	}{
		{"all fields valid", func(*MailgunConfig) {}, ""},
		{"missing domain", func(c *MailgunConfig) { c.Domain = "" }, "MAILGUN_DOMAIN is required"},
		{"missing api key", func(c *MailgunConfig) { c.APIKey = "" }, "MAILGUN_API_KEY is required"},
		{"missing from email", func(c *MailgunConfig) { c.FromEmail = "" }, "EMAIL_FROM_ADDRESS is required"},
		{"missing from name", func(c *MailgunConfig) { c.FromName = "" }, "EMAIL_FROM_NAME is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			sender := &MailgunSender{cfg: cfg}

			err := sender.validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantError)
			}
		})
	}
}

func TestMailgunSender_Send(t *testing.T) {
	var template, to string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			http.NotFound(w, r)
			return
		}
		template = r.FormValue("template")
		to = r.FormValue("to")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"<20261014.1@mg.flexxoo.com>","message":"Queued. Thank you."}`))
	}))
	defer srv.Close()

	sender := NewMailgunSender(MailgunConfig{
		Domain:    "mg.flexxoo.com",
		APIKey:    "key-abc123",
		APIBase:   srv.URL + "/v3",
		FromEmail: "noreply@flexxoo.com",
		FromName:  "Flexxoo Website",
		Timeout:   5 * time.Second,
	}, logger.Discard())

	res, err := sender.Send(context.Background(), contactMessage())

	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "<20261014.1@mg.flexxoo.com>", res.MessageID)
	assert.Equal(t, "template_flexxoo", template)
	assert.Equal(t, "admin@flexxoo.com", to)
}

func TestMailgunSender_MissingRecipient(t *testing.T) {
	sender := NewMailgunSender(MailgunConfig{
		Domain: "mg.flexxoo.com", APIKey: "k", FromEmail: "a@b.co", FromName: "n",
	}, logger.Discard())
	msg := contactMessage()
	delete(msg.Params, "to_email")

	_, err := sender.Send(context.Background(), msg)

	assert.ErrorContains(t, err, "to_email")
}

func TestNoOpSender(t *testing.T) {
	res, err := newNoOpSender(logger.Discard()).Send(context.Background(), contactMessage())

	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "noop-priya@clinic.in", res.MessageID)
}

func TestSendResult_OK(t *testing.T) {
	var nilResult *SendResult
	assert.False(t, nilResult.OK())
	assert.False(t, (&SendResult{StatusCode: http.StatusAccepted}).OK())
	assert.True(t, (&SendResult{StatusCode: http.StatusOK}).OK())
}

func TestNewSender_NoOpFallbackWarnsInProduction(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantWarn bool
	}{
		{"production fallback", config.Config{Environment: "production", Email: config.EmailConfig{Provider: config.ProviderAuto}}, true},
		{"GO_ENV production fallback", config.Config{GoEnv: "production", Email: config.EmailConfig{Provider: config.ProviderAuto}}, true},
		{"local fallback", config.Config{Environment: "local", Email: config.EmailConfig{Provider: config.ProviderAuto}}, false},
		{"explicit noop in production", config.Config{Environment: "production", Email: config.EmailConfig{Provider: config.ProviderNoop}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			sender := NewSender(&tt.cfg, log)
			assert.IsType(t, &noOpSender{}, sender)
			assert.Equal(t, tt.wantWarn, strings.Contains(buf.String(), "level=WARN"), buf.String())
		})
	}
}

func TestNewSender(t *testing.T) {
	tests := []struct {
		name  string
		email config.EmailConfig
		want  any
	}{
		{
			name:  "auto without credentials",
			email: config.EmailConfig{Provider: config.ProviderAuto},
			want:  &noOpSender{},
		},
		{
			name: "auto prefers emailjs",
			email: config.EmailConfig{
				Provider:         config.ProviderAuto,
				EmailJSServiceID: "service_flexxoo",
				EmailJSPublicKey: "pk",
				MailgunDomain:    "mg.flexxoo.com",
				MailgunAPIKey:    "key",
			},
			want: &EmailJSSender{},
		},
		{
			name: "auto falls back to mailgun",
			email: config.EmailConfig{
				Provider:      config.ProviderAuto,
				MailgunDomain: "mg.flexxoo.com",
				MailgunAPIKey: "key",
			},
			want: &MailgunSender{},
		},
		{
			name:  "explicit noop",
			email: config.EmailConfig{Provider: config.ProviderNoop, EmailJSPublicKey: "pk", EmailJSServiceID: "s"},
			want:  &noOpSender{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := NewSender(&config.Config{Email: tt.email}, logger.Discard())
			assert.IsType(t, tt.want, sender)
		})
	}
}

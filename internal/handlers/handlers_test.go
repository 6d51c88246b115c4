package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/flexxoo/website/domain/email"
	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/domain/tour"
	"github.com/flexxoo/website/internal/config"
	"github.com/flexxoo/website/pkg/logger"
)

type stubSender struct {
	status int
	sent   int
}

func (s *stubSender) Send(context.Context, email.TemplateMessage) (*email.SendResult, error) {
	s.sent++
	return &email.SendResult{StatusCode: s.status}, nil
}

type fixture struct {
	router http.Handler
	sender *stubSender
	svc    *leads.Service
}

func newFixture(t *testing.T, status int, limiter *rate.Limiter) *fixture {
	t.Helper()
	log := logger.Discard()

	steps, err := tour.DefaultSteps()
	require.NoError(t, err)
	metrics, err := leads.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	cfg := &config.Config{Email: config.EmailConfig{TemplateID: "template_flexxoo", ToEmail: "admin@flexxoo.com", Timeout: time.Second}}
	sender := &stubSender{status: status}
	svc := leads.NewService(leads.NewMemoryStore(), sender, email.NewTemplateService(log), metrics, cfg, log)

	h := NewHandler(svc, steps, log)
	h.now = func() time.Time { return time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC) }

	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, h, limiter)
	return &fixture{router: r, sender: sender, svc: svc}
}

func (f *fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPages(t *testing.T) {
	f := newFixture(t, http.StatusOK, nil)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Ready to Transform Your Practice?"},
		{"/", "See Flexxoo in Action"},
		{"/demo", "Smart Dashboard Overview"},
		{"/contact", "Send us a Message"},
		{"/privacy", "Last updated: 04/03/2025"},
		{"/terms", "Terms of Service"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := f.do(t, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t, http.StatusOK, nil)
	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDemo_Actions(t *testing.T) {
	f := newFixture(t, http.StatusOK, nil)

	tests := []struct {
		name    string
		query   string
		title   string
		refresh bool
	}{
		{"initial", "", "Smart Dashboard Overview", false},
		{"next", "step=0&elapsed=0&playing=false&action=next", "Smart Appointment Scheduling", false},
		{"previous wraps", "step=0&elapsed=0&playing=false&action=previous", "WhatsApp Patient Engagement", false},
		{"goto", "step=0&elapsed=0&playing=true&action=goto&to=2", "Automated Billing &amp; Payments", false},
		{"goto out of range keeps state", "step=1&elapsed=0&playing=false&action=goto&to=9", "Smart Appointment Scheduling", false},
		{"play refreshes", "step=0&elapsed=0&playing=false&action=play", "Smart Dashboard Overview", true},
		{"tick advances step", "step=0&elapsed=3000&playing=true&action=tick", "Smart Appointment Scheduling", true},
		{"last tick pauses", "step=3&elapsed=4000&playing=true&action=tick", "Smart Dashboard Overview", false},
		{"bad state resets", "step=7&elapsed=-5&playing=true", "Smart Dashboard Overview", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, httptest.NewRequest(http.MethodGet, "/demo?"+tt.query, nil))
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<h3 class=\"text-white font-semibold\">"+tt.title+"</h3>")
			assert.Equal(t, tt.refresh, strings.Contains(body, `http-equiv="refresh"`))
		})
	}
}

func TestTourSteps(t *testing.T) {
	f := newFixture(t, http.StatusOK, nil)
	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/tour", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Steps []tour.Step `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Steps, 4)
	assert.Equal(t, "dashboard", body.Steps[0].ID)
	assert.Equal(t, 4500, body.Steps[3].DurationMs)
}

func TestSubmitDemoForm(t *testing.T) {
	valid := url.Values{
		"name":       {"Dr. Asha Rao"},
		"email":      {"asha@clinic.in"},
		"phone":      {"+91 98765 43210"},
		"clinicName": {"Rao Clinic"},
	}

	t.Run("delivered", func(t *testing.T) {
		f := newFixture(t, http.StatusOK, nil)
		rec := f.do(t, postForm("/demo-request", valid))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Demo request submitted! We&#39;ll contact you within 24 hours.")
		assert.NotContains(t, rec.Body.String(), `value="Dr. Asha Rao"`)
		assert.Equal(t, 1, f.sender.sent)
	})

	t.Run("invalid email keeps values", func(t *testing.T) {
		f := newFixture(t, http.StatusOK, nil)
		bad := url.Values{"name": {"Dr. Asha Rao"}, "email": {"nope"}}
		rec := f.do(t, postForm("/demo-request", bad))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter a valid email address")
		assert.Contains(t, rec.Body.String(), `value="Dr. Asha Rao"`)
		assert.Zero(t, f.sender.sent)
	})

	t.Run("provider rejects", func(t *testing.T) {
		f := newFixture(t, http.StatusBadRequest, nil)
		rec := f.do(t, postForm("/demo-request", valid))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to submit demo request. Please try again or contact us directly.")

		stored, err := f.svc.DemoRequests(context.Background())
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})
}

func TestSubmitContactForm(t *testing.T) {
	f := newFixture(t, http.StatusOK, nil)
	rec := f.do(t, postForm("/contact", url.Values{
		"name":    {"Asha"},
		"email":   {"asha@clinic.in"},
		"subject": {"Pricing"},
		"message": {"How much?"},
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message sent successfully!")

	missing := f.do(t, postForm("/contact", url.Values{"name": {"Asha"}, "email": {"asha@clinic.in"}}))
	assert.Equal(t, http.StatusUnprocessableEntity, missing.Code)
	assert.Contains(t, missing.Body.String(), "Please fill in all required fields")
}

func TestAPI(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		path       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"demo delivered", http.StatusOK, "/api/demo-requests", `{"name":"Asha","email":"asha@clinic.in"}`, http.StatusOK, ""},
		{"demo invalid phone", http.StatusOK, "/api/demo-requests", `{"name":"Asha","email":"asha@clinic.in","phone":"12"}`, http.StatusUnprocessableEntity, "validation_error"},
		{"demo delivery failed", http.StatusInternalServerError, "/api/demo-requests", `{"name":"Asha","email":"asha@clinic.in"}`, http.StatusBadGateway, "delivery_failed"},
		{"contact delivered", http.StatusOK, "/api/contact", `{"name":"Asha","email":"asha@clinic.in","subject":"Hi","message":"Hello"}`, http.StatusOK, ""},
		{"contact malformed", http.StatusOK, "/api/contact", `{"name":`, http.StatusBadRequest, "bad_request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.status, nil)
			rec := f.do(t, postJSON(tt.path, tt.body))
			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantCode == "" {
				assert.Equal(t, true, body["success"])
				assert.NotEmpty(t, body["id"])
				return
			}
			errBody := body["error"].(map[string]any)
			assert.Equal(t, tt.wantCode, errBody["code"])
		})
	}
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, http.StatusOK, rate.NewLimiter(rate.Every(time.Hour), 1))
	body := `{"name":"Asha","email":"asha@clinic.in"}`

	first := f.do(t, postJSON("/api/demo-requests", body))
	assert.Equal(t, http.StatusOK, first.Code)

	second := f.do(t, postJSON("/api/demo-requests", body))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "too_many_requests")

	pages := f.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, pages.Code)
}

func TestNewSubmitLimiter(t *testing.T) {
	t.Setenv("SUBMIT_RATE_PER_MINUTE", "0")
	cfg, err := config.Parse()
	require.NoError(t, err)

	off := NewSubmitLimiter(cfg)
	for range 100 {
		require.True(t, off.Allow())
	}

	on := NewSubmitLimiter(&config.Config{RateLimit: config.RateLimitConfig{PerMinute: 30, Burst: 2}})
	assert.True(t, on.Allow())
	assert.True(t, on.Allow())
	assert.False(t, on.Allow())
}

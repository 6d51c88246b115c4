package email

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexxoo/website/pkg/logger"
)

func TestTemplateService_DemoRequest(t *testing.T) {
	ts := NewTemplateService(logger.Discard())

	out, err := ts.Render("demo_request", TemplateContext{
		"name":            "Dr. Rajesh Kumar",
		"email":           "rajesh@apollo.in",
		"phone":           "+91 6362665904",
		"clinicName":      "Apollo & Sons",
		"specialty":       "Orthopedics",
		"currentSystem":   "Not specified",
		"timeSlot":        "Morning",
		"additionalNotes": "None provided",
	})

	require.NoError(t, err)
	assert.Contains(t, out, "• Name: Dr. Rajesh Kumar")
	assert.Contains(t, out, "• Clinic/Hospital: Apollo & Sons", "text output must not be HTML-escaped")
	assert.Contains(t, out, "Please contact them within 24 hours")
}

func TestTemplateService_ContactMessageOptionalPhone(t *testing.T) {
	ts := NewTemplateService(logger.Discard())

	withPhone, err := ts.Render("contact_message", TemplateContext{
		"name": "Anita", "email": "anita@clinic.in", "phone": "9876543210", "message": "Hello",
	})
	require.NoError(t, err)
	assert.Contains(t, withPhone, "9876543210")

	withoutPhone, err := ts.Render("contact_message", TemplateContext{
		"name": "Anita", "email": "anita@clinic.in", "message": "Hello",
	})
	require.NoError(t, err)
	assert.NotContains(t, withoutPhone, "·")
}

func TestTemplateService_Names(t *testing.T) {
	names, err := NewTemplateService(logger.Discard()).Names()

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"demo_request", "contact_message"}, names)
}

func TestTemplateService_Errors(t *testing.T) {
	ts := NewTemplateServiceFS(fstest.MapFS{
		"broken.txt.hbs": {Data: []byte("{{#if}}")},
	}, logger.Discard())

	_, err := ts.Render("missing", nil)
	assert.ErrorContains(t, err, "template not found")

	_, err = ts.Render("broken", nil)
	assert.ErrorContains(t, err, "failed to parse template")
}

func TestTemplateService_Caches(t *testing.T) {
	ts := NewTemplateServiceFS(fstest.MapFS{
		"hello.txt.hbs": {Data: []byte("Hello {{{name}}}")},
	}, logger.Discard())

	first, err := ts.Render("hello", TemplateContext{"name": "Flexxoo"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Flexxoo", first)
	assert.Len(t, ts.templateCache, 1)

	_, err = ts.Render("hello", TemplateContext{"name": "again"})
	require.NoError(t, err)
	assert.Len(t, ts.templateCache, 1)
}

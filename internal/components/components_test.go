package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/domain/tour"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestLayout(t *testing.T) {
	out := render(t, Layout(PageConfig{}, Hero()))
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Flexxoo - Healthcare Practice Management for India</title>")
	assert.Contains(t, out, "Healthcare Practice")
	assert.NotContains(t, out, "http-equiv")

	refreshing := render(t, Layout(PageConfig{Title: "Tour", RefreshURL: "/demo?step=1", RefreshSeconds: 1}))
	assert.Contains(t, refreshing, `http-equiv="refresh"`)
	assert.Contains(t, refreshing, `content="1; url=/demo?step=1"`)
}

func TestIcon(t *testing.T) {
	assert.Contains(t, render(t, Icon("lucide--check size-4", "")), `data-icon="lucide:check"`)
	assert.Contains(t, render(t, Icon("lucide--check size-4", "")), `class="iconify inline-block size-4"`)
	assert.Contains(t, render(t, Icon("lucide--check", "Done")), `aria-label="Done"`)
}

func TestFlashMessage(t *testing.T) {
	assert.Nil(t, FlashMessage(nil))
	out := render(t, FlashMessage(&Flash{Kind: FlashError, Message: "Please enter a valid email address"}))
	assert.Contains(t, out, "flash-error")
	assert.Contains(t, out, "Please enter a valid email address")
}

func TestDemoForm_KeepsValues(t *testing.T) {
	out := render(t, DemoForm(DemoFormState{
		Values: leads.DemoRequest{Name: "Asha <Rao>", TimeSlot: timeSlots[1]},
		Flash:  &Flash{Kind: FlashError, Message: "Please fill in all required fields"},
	}))
	assert.Contains(t, out, `action="/demo-request#demo-form"`)
	assert.Contains(t, out, `value="Asha &lt;Rao&gt;"`)
	assert.Contains(t, out, "Please fill in all required fields")
	assert.Contains(t, out, `selected`)
}

func TestContactPage(t *testing.T) {
	out := render(t, ContactPage(ContactFormState{Values: leads.ContactMessage{Message: "Hello"}}))
	assert.Contains(t, out, `action="/contact"`)
	assert.Contains(t, out, "Send us a Message")
	assert.Contains(t, out, ">Hello</textarea>")
}

func TestLegalPages(t *testing.T) {
	privacy := render(t, LegalPage(PrivacyPolicy("04/03/2025")))
	assert.Contains(t, privacy, "Privacy Policy")
	assert.Contains(t, privacy, "Last updated: 04/03/2025")
	assert.Contains(t, privacy, "dpo@flexxoo.com")

	terms := render(t, LegalPage(TermsOfService("04/03/2025")))
	assert.Contains(t, terms, "13. Changes to Terms")
	assert.Contains(t, terms, "legal@flexxoo.com")
}

func TestTourURL(t *testing.T) {
	u := TourURL("/demo", tour.State{Index: 2, ElapsedMs: 1500, Playing: true}, TourGoTo, 3)
	assert.Equal(t, "/demo?action=goto&elapsed=1500&playing=true&step=2&to=3#tour", u)

	plain := TourURL("/demo", tour.State{}, "", 0)
	assert.Equal(t, "/demo?elapsed=0&playing=false&step=0#tour", plain)
}

func TestProductTour(t *testing.T) {
	steps, err := tour.DefaultSteps()
	require.NoError(t, err)
	p, err := tour.Restore(steps, tour.State{Index: 1, ElapsedMs: 2250, Playing: true})
	require.NoError(t, err)

	out := render(t, ProductTour(NewTourView("/demo", p)))
	assert.Contains(t, out, "Smart Appointment Scheduling")
	assert.Contains(t, out, "Pause Demo")
	assert.Contains(t, out, "width: 50.0%")
	assert.Contains(t, out, "Next screen in 3s")
	assert.Contains(t, out, "Priya Sharma")
	assert.Equal(t, 1, strings.Count(out, "step-card-active"))
}

func TestTourScreen(t *testing.T) {
	for _, key := range []string{"dashboard", "appointments", "billing", "whatsapp"} {
		assert.NotEmpty(t, render(t, TourScreen(key)), key)
	}
	assert.Contains(t, render(t, TourScreen("unknown")), "Preview coming soon.")
}

package leads

import "time"

// Form identifies which website form produced a lead. Its Key is also the
// local log key the lead is retained under.
type Form string

const (
	FormDemoRequest Form = "demoRequests"
	FormContact     Form = "contactMessages"
)

// Key returns the local log key for the form.
func (f Form) Key() string { return string(f) }

// Label returns the form type shown in notification emails.
func (f Form) Label() string {
	switch f {
	case FormDemoRequest:
		return "Demo Request"
	case FormContact:
		return "Contact Form"
	default:
		return string(f)
	}
}

// DemoRequest is submitted from the landing page. Only name and email are
// enforced here; the page marks phone and clinic as required in the browser.
type DemoRequest struct {
	Name            string `json:"name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank"`
	Phone           string `json:"phone"`
	ClinicName      string `json:"clinicName"`
	Specialty       string `json:"specialty"`
	CurrentSystem   string `json:"currentSystem"`
	TimeSlot        string `json:"timeSlot"`
	AdditionalNotes string `json:"additionalNotes"`
}

// ContactMessage is submitted from the contact page. Phone is optional.
type ContactMessage struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// StoredDemoRequest is the locally retained copy of a sanitized DemoRequest.
type StoredDemoRequest struct {
	DemoRequest
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// StoredContactMessage is the locally retained copy of a sanitized ContactMessage.
type StoredContactMessage struct {
	ContactMessage
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Result is returned once a lead has been delivered.
type Result struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

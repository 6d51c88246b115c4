package leads

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxFieldLength bounds every sanitized field, in characters.
const MaxFieldLength = 1000

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[0-9]{10,13}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	markupReplacer  = strings.NewReplacer("<", "", ">", "")
)

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether phone is 10 to 13 digits with an optional
// leading +, ignoring spaces, hyphens and parentheses.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(phone))
}

// SanitizeInput strips < and >, trims surrounding whitespace and truncates
// to MaxFieldLength characters. It is idempotent.
func SanitizeInput(input string) string {
	out := strings.TrimSpace(markupReplacer.Replace(input))
	if utf8.RuneCountInString(out) <= MaxFieldLength {
		return out
	}
	runes := []rune(out)
	// The cut may land on whitespace; trim it so sanitizing again is a no-op.
	return strings.TrimRightFunc(string(runes[:MaxFieldLength]), isSpace)
}

func sanitizeEmail(email string) string {
	return strings.ToLower(SanitizeInput(email))
}

func isSpace(r rune) bool {
	return strings.TrimSpace(string(r)) == ""
}

// Sanitized returns a copy with every field passed through SanitizeInput.
func (d DemoRequest) Sanitized() DemoRequest {
	return DemoRequest{
		Name:            SanitizeInput(d.Name),
		Email:           sanitizeEmail(d.Email),
		Phone:           SanitizeInput(d.Phone),
		ClinicName:      SanitizeInput(d.ClinicName),
		Specialty:       SanitizeInput(d.Specialty),
		CurrentSystem:   SanitizeInput(d.CurrentSystem),
		TimeSlot:        SanitizeInput(d.TimeSlot),
		AdditionalNotes: SanitizeInput(d.AdditionalNotes),
	}
}

// Sanitized returns a copy with every field passed through SanitizeInput.
func (c ContactMessage) Sanitized() ContactMessage {
	return ContactMessage{
		Name:    SanitizeInput(c.Name),
		Email:   sanitizeEmail(c.Email),
		Phone:   SanitizeInput(c.Phone),
		Subject: SanitizeInput(c.Subject),
		Message: SanitizeInput(c.Message),
	}
}

// checker runs the presence, email and phone checks, in that order.
type checker struct {
	v *validator.Validate
}

func newChecker() *checker {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &checker{v: v}
}

func (c *checker) check(form any, email, phone string) error {
	if err := c.v.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{Reason: MissingField, Field: verrs[0].Field()}
		}
		return err
	}
	if !IsValidEmail(email) {
		return &ValidationError{Reason: InvalidEmail, Field: "email"}
	}
	if strings.TrimSpace(phone) != "" && !IsValidPhone(phone) {
		return &ValidationError{Reason: InvalidPhone, Field: "phone"}
	}
	return nil
}

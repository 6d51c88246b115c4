package leads

import (
	"errors"
	"fmt"

	"github.com/flexxoo/website/pkg/apperror"
)

// Reason classifies a ValidationError.
type Reason string

const (
	MissingField Reason = "missing_field"
	InvalidEmail Reason = "invalid_email"
	InvalidPhone Reason = "invalid_phone"
)

// ValidationError is a local precondition failure. Leads that fail
// validation never reach the email provider.
type ValidationError struct {
	Reason Reason
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}

// UserMessage is the corrective message shown next to the form.
func (e *ValidationError) UserMessage() string {
	switch e.Reason {
	case InvalidEmail:
		return "Please enter a valid email address"
	case InvalidPhone:
		return "Please enter a valid phone number"
	default:
		return "Please fill in all required fields"
	}
}

// DeliveryError means the email provider was unreachable or refused the
// lead. The lead has still been retained locally unless StoreErr is set.
type DeliveryError struct {
	Form       Form
	StatusCode int
	Err        error
	StoreErr   error
}

func (e *DeliveryError) Error() string {
	msg := fmt.Sprintf("deliver %s: %v", e.Form, e.Err)
	if e.StoreErr != nil {
		msg += fmt.Sprintf(" (local copy failed: %v)", e.StoreErr)
	}
	return msg
}

func (e *DeliveryError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.StoreErr != nil {
		errs = append(errs, e.StoreErr)
	}
	return errs
}

// UserMessage asks the visitor to retry or reach out directly.
func (e *DeliveryError) UserMessage() string {
	if e.Form == FormContact {
		return "Failed to send message. Please try again or contact us directly."
	}
	return "Failed to submit demo request. Please try again or contact us directly."
}

// ToAppError maps pipeline errors onto HTTP-facing application errors.
func ToAppError(err error) *apperror.Error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return apperror.ErrValidation.
			WithMessage(verr.UserMessage()).
			WithDetails(map[string]any{"reason": string(verr.Reason), "field": verr.Field}).
			WithInternal(err)
	}
	var derr *DeliveryError
	if errors.As(err, &derr) {
		return apperror.ErrDeliveryFailed.WithMessage(derr.UserMessage()).WithInternal(err)
	}
	return apperror.NewInternal("Something went wrong. Please try again or call us directly.", err)
}

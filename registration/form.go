package registration

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/strimtechdev/academy/catalog"
)

// State of a form instance.
type State int

const (
	// Editing accepts field updates and submit attempts.
	Editing State = iota
	// Submitting means a submission is in flight; further submits are no-ops.
	Submitting
	// Succeeded is terminal: the backend accepted the registration.
	Succeeded
	// Closed is terminal: the applicant cancelled.
	Closed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Editable field names accepted by (*Form).Set.
const (
	FieldFirstname   = "firstname"
	FieldLastname    = "lastname"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldState       = "state"
)

// EditableFields lists the applicant-typed fields in display order.
var EditableFields = []string{
	FieldFirstname, FieldLastname, FieldEmail, FieldPhoneNumber, FieldState,
}

// SubmitFunc performs the actual network submission. The form never talks
// to the network itself; whether the call goes directly to the enrollment
// backend or through the gateway is the caller's concern.
type SubmitFunc func(ctx context.Context, reg Registration) (json.RawMessage, error)

// Outcome is the transient result of one submission attempt. It drives the
// next UI transition and is not retained.
type Outcome struct {
	OK       bool
	Response json.RawMessage // opaque backend body on success
	Message  string          // human-readable failure otherwise
}

// Form is one registration session tied to a pre-selected course. It holds
// the five editable fields, the validation and submission error slots, and
// the in-flight flag that excludes re-entrant submits.
type Form struct {
	course catalog.Course
	ref    string

	firstname   string
	lastname    string
	email       string
	phoneNumber string
	state       string

	validationErr string
	submitErr     string
	inFlight      bool
	st            State
}

// NewForm opens a form for the given course, pre-seeded with the captured
// referral token (empty string when none).
func NewForm(course catalog.Course, ref string) *Form {
	return &Form{course: course, ref: ref, st: Editing}
}

// Set updates one editable field. Any pending validation error is cleared
// so the message never outlives the next keystroke; other fields and the
// submission error are untouched.
func (f *Form) Set(field, value string) error {
	switch field {
	case FieldFirstname:
		f.firstname = value
	case FieldLastname:
		f.lastname = value
	case FieldEmail:
		f.email = value
	case FieldPhoneNumber:
		f.phoneNumber = value
	case FieldState:
		f.state = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	f.validationErr = ""
	return nil
}

// Submit validates the form and, on pass, hands the assembled payload to
// fn. A submit while one is already in flight, or on a terminal form, is a
// no-op. The in-flight flag is cleared on every path out.
func (f *Form) Submit(ctx context.Context, fn SubmitFunc) Outcome {
	if f.inFlight {
		return Outcome{Message: "submission already in progress"}
	}
	if f.st != Editing {
		return Outcome{Message: "form is no longer open"}
	}

	if msg := f.validate(); msg != "" {
		f.validationErr = msg
		return Outcome{Message: msg}
	}

	f.inFlight = true
	f.st = Submitting
	defer func() { f.inFlight = false }()

	body, err := fn(ctx, f.Registration())
	if err != nil {
		f.st = Editing
		f.submitErr = err.Error()
		return Outcome{Message: err.Error()}
	}

	f.st = Succeeded
	f.submitErr = ""
	return Outcome{OK: true, Response: body}
}

// Close cancels the session. No state survives.
func (f *Form) Close() {
	f.st = Closed
}

// Registration merges the editable fields with the pre-selected course and
// referral token into the outbound payload.
func (f *Form) Registration() Registration {
	return Registration{
		Firstname:   f.firstname,
		Lastname:    f.lastname,
		Email:       f.email,
		PhoneNumber: f.phoneNumber,
		State:       f.state,
		CourseID:    f.course.Title,
		Ref:         f.ref,
	}
}

// Values returns the current field values keyed by field name, for
// re-rendering the form after a failed attempt.
func (f *Form) Values() map[string]string {
	return map[string]string{
		FieldFirstname:   f.firstname,
		FieldLastname:    f.lastname,
		FieldEmail:       f.email,
		FieldPhoneNumber: f.phoneNumber,
		FieldState:       f.state,
	}
}

func (f *Form) Course() catalog.Course { return f.course }
func (f *Form) Ref() string            { return f.ref }
func (f *Form) State() State           { return f.st }
func (f *Form) InFlight() bool         { return f.inFlight }

// ValidationError is the message from the last failed local validation, or
// "" when the form is clean.
func (f *Form) ValidationError() string { return f.validationErr }

// SubmissionError is the message from the last failed backend attempt.
func (f *Form) SubmissionError() string { return f.submitErr }

// validate runs the ordered local checks and returns the first failure.
func (f *Form) validate() string {
	for _, v := range []string{f.firstname, f.lastname, f.email, f.phoneNumber, f.state} {
		if v == "" {
			return msgMissingFields
		}
	}
	if !validEmail(f.email) {
		return msgInvalidEmail
	}
	if !validPhone(f.phoneNumber) {
		return msgInvalidPhone
	}
	return ""
}

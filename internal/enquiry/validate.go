package enquiry

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits shared by the form controller and the endpoint.
const (
	MinNameRunes    = 2
	MinOtherRunes   = 3
	MaxMessageRunes = 300
)

var (
	emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRx = regexp.MustCompile(`^[+()\-0-9\s]{7,20}$`)
)

// ValidEmail reports whether s looks like local@domain.tld after trimming.
func ValidEmail(s string) bool {
	return emailRx.MatchString(strings.TrimSpace(s))
}

// ValidPhone reports whether s is a permissive phone shape after trimming:
// digits, spaces, +, -, parentheses, 7 to 20 characters total.
func ValidPhone(s string) bool {
	return phoneRx.MatchString(strings.TrimSpace(s))
}

// FieldError identifies the first invalid field of a submission. Reason is
// the user-safe text returned to the client verbatim.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

// Validate checks the submission invariants in a fixed order and returns the
// first violation, or nil. Order matters only for which single error is
// reported when several fields are invalid: name, email, phone, message.
// Phone is optional and skipped when empty.
func (e Enquiry) Validate() *FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(e.Name)) < MinNameRunes {
		return &FieldError{Field: "name", Reason: "Invalid name"}
	}
	if !ValidEmail(e.Email) {
		return &FieldError{Field: "email", Reason: "Invalid email"}
	}
	if p := strings.TrimSpace(e.Phone); p != "" && !ValidPhone(p) {
		return &FieldError{Field: "phone", Reason: "Invalid phone"}
	}
	if strings.TrimSpace(e.Message) == "" || utf8.RuneCountInString(e.Message) > MaxMessageRunes {
		return &FieldError{Field: "message", Reason: "Message must be 1–300 characters"}
	}
	return nil
}

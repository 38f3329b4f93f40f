// Package form implements the headless enquiry-form controller: field state,
// reactive validation, the submit gate, and the network round trip for one
// modal session. The rendering layer drives it through Open/SetField/Submit/
// Close and reads Errors/Status back.
package form

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rnperera/portfolio-backend/internal/enquiry"
)

// Field names the editable inputs of the enquiry form.
type Field string

const (
	FieldCategory Field = "enquiryType"
	FieldOther    Field = "enquiryOther"
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldMessage  Field = "message"
)

// Input clamps applied at write time, independent of validation.
const (
	maxMessageRunes = enquiry.MaxMessageRunes
	maxOtherRunes   = 80
)

// Status copy shown after a submit resolves. Exactly one of these (or the
// endpoint's own error text) is set per attempt.
const (
	StatusSent         = "Thanks — your enquiry was sent. I'll get back to you soon."
	StatusSubmitFailed = "Something went wrong. Please try again."
	StatusNetworkDown  = "Network error. Please try again."
)

// Result is the endpoint's reply once any response was received. A transport
// failure with no response at all is reported as an error instead.
type Result struct {
	StatusCode int
	OK         bool
	Emailed    bool
	ID         string
	ErrorText  string
}

// Submitter performs the network round trip for one submission attempt.
type Submitter interface {
	Submit(ctx context.Context, e enquiry.Enquiry) (*Result, error)
}

// Controller owns all form state for one open/close cycle of the enquiry
// modal. Transitions are driven from a single goroutine; the one in-flight
// submit may resolve on another, so state is mutex-guarded.
type Controller struct {
	mu        sync.Mutex
	submitter Submitter
	scroll    ScrollLock

	open       bool
	generation uint64
	prevScroll bool

	category string
	other    string
	name     string
	email    string
	phone    string
	message  string

	submitting bool
	status     string
}

// NewController creates a controller backed by the given submitter. A nil
// scroll lock gets a private PageScroll.
func NewController(submitter Submitter, scroll ScrollLock) *Controller {
	if scroll == nil {
		scroll = &PageScroll{}
	}
	return &Controller{submitter: submitter, scroll: scroll}
}

// Open resets all fields and starts a fresh session. The category is set to
// initialCategory when it is a recognized value, otherwise to the first
// recognized value. Calling Open again while open resets from scratch;
// the scroll lock is acquired only on the closed-to-open transition.
func (c *Controller) Open(initialCategory string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		// Store-and-restore, not a hardcoded default: nested or repeated
		// acquisition keeps whatever lock state the page already had.
		c.prevScroll = c.scroll.Locked()
		c.scroll.SetLocked(true)
		c.open = true
	}

	// A new generation orphans any submit still in flight.
	c.generation++
	c.category = defaultCategory(initialCategory)
	c.other = ""
	c.name = ""
	c.email = ""
	c.phone = ""
	c.message = ""
	c.submitting = false
	c.status = ""
}

// Close ends the session and restores the prior scroll state. Field values
// are cleared by the next Open, not here. A submit still in flight when the
// session closes may resolve later but will not mutate state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	c.open = false
	c.scroll.SetLocked(c.prevScroll)
}

// SetField updates one field. The message and catch-all detail fields are
// clamped at write time so the stored value can never exceed its limit,
// independent of validation.
func (c *Controller) SetField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	switch field {
	case FieldCategory:
		c.category = value
	case FieldOther:
		c.other = clampRunes(value, maxOtherRunes)
	case FieldName:
		c.name = value
	case FieldEmail:
		c.email = value
	case FieldPhone:
		c.phone = value
	case FieldMessage:
		c.message = clampRunes(value, maxMessageRunes)
	}
}

// Value returns the current raw value of one field.
func (c *Controller) Value(field Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldCategory:
		return c.category
	case FieldOther:
		return c.other
	case FieldName:
		return c.name
	case FieldEmail:
		return c.email
	case FieldPhone:
		return c.phone
	case FieldMessage:
		return c.message
	}
	return ""
}

// Errors recomputes the validation errors from the current field values.
// Pure: no network, no side effects.
func (c *Controller) Errors() map[Field]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorsLocked()
}

func (c *Controller) errorsLocked() map[Field]string {
	errs := make(map[Field]string)
	if utf8.RuneCountInString(strings.TrimSpace(c.name)) < enquiry.MinNameRunes {
		errs[FieldName] = "Please enter your name (min 2 characters)."
	}
	if !enquiry.ValidEmail(c.email) {
		errs[FieldEmail] = "Please enter a valid email."
	}
	if p := strings.TrimSpace(c.phone); p != "" && !enquiry.ValidPhone(p) {
		errs[FieldPhone] = "Phone looks invalid (optional)."
	}
	if c.category == enquiry.CategoryOther && utf8.RuneCountInString(strings.TrimSpace(c.other)) < enquiry.MinOtherRunes {
		errs[FieldOther] = "Please specify (min 3 characters)."
	}
	if strings.TrimSpace(c.message) == "" {
		errs[FieldMessage] = "Please add a short message."
	}
	if utf8.RuneCountInString(c.message) > maxMessageRunes {
		errs[FieldMessage] = "Message must be 300 characters or less."
	}
	return errs
}

// CanSubmit reports whether a submit would proceed: the session is open, no
// submit is in flight, and validation passes.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	return c.open && !c.submitting && len(c.errorsLocked()) == 0
}

// Submit performs one network round trip and maps the outcome to a status
// message. It is a no-op unless CanSubmit. Blocks until the call resolves;
// run it on its own goroutine to keep the UI loop free. If the session
// closed or reopened while the call was in flight, the result is discarded
// without touching state.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if !c.canSubmitLocked() {
		c.mu.Unlock()
		return
	}
	c.status = ""
	c.submitting = true
	gen := c.generation
	payload := c.payloadLocked()
	c.mu.Unlock()

	res, err := c.submitter.Submit(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || c.generation != gen {
		return
	}
	c.submitting = false
	switch {
	case err != nil:
		c.status = StatusNetworkDown
	case res.OK:
		c.status = StatusSent
	case res.ErrorText != "":
		c.status = res.ErrorText
	default:
		c.status = StatusSubmitFailed
	}
}

// payloadLocked builds the trimmed wire payload. The catch-all detail is
// cleared unless the catch-all category is selected.
func (c *Controller) payloadLocked() enquiry.Enquiry {
	var other string
	if c.category == enquiry.CategoryOther {
		other = strings.TrimSpace(c.other)
	}
	return enquiry.Enquiry{
		Type:    c.category,
		Other:   other,
		Name:    strings.TrimSpace(c.name),
		Email:   strings.TrimSpace(c.email),
		Phone:   strings.TrimSpace(c.phone),
		Message: strings.TrimSpace(c.message),
	}
}

// IsOpen reports whether a session is active.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Submitting reports whether a submit is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Status returns the last resolved outcome message, or "" when none is set.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func defaultCategory(s string) string {
	if enquiry.KnownCategory(s) {
		return s
	}
	return enquiry.Categories[0]
}

func clampRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

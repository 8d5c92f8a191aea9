package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Tuka1911/dymokminiapp/models"
)

// Status of the checkout submission.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var (
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrAlreadyCompleted   = errors.New("checkout already completed")
)

// ValidationError is a recoverable, user-visible form error. It never
// advances the flow past idle.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// ValidatePhone checks the contact phone: optional leading +, 10-15 digits.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return &ValidationError{Field: "phone", Msg: "must be 10-15 digits with an optional leading +"}
	}
	return nil
}

// Form is the editable checkout state.
type Form struct {
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DeviceCheck bool   `json:"device_check"`
	PromoCode   string `json:"promo_code"`
	Zone        Zone   `json:"zone"`
}

// Config tunes checkout policy. RequireAddress reflects that some store
// setups let the operator chase the address later; the outside zone is
// always exempt since its delivery is quoted manually anyway.
type Config struct {
	RequireAddress bool
	SubmitTimeout  time.Duration
	Rules          Rules
}

const defaultSubmitTimeout = 15 * time.Second

// Flow is the checkout state machine. A submission attempt holds a token
// from Begin; Finish applies the outcome only if the token is still
// current, so results landing after a reset (torn-down checkout view) are
// discarded rather than applied.
type Flow struct {
	mu     sync.Mutex
	cfg    Config
	form   Form
	status Status
	errMsg string
	gen    int
}

func NewFlow(cfg Config) *Flow {
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = defaultSubmitTimeout
	}
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules()
	}
	return &Flow{cfg: cfg, status: StatusIdle}
}

// Update replaces the form fields. Allowed while idle or after a failed
// attempt (which drops back to idle for the retry); rejected mid-flight
// and after success.
func (f *Flow) Update(form Form) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.status {
	case StatusSubmitting:
		return ErrSubmissionInFlight
	case StatusSucceeded:
		return ErrAlreadyCompleted
	}
	f.form = form
	f.status = StatusIdle
	f.errMsg = ""
	return nil
}

// Form returns the current field values.
func (f *Flow) Form() Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Status returns the submission status and, when failed, its message.
func (f *Flow) Status() (Status, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.errMsg
}

// Validate checks the form against the configured policy.
func (f *Flow) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validate()
}

func (f *Flow) validate() error {
	if err := ValidatePhone(f.form.Phone); err != nil {
		return err
	}
	if _, err := ParseZone(string(f.form.Zone)); err != nil {
		return &ValidationError{Field: "zone", Msg: "choose a delivery zone"}
	}
	if f.cfg.RequireAddress && f.form.Zone != ZoneOutside && strings.TrimSpace(f.form.Address) == "" {
		return &ValidationError{Field: "address", Msg: "delivery address is required"}
	}
	return nil
}

// Begin validates the form and enters submitting. The returned token must
// be passed to Finish. Duplicate submissions while one is in flight are
// rejected, as is submitting a completed checkout.
func (f *Flow) Begin() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.status {
	case StatusSubmitting:
		return 0, ErrSubmissionInFlight
	case StatusSucceeded:
		return 0, ErrAlreadyCompleted
	}
	if err := f.validate(); err != nil {
		f.status = StatusIdle
		f.errMsg = err.Error()
		return 0, err
	}
	f.status = StatusSubmitting
	f.errMsg = ""
	f.gen++
	return f.gen, nil
}

// Finish records the submission outcome. A stale token (the flow was
// reset while the attempt was in flight) is discarded: the result must
// not reach a torn-down checkout. Failure keeps the form intact so the
// user can retry without re-entering anything.
func (f *Flow) Finish(token int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token != f.gen || f.status != StatusSubmitting {
		return
	}
	if err != nil {
		f.status = StatusFailed
		f.errMsg = err.Error()
		return
	}
	f.status = StatusSucceeded
}

// Reset starts a fresh checkout context: blank form, idle status. Any
// in-flight attempt's token goes stale.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = Form{}
	f.status = StatusIdle
	f.errMsg = ""
	f.gen++
}

// SubmitTimeout is the ceiling after which an attempt counts as failed.
func (f *Flow) SubmitTimeout() time.Duration {
	return f.cfg.SubmitTimeout
}

// Quote derives totals for the current form against a cart subtotal.
func (f *Flow) Quote(subtotal int) models.Totals {
	f.mu.Lock()
	form := f.form
	rules := f.cfg.Rules
	f.mu.Unlock()
	return QuoteTotals(rules, form.PromoCode, form.Zone, subtotal)
}

// QuoteTotals computes subtotal, discount, delivery fee and grand total.
// The discount is a single global multiplier over the subtotal, never
// per-line, so it is independent of line order.
func QuoteTotals(rules Rules, promoCode string, zone Zone, subtotal int) models.Totals {
	if rules == nil {
		rules = DefaultRules()
	}
	discount := rules.Discount(promoCode, subtotal)
	fee := FeeForZone(zone)
	return models.Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		Total:       subtotal - discount + fee.Amount,
	}
}

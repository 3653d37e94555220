// Package phone merges the two halves of a phone-number input into a single
// backend-compatible identifier. It is the only place a multi-part control
// becomes one canonical string, so malformed numbers are caught before any
// network call.
package phone

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-confirmform/pkg/model"
)

// DefaultDialCode seeds new phone state when no country selection was made.
const DefaultDialCode = "+1"

// ErrMalformedNumber signals that the composed number does not look like a
// dialable phone number.
var ErrMalformedNumber = errors.New("phone: malformed phone number")

// E.164 with an optional plus; the dial code supplies the country prefix.
var rePhone = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// State holds the country dial code and the local number as entered.
type State struct {
	DialCode    string
	LocalNumber string
}

// NewState returns a state seeded with the default dial code.
func NewState() State {
	return State{DialCode: DefaultDialCode}
}

// Compose merges the dial code and local number into one identifier string,
// validating the result against the expected phone-number shape.
func Compose(s State) (string, error) {
	dial := strings.TrimSpace(s.DialCode)
	if dial == "" {
		dial = DefaultDialCode
	}
	number := dial + strings.TrimSpace(s.LocalNumber)
	if !rePhone.MatchString(number) {
		return "", fmt.Errorf("%w: %q", ErrMalformedNumber, number)
	}
	return number, nil
}

// Apply mutates the state from a raw input event: the local number is always
// taken from the event value, the dial code only when the event carries a
// selection. Pure mutation, no I/O.
func Apply(s *State, ev model.ChangeEvent) {
	if s == nil {
		return
	}
	if dial := strings.TrimSpace(ev.DialCode); dial != "" {
		s.DialCode = dial
	}
	s.LocalNumber = ev.Value
}

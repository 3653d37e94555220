package model

import (
	"fmt"
	"strings"
)

// FieldType is the declared kind of a form input. The four built-in kinds
// drive internal state tracking; any other value is treated as an opaque
// custom type whose state is managed entirely by the caller.
type FieldType string

const (
	FieldTypeUsername FieldType = "username"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone_number"
	FieldTypeCode     FieldType = "code"
)

// Known reports whether the type is one of the built-in kinds the input
// router dispatches on.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeUsername, FieldTypeEmail, FieldTypePhone, FieldTypeCode:
		return true
	default:
		return false
	}
}

// IdentityAlias selects which field type carries the primary account
// identifier and how it is composed before submission. It is fixed for the
// lifetime of one form configuration.
type IdentityAlias string

const (
	AliasUsername IdentityAlias = "username"
	AliasEmail    IdentityAlias = "email"
	AliasPhone    IdentityAlias = "phone_number"
)

// ParseAlias validates a raw alias string against the three recognized
// values. An unrecognized alias is a configuration error, not a runtime one.
func ParseAlias(raw string) (IdentityAlias, error) {
	switch alias := IdentityAlias(strings.TrimSpace(raw)); alias {
	case AliasUsername, AliasEmail, AliasPhone:
		return alias, nil
	default:
		return "", fmt.Errorf("model: unrecognized identity alias %q", raw)
	}
}

// FieldType returns the field type that represents this alias in a form.
func (a IdentityAlias) FieldType() FieldType {
	return FieldType(a)
}

// ChangeEvent carries one raw input update from a rendering collaborator.
// DialCode is populated only by phone controls that also changed the
// country dial-code selection.
type ChangeEvent struct {
	Name     string
	Value    string
	DialCode string
}

// ChangeHandler consumes a field change event.
type ChangeHandler func(ChangeEvent)

// HintAction binds a caller-visible label to a callback, e.g. the "resend
// code" action attached to the confirmation-code field.
type HintAction struct {
	Label  string
	Invoke func() error
}

// Hint is the renderable attached below a field: descriptive text, an
// optional action, and optional pre-sanitized markup.
type Hint struct {
	Text   string
	Markup string
	Action *HintAction
}

// Empty reports whether the hint carries nothing worth rendering.
func (h *Hint) Empty() bool {
	return h == nil || (strings.TrimSpace(h.Text) == "" && strings.TrimSpace(h.Markup) == "" && h.Action == nil)
}

// Field describes one input in rendering order. Ordering inside a field
// slice is significant and caller-controlled.
type Field struct {
	Type        FieldType
	Name        string
	Label       string
	Placeholder string
	Hint        *Hint
	Required    bool
	Value       string
	Disabled    bool
	DialCode    string
	OnChange    ChangeHandler
}

// Package binding routes raw field-change events into typed controller
// state based on each field's declared type.
package binding

import (
	"strings"

	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/phone"
)

// Values is the typed state the router writes into. It is owned exclusively
// by one controller instance and must only be mutated through the router.
type Values struct {
	Identifier string
	Code       string
	Phone      phone.State
}

// NewValues seeds the state, including the default phone dial code.
func NewValues() Values {
	return Values{Phone: phone.NewState()}
}

// Router maps field types to mutations over one Values instance.
type Router struct {
	values *Values
}

// NewRouter binds a router to the supplied state. A nil values pointer
// yields a router whose handlers are all no-ops.
func NewRouter(values *Values) *Router {
	return &Router{values: values}
}

// HandlerFor returns the change handler for the declared field type.
// Unrecognized types get no handler at all, so fully custom fields can
// manage their own state without the router interfering.
func (r *Router) HandlerFor(t model.FieldType) model.ChangeHandler {
	if r == nil || r.values == nil {
		return nil
	}
	switch t {
	case model.FieldTypeUsername, model.FieldTypeEmail:
		return func(ev model.ChangeEvent) {
			r.values.Identifier = ev.Value
		}
	case model.FieldTypePhone:
		return func(ev model.ChangeEvent) {
			phone.Apply(&r.values.Phone, ev)
		}
	case model.FieldTypeCode:
		return func(ev model.ChangeEvent) {
			r.values.Code = ev.Value
		}
	default:
		return nil
	}
}

// SetField applies a programmatic, non-event field update using the same
// type dispatch as HandlerFor. Collaborators use it to pre-populate fields
// outside of user interaction. For phone fields a supplied dial code updates
// state only when present; the local number is always applied.
func (r *Router) SetField(f model.Field) {
	if r == nil || r.values == nil {
		return
	}
	switch f.Type {
	case model.FieldTypeUsername, model.FieldTypeEmail:
		r.values.Identifier = f.Value
	case model.FieldTypePhone:
		if dial := strings.TrimSpace(f.DialCode); dial != "" {
			r.values.Phone.DialCode = dial
		}
		r.values.Phone.LocalNumber = f.Value
	case model.FieldTypeCode:
		r.values.Code = f.Value
	}
}

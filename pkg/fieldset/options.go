package fieldset

import (
	"strings"

	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/render"
)

// FilterFunc post-processes the built field list. It receives copies, so
// mutating its input cannot corrupt internal state; its return value
// replaces the list.
type FilterFunc func([]model.Field) []model.Field

// Option customises the builder configuration.
type Option func(*options)

type options struct {
	overrides     []model.Field
	typeNames     []string
	filter        FilterFunc
	knownUsername string
	translator    render.Translator
	locale        string
}

// WithOverrides replaces the default field template with caller-supplied
// descriptors. The builder never mutates these in place.
func WithOverrides(fields []model.Field) Option {
	return func(o *options) {
		o.overrides = fields
	}
}

// WithTypeNames supplies the override list as bare type names. Shorthand
// lists bypass the filter hook entirely and are used as-is downstream.
func WithTypeNames(names []string) Option {
	return func(o *options) {
		o.typeNames = names
	}
}

// WithFilter registers a hook applied to the whole list after building.
// It only runs for structured descriptor overrides, never for the bare
// type-name shorthand.
func WithFilter(fn FilterFunc) Option {
	return func(o *options) {
		o.filter = fn
	}
}

// WithKnownUsername pre-fills and disables the identity field, e.g. when the
// user arrives from a prior sign-up step.
func WithKnownUsername(username string) Option {
	return func(o *options) {
		o.knownUsername = strings.TrimSpace(username)
	}
}

// WithTranslator resolves the default labels, placeholders, and hint text.
func WithTranslator(t render.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithLocale forwards a locale to the translator.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

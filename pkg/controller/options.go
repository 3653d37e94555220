package controller

import (
	"github.com/goliatone/go-confirmform/pkg/fieldset"
	"github.com/goliatone/go-confirmform/pkg/render"
)

// Option customises the controller configuration.
type Option func(*Controller)

// WithUser supplies the prior user context: a known username pre-fills the
// identity field, and carryover sign-up attributes enable auto-sign-in.
func WithUser(user User) Option {
	return func(c *Controller) {
		c.user = user
	}
}

// WithSignIn registers the delegated sign-in capability invoked after a
// successful confirmation when carryover attributes include a password.
func WithSignIn(fn SignInFunc) Option {
	return func(c *Controller) {
		c.signIn = fn
	}
}

// OnStateChange registers the state-change sink.
func OnStateChange(fn StateHandler) Option {
	return func(c *Controller) {
		c.onState = fn
	}
}

// OnError registers the error sink that receives every recoverable failure.
func OnError(fn ErrorHandler) Option {
	return func(c *Controller) {
		c.onError = fn
	}
}

// WithTranslator resolves display strings through the supplied translator.
func WithTranslator(t render.Translator) Option {
	return func(c *Controller) {
		c.translator = t
	}
}

// WithLocale forwards a locale to the translator.
func WithLocale(locale string) Option {
	return func(c *Controller) {
		c.locale = locale
	}
}

// WithTextKeys overrides the header and submit-button display-string keys.
func WithTextKeys(headerKey, submitKey string) Option {
	return func(c *Controller) {
		if headerKey != "" {
			c.headerKey = headerKey
		}
		if submitKey != "" {
			c.submitKey = submitKey
		}
	}
}

// WithFieldOptions forwards options to the field template builder, e.g.
// override lists or a filter hook.
func WithFieldOptions(opts ...fieldset.Option) Option {
	return func(c *Controller) {
		c.fieldOpts = append(c.fieldOpts, opts...)
	}
}

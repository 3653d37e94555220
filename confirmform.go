// Package confirmform builds and drives "confirm your sign-up" forms: it
// composes the field descriptors for an identity alias, tracks submission
// state, and renders the form through pluggable renderers.
package confirmform

import (
	"context"

	"github.com/goliatone/go-confirmform/pkg/controller"
	"github.com/goliatone/go-confirmform/pkg/fieldset"
	"github.com/goliatone/go-confirmform/pkg/formschema"
	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/openapi"
	"github.com/goliatone/go-confirmform/pkg/render"
	"github.com/goliatone/go-confirmform/pkg/renderers/vanilla"
)

// Field describes one form field; alias exported via the root package for
// convenience.
type Field = model.Field

// Hint is the helper text rendered below a field.
type Hint = model.Hint

// IdentityAlias names the attribute used to identify the account.
type IdentityAlias = model.IdentityAlias

// Controller drives the confirmation flow.
type Controller = controller.Controller

// Backend is the confirmation service the controller talks to.
type Backend = controller.Backend

// AuthState names the screen the application should show next.
type AuthState = controller.AuthState

// User carries sign-up carryover data into the controller.
type User = controller.User

// RenderOptions describes per-request overrides renderers can use to surface
// validation errors or pick a locale.
type RenderOptions = render.RenderOptions

// New constructs a confirmation flow controller for the given identity alias.
func New(alias string, backend Backend, opts ...controller.Option) (*Controller, error) {
	return controller.New(alias, backend, opts...)
}

// DefaultRegistry builds a renderer registry pre-loaded with the built-in
// HTML renderer so callers can pick an output format by name.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	htmlRenderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// Render resolves a renderer by name from the registry and renders the
// controller's current view.
func Render(ctx context.Context, registry *render.Registry, rendererName string, ctrl *Controller, opts RenderOptions) ([]byte, error) {
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, ctrl.View(), opts)
}

// RenderHTML builds a controller view and renders it with the vanilla HTML
// renderer. It is the simplest entry point for callers that just want markup.
func RenderHTML(ctx context.Context, ctrl *Controller, opts ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(opts...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, ctrl.View(), render.RenderOptions{})
}

// SchemaOptions converts a loaded form schema into controller options:
// descriptor overrides plus any display text the document declares. Options
// supplied by the caller after these take precedence.
func SchemaOptions(store *formschema.Store, alias IdentityAlias) []controller.Option {
	if store == nil {
		return nil
	}
	form, ok := store.Form(alias)
	if !ok {
		return nil
	}

	var opts []controller.Option
	if overrides := form.Overrides(); len(overrides) > 0 {
		opts = append(opts, controller.WithFieldOptions(fieldset.WithOverrides(overrides)))
	}
	if form.Header != "" || form.SubmitLabel != "" {
		opts = append(opts, controller.WithTranslator(schemaTranslator(form)))
	}
	return opts
}

// schemaTranslator serves the display strings a schema document declares and
// reports everything else as missing so the built-in fallbacks apply.
func schemaTranslator(form formschema.Form) render.Translator {
	return render.TranslatorFunc(func(locale, key string, params ...any) (string, error) {
		switch key {
		case render.KeyHeader:
			if form.Header != "" {
				return form.Header, nil
			}
		case render.KeySubmitLabel:
			if form.SubmitLabel != "" {
				return form.SubmitLabel, nil
			}
		}
		return "", render.ErrMissingTranslator
	})
}

// FieldsFromOpenAPI derives descriptor overrides from an OpenAPI document's
// confirmation operation.
func FieldsFromOpenAPI(ctx context.Context, doc []byte, operationID string) ([]Field, error) {
	return openapi.DeriveFields(ctx, doc, operationID, openapi.Options{})
}

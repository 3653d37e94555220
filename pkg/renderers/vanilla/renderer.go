// Package vanilla renders the confirm sign-up form as dependency-free HTML
// using embedded templates.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/render"
	rendertemplate "github.com/goliatone/go-confirmform/pkg/render/template"
	gotemplate "github.com/goliatone/go-confirmform/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies a resolved go-theme configuration: tokens override the
// default chrome classes and CSS variables are emitted on the form element.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// Renderer emits HTML for a confirm sign-up form view.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, theme: cfg.theme}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form HTML. Field descriptors are flattened into plain
// maps first; change handlers never reach the template layer.
func (r *Renderer) Render(_ context.Context, view render.FormView, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form", map[string]any{
		"form":   formContext(view, options),
		"chrome": r.chromeClasses(),
		"theme":  r.themeContext(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func formContext(view render.FormView, options render.RenderOptions) map[string]any {
	fields := make([]map[string]any, 0, len(view.Fields))
	for _, field := range view.Fields {
		fields = append(fields, fieldContext(field, options))
	}
	return map[string]any{
		"header":      view.Header,
		"submitLabel": view.SubmitLabel,
		"loading":     view.Loading,
		"fields":      fields,
	}
}

func fieldContext(field model.Field, options render.RenderOptions) map[string]any {
	name := field.Name
	if name == "" {
		name = string(field.Type)
	}

	ctx := map[string]any{
		"type":        string(field.Type),
		"name":        name,
		"label":       field.Label,
		"placeholder": field.Placeholder,
		"value":       field.Value,
		"required":    field.Required,
		"disabled":    field.Disabled,
		"dialCode":    field.DialCode,
		"inputType":   inputType(field.Type),
		"errors":      options.Errors[name],
	}
	if !field.Hint.Empty() {
		ctx["hintText"] = field.Hint.Text
		ctx["hintMarkup"] = field.Hint.Markup
		if field.Hint.Action != nil {
			ctx["hintAction"] = field.Hint.Action.Label
		}
	}
	return ctx
}

func inputType(t model.FieldType) string {
	switch t {
	case model.FieldTypeEmail:
		return "email"
	case model.FieldTypePhone:
		return "tel"
	default:
		return "text"
	}
}

var defaultChrome = map[string]string{
	"section":    "confirmform-section",
	"header":     "confirmform-header",
	"field":      "confirmform-field",
	"label":      "confirmform-label",
	"input":      "confirmform-input",
	"dialCode":   "confirmform-dial-code",
	"hint":       "confirmform-hint",
	"hintAction": "confirmform-hint-action",
	"error":      "confirmform-error",
	"submit":     "confirmform-submit",
}

// chromeClasses merges theme tokens over the default chrome class names.
func (r *Renderer) chromeClasses() map[string]string {
	out := make(map[string]string, len(defaultChrome))
	for key, class := range defaultChrome {
		out[key] = class
	}
	if r.theme == nil {
		return out
	}
	for key, token := range r.theme.Tokens {
		if _, ok := out[key]; ok && strings.TrimSpace(token) != "" {
			out[key] = token
		}
	}
	return out
}

func (r *Renderer) themeContext() map[string]any {
	if r.theme == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":         r.theme.Theme,
		"variant":      r.theme.Variant,
		"cssVarsStyle": cssVarsStyle(r.theme.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	parts := make([]string, 0, len(vars))
	for name, value := range vars {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		parts = append(parts, name+": "+strings.TrimSpace(value))
	}
	if len(parts) == 0 {
		return ""
	}
	// Deterministic output keeps snapshots stable.
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

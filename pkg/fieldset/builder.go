// Package fieldset builds the ordered field descriptor list for the confirm
// sign-up form, either from the default two-field template or from
// caller-supplied overrides.
package fieldset

import (
	"github.com/goliatone/go-confirmform/pkg/binding"
	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/phone"
	"github.com/goliatone/go-confirmform/pkg/render"
)

// ResendFunc is the action bound into the confirmation-code hint.
type ResendFunc func() error

// Builder produces field descriptor lists wired into an input router.
type Builder struct {
	opts options
}

// New creates a Builder applying any provided options.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&b.opts)
	}
	return b
}

// Build returns the ordered field list for the given alias. Every
// descriptor, default or overridden, has its change handler wired into the
// router; descriptors of unrecognized types keep whatever handler the
// caller supplied, or none.
func (b *Builder) Build(alias model.IdentityAlias, router *binding.Router, resend ResendFunc) ([]model.Field, error) {
	if _, err := model.ParseAlias(string(alias)); err != nil {
		return nil, err
	}

	var fields []model.Field
	switch {
	case len(b.opts.overrides) > 0:
		fields = b.applyOverrides(router, resend)
	case len(b.opts.typeNames) > 0:
		// Bare type-name shorthand: used as-is downstream, no filter pass.
		return b.fromTypeNames(router, resend), nil
	default:
		fields = b.defaults(alias, router, resend)
	}

	if b.opts.filter != nil {
		fields = b.opts.filter(model.CloneFields(fields))
	}
	return fields, nil
}

// applyOverrides shallow-copies every supplied descriptor, synthesizes the
// default hint for code fields that lack one, and chains custom handlers in
// front of the router's default handling so they augment rather than
// replace internal state tracking.
func (b *Builder) applyOverrides(router *binding.Router, resend ResendFunc) []model.Field {
	out := make([]model.Field, 0, len(b.opts.overrides))
	for _, supplied := range b.opts.overrides {
		field := supplied.Clone()
		if field.Type == model.FieldTypeCode && field.Hint.Empty() {
			field.Hint = b.defaultCodeHint(resend)
		}
		// A declarative hint action has a label but no callback; the resend
		// action is the only thing it can mean for a code field.
		if field.Type == model.FieldTypeCode && field.Hint != nil && field.Hint.Action != nil && field.Hint.Action.Invoke == nil {
			field.Hint.Action.Invoke = resend
		}
		field.OnChange = chainHandlers(field.OnChange, router.HandlerFor(field.Type))
		out = append(out, field)
	}
	return out
}

func (b *Builder) fromTypeNames(router *binding.Router, resend ResendFunc) []model.Field {
	out := make([]model.Field, 0, len(b.opts.typeNames))
	for _, name := range b.opts.typeNames {
		fieldType := model.FieldType(name)
		field := model.Field{
			Type:     fieldType,
			Name:     name,
			OnChange: router.HandlerFor(fieldType),
		}
		if fieldType == model.FieldTypeCode {
			field.Hint = b.defaultCodeHint(resend)
		}
		out = append(out, field)
	}
	return out
}

// defaults yields exactly two descriptors: the identity field for the alias
// followed by the confirmation-code field.
func (b *Builder) defaults(alias model.IdentityAlias, router *binding.Router, resend ResendFunc) []model.Field {
	identityType := alias.FieldType()
	identity := model.Field{
		Type:        identityType,
		Name:        string(identityType),
		Label:       b.identityLabel(alias),
		Placeholder: b.identityPlaceholder(alias),
		Required:    true,
		Value:       b.opts.knownUsername,
		Disabled:    b.opts.knownUsername != "",
		OnChange:    router.HandlerFor(identityType),
	}
	if identityType == model.FieldTypePhone {
		identity.DialCode = phone.DefaultDialCode
	}

	code := model.Field{
		Type:        model.FieldTypeCode,
		Name:        string(model.FieldTypeCode),
		Label:       b.text(render.KeyCodeLabel, "Confirmation Code"),
		Placeholder: b.text(render.KeyCodePlaceholder, "Enter your code"),
		Required:    true,
		Hint:        b.defaultCodeHint(resend),
		OnChange:    router.HandlerFor(model.FieldTypeCode),
	}

	return []model.Field{identity, code}
}

func (b *Builder) defaultCodeHint(resend ResendFunc) *model.Hint {
	return &model.Hint{
		Text: b.text(render.KeyLostCodePrompt, "Lost your code? "),
		Action: &model.HintAction{
			Label:  b.text(render.KeyResendCodeAction, "Resend Code"),
			Invoke: resend,
		},
	}
}

func (b *Builder) identityLabel(alias model.IdentityAlias) string {
	switch alias {
	case model.AliasEmail:
		return b.text(render.KeyEmailLabel, "Email")
	case model.AliasPhone:
		return b.text(render.KeyPhoneLabel, "Phone Number")
	default:
		return b.text(render.KeyUsernameLabel, "Username")
	}
}

func (b *Builder) identityPlaceholder(alias model.IdentityAlias) string {
	switch alias {
	case model.AliasEmail:
		return "Enter your email"
	case model.AliasPhone:
		return "Enter your phone number"
	default:
		return "Enter your username"
	}
}

func (b *Builder) text(key, fallback string) string {
	return render.Text(b.opts.translator, b.opts.locale, key, fallback)
}

// chainHandlers invokes the caller's custom handler first, then forwards the
// event to the router's default handling for the field's declared type.
func chainHandlers(custom, fallback model.ChangeHandler) model.ChangeHandler {
	switch {
	case custom == nil:
		return fallback
	case fallback == nil:
		return custom
	default:
		return func(ev model.ChangeEvent) {
			custom(ev)
			fallback(ev)
		}
	}
}

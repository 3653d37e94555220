// Package formschema loads declarative confirm-form configuration from
// YAML or JSON documents: per-alias field override lists, display text, and
// sanitized hint markup.
package formschema

import (
	"strings"

	"github.com/goliatone/go-confirmform/pkg/model"
)

// Store keeps the parsed form configurations keyed by identity alias. It is
// safe for concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[model.IdentityAlias]Form
}

// Form describes the configuration for one identity alias.
type Form struct {
	Alias       model.IdentityAlias
	Source      string
	Header      string
	SubmitLabel string
	Fields      []FieldConfig
}

// FieldConfig customises one field descriptor.
type FieldConfig struct {
	Type        string      `json:"type" yaml:"type"`
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Label       string      `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
	Disabled    bool        `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	DialCode    string      `json:"dialCode,omitempty" yaml:"dialCode,omitempty"`
	Hint        *HintConfig `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// HintConfig customises the hint rendered below a field. Markup is
// sanitized at load time; ActionLabel yields an action whose callback the
// field template builder binds to the resend operation.
type HintConfig struct {
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	Markup      string `json:"markup,omitempty" yaml:"markup,omitempty"`
	ActionLabel string `json:"actionLabel,omitempty" yaml:"actionLabel,omitempty"`
}

// Form returns the configuration for the supplied alias.
func (s *Store) Form(alias model.IdentityAlias) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[alias]
	return form, ok
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Overrides converts the form's field configurations into descriptor
// overrides for the field template builder. Change handlers are left unset;
// the builder wires them.
func (f Form) Overrides() []model.Field {
	if len(f.Fields) == 0 {
		return nil
	}
	out := make([]model.Field, 0, len(f.Fields))
	for _, cfg := range f.Fields {
		field := model.Field{
			Type:        model.FieldType(strings.TrimSpace(cfg.Type)),
			Name:        cfg.Name,
			Label:       cfg.Label,
			Placeholder: cfg.Placeholder,
			Required:    cfg.Required,
			Value:       cfg.Value,
			Disabled:    cfg.Disabled,
			DialCode:    cfg.DialCode,
		}
		if cfg.Hint != nil {
			hint := &model.Hint{Text: cfg.Hint.Text, Markup: cfg.Hint.Markup}
			if label := strings.TrimSpace(cfg.Hint.ActionLabel); label != "" {
				hint.Action = &model.HintAction{Label: label}
			}
			if !hint.Empty() {
				field.Hint = hint
			}
		}
		out = append(out, field)
	}
	return out
}

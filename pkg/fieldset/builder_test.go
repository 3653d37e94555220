package fieldset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-confirmform/pkg/binding"
	"github.com/goliatone/go-confirmform/pkg/model"
)

func newRouter(t *testing.T) (*binding.Router, *binding.Values) {
	t.Helper()
	values := binding.NewValues()
	return binding.NewRouter(&values), &values
}

func noResend() error { return nil }

func TestBuildDefaultsPerAlias(t *testing.T) {
	for _, alias := range []model.IdentityAlias{model.AliasUsername, model.AliasEmail, model.AliasPhone} {
		router, _ := newRouter(t)
		fields, err := New().Build(alias, router, noResend)
		if err != nil {
			t.Fatalf("build(%s): %v", alias, err)
		}
		if len(fields) != 2 {
			t.Fatalf("build(%s): expected 2 fields, got %d", alias, len(fields))
		}
		if fields[0].Type != alias.FieldType() {
			t.Fatalf("build(%s): first field type = %q", alias, fields[0].Type)
		}
		if fields[1].Type != model.FieldTypeCode {
			t.Fatalf("build(%s): second field type = %q", alias, fields[1].Type)
		}
		if fields[1].Hint.Empty() || fields[1].Hint.Action == nil || fields[1].Hint.Action.Invoke == nil {
			t.Fatalf("build(%s): code hint missing resend action", alias)
		}
		if fields[0].OnChange == nil || fields[1].OnChange == nil {
			t.Fatalf("build(%s): default fields must carry change handlers", alias)
		}
	}
}

func TestBuildRejectsUnknownAlias(t *testing.T) {
	router, _ := newRouter(t)
	if _, err := New().Build(model.IdentityAlias("passkey"), router, noResend); err == nil {
		t.Fatal("expected error for unrecognized alias")
	}
}

func TestBuildKnownUsernamePrefillsIdentity(t *testing.T) {
	router, _ := newRouter(t)
	fields, err := New(WithKnownUsername("casey")).Build(model.AliasUsername, router, noResend)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if fields[0].Value != "casey" || !fields[0].Disabled {
		t.Fatalf("identity field not prefilled/disabled: %+v", fields[0])
	}
}

func TestBuildOverridesSynthesizesCodeHint(t *testing.T) {
	router, _ := newRouter(t)
	resent := false
	builder := New(WithOverrides([]model.Field{
		{Type: model.FieldTypeEmail, Label: "Work Email"},
		{Type: model.FieldTypeCode, Label: "Code"},
	}))

	fields, err := builder.Build(model.AliasEmail, router, func() error {
		resent = true
		return nil
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	code := fields[1]
	if code.Hint.Empty() || code.Hint.Action == nil {
		t.Fatalf("code hint not synthesized: %+v", code.Hint)
	}
	if err := code.Hint.Action.Invoke(); err != nil {
		t.Fatalf("invoke resend: %v", err)
	}
	if !resent {
		t.Fatal("synthesized hint action did not call resend")
	}
}

func TestBuildOverridesPreservesCustomHint(t *testing.T) {
	router, _ := newRouter(t)
	custom := &model.Hint{Text: "Check your spam folder"}
	builder := New(WithOverrides([]model.Field{
		{Type: model.FieldTypeCode, Hint: custom},
	}))

	fields, err := builder.Build(model.AliasEmail, router, noResend)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if fields[0].Hint.Text != "Check your spam folder" {
		t.Fatalf("custom hint not preserved: %+v", fields[0].Hint)
	}
	if fields[0].Hint.Action != nil {
		t.Fatal("custom hint must be preserved verbatim")
	}
}

func TestBuildOverridesNeverMutateCallerDescriptors(t *testing.T) {
	router, _ := newRouter(t)
	supplied := []model.Field{{Type: model.FieldTypeCode, Label: "Code"}}
	builder := New(WithOverrides(supplied))

	if _, err := builder.Build(model.AliasEmail, router, noResend); err != nil {
		t.Fatalf("build: %v", err)
	}
	if supplied[0].Hint != nil {
		t.Fatal("builder mutated caller-owned descriptor hint")
	}
	if supplied[0].OnChange != nil {
		t.Fatal("builder mutated caller-owned descriptor handler")
	}
}

func TestBuildChainsCustomHandlerBeforeRouter(t *testing.T) {
	router, values := newRouter(t)
	var calls []string
	builder := New(WithOverrides([]model.Field{
		{
			Type: model.FieldTypeEmail,
			OnChange: func(ev model.ChangeEvent) {
				calls = append(calls, "custom:"+ev.Value)
			},
		},
	}))

	fields, err := builder.Build(model.AliasEmail, router, noResend)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	fields[0].OnChange(model.ChangeEvent{Value: "me@example.com"})
	if len(calls) != 1 || calls[0] != "custom:me@example.com" {
		t.Fatalf("custom handler calls = %v", calls)
	}
	if values.Identifier != "me@example.com" {
		t.Fatalf("router default handling skipped, identifier = %q", values.Identifier)
	}
}

func TestBuildFilterReceivesCopiesAndReplacesList(t *testing.T) {
	router, _ := newRouter(t)
	builder := New(
		WithOverrides([]model.Field{
			{Type: model.FieldTypeEmail, Label: "Email"},
			{Type: model.FieldTypeCode, Label: "Code"},
		}),
		WithFilter(func(fields []model.Field) []model.Field {
			// Mutations here must not corrupt anything the builder owns.
			fields[0].Label = "filtered"
			return fields[:1]
		}),
	)

	fields, err := builder.Build(model.AliasEmail, router, noResend)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(fields) != 1 || fields[0].Label != "filtered" {
		t.Fatalf("filter result not applied: %+v", fields)
	}
}

func TestBuildFilterAppliesToDefaults(t *testing.T) {
	router, _ := newRouter(t)
	builder := New(
		WithFilter(func(fields []model.Field) []model.Field {
			// Drop the identity field, keep the code field.
			return fields[1:]
		}),
	)

	fields, err := builder.Build(model.AliasUsername, router, noResend)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(fields) != 1 || fields[0].Type != model.FieldTypeCode {
		t.Fatalf("filter not applied to default list: %+v", fields)
	}
}

func TestBuildTypeNamesBypassFilter(t *testing.T) {
	router, _ := newRouter(t)
	filterRan := false
	builder := New(
		WithTypeNames([]string{"email", "code"}),
		WithFilter(func(fields []model.Field) []model.Field {
			filterRan = true
			return fields
		}),
	)

	fields, err := builder.Build(model.AliasEmail, router, noResend)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if filterRan {
		t.Fatal("filter must not run for bare type-name shorthand")
	}
	if len(fields) != 2 || fields[0].Type != model.FieldTypeEmail || fields[1].Type != model.FieldTypeCode {
		t.Fatalf("shorthand fields = %+v", fields)
	}
	if fields[1].Hint.Empty() {
		t.Fatal("shorthand code field should still get the default hint")
	}
}

func TestBuildIdempotent(t *testing.T) {
	overrides := []model.Field{
		{Type: model.FieldTypeEmail, Label: "Email", Required: true},
		{Type: model.FieldTypeCode, Label: "Code"},
	}

	router, _ := newRouter(t)
	builder := New(WithOverrides(overrides))
	first, err := builder.Build(model.AliasEmail, router, noResend)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := builder.Build(model.AliasEmail, router, noResend)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	ignoreFuncs := []cmp.Option{
		cmpopts.IgnoreFields(model.Field{}, "OnChange"),
		cmpopts.IgnoreFields(model.HintAction{}, "Invoke"),
	}
	if diff := cmp.Diff(first, second, ignoreFuncs...); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}
}

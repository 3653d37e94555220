package confirmform_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	confirmform "github.com/goliatone/go-confirmform"
	"github.com/goliatone/go-confirmform/pkg/formschema"
	"github.com/goliatone/go-confirmform/pkg/model"
)

type okBackend struct{}

func (okBackend) ConfirmCode(ctx context.Context, identifier, code string) (bool, error) {
	return true, nil
}

func (okBackend) ResendCode(ctx context.Context, identifier string) error { return nil }

func TestRenderHTML(t *testing.T) {
	ctrl, err := confirmform.New("email", okBackend{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	html, err := confirmform.RenderHTML(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "Confirm Sign Up") {
		t.Fatalf("header missing from output:\n%s", out)
	}
	if !strings.Contains(out, `type="email"`) {
		t.Fatalf("email input missing from output:\n%s", out)
	}
}

func TestRenderByName(t *testing.T) {
	registry, err := confirmform.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	if got := registry.List(); len(got) != 1 || got[0] != "vanilla" {
		t.Fatalf("unexpected registry contents: %v", got)
	}

	ctrl, err := confirmform.New("username", okBackend{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	html, err := confirmform.Render(context.Background(), registry, "vanilla", ctrl, confirmform.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "Username") {
		t.Fatalf("username label missing:\n%s", html)
	}

	if _, err := confirmform.Render(context.Background(), registry, "missing", ctrl, confirmform.RenderOptions{}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestSchemaOptions(t *testing.T) {
	fsys := fstest.MapFS{
		"forms.yaml": &fstest.MapFile{Data: []byte(`
forms:
  email:
    header: Verify your email
    submitLabel: Verify
    fields:
      - type: email
        label: Work email
      - type: code
        hint:
          text: "No code yet? "
          actionLabel: Try again
`)},
	}
	store, err := formschema.LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	opts := confirmform.SchemaOptions(store, model.AliasEmail)
	if len(opts) == 0 {
		t.Fatalf("expected schema options")
	}

	ctrl, err := confirmform.New("email", okBackend{}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	view := ctrl.View()
	if view.Header != "Verify your email" {
		t.Fatalf("schema header not applied: %q", view.Header)
	}
	if view.SubmitLabel != "Verify" {
		t.Fatalf("schema submit label not applied: %q", view.SubmitLabel)
	}

	fields := ctrl.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Label != "Work email" {
		t.Fatalf("override label not applied: %q", fields[0].Label)
	}
	code := fields[1]
	if code.Hint == nil || code.Hint.Action == nil {
		t.Fatalf("code hint action missing: %#v", code)
	}
	if code.Hint.Action.Label != "Try again" {
		t.Fatalf("action label mismatch: %q", code.Hint.Action.Label)
	}
	if code.Hint.Action.Invoke == nil {
		t.Fatalf("resend callback not bound to declarative action")
	}

	if missing := confirmform.SchemaOptions(store, model.AliasPhone); missing != nil {
		t.Fatalf("expected nil options for absent alias, got %d", len(missing))
	}
}

package binding

import (
	"testing"

	"github.com/goliatone/go-confirmform/pkg/model"
)

func TestHandlerForDispatch(t *testing.T) {
	values := NewValues()
	router := NewRouter(&values)

	for _, identity := range []model.FieldType{model.FieldTypeUsername, model.FieldTypeEmail} {
		handler := router.HandlerFor(identity)
		if handler == nil {
			t.Fatalf("expected handler for %q", identity)
		}
		handler(model.ChangeEvent{Value: "someone@example.com"})
		if values.Identifier != "someone@example.com" {
			t.Fatalf("%q handler wrote %q", identity, values.Identifier)
		}
		values.Identifier = ""
	}

	codeHandler := router.HandlerFor(model.FieldTypeCode)
	codeHandler(model.ChangeEvent{Value: "123456"})
	if values.Code != "123456" {
		t.Fatalf("code = %q", values.Code)
	}

	phoneHandler := router.HandlerFor(model.FieldTypePhone)
	phoneHandler(model.ChangeEvent{Value: "5551234567", DialCode: "+44"})
	if values.Phone.DialCode != "+44" || values.Phone.LocalNumber != "5551234567" {
		t.Fatalf("phone state = %+v", values.Phone)
	}
}

func TestHandlerForUnknownTypeIsNil(t *testing.T) {
	values := NewValues()
	router := NewRouter(&values)

	if handler := router.HandlerFor(model.FieldType("captcha")); handler != nil {
		t.Fatal("unknown field types must not get a handler")
	}
}

func TestSetField(t *testing.T) {
	values := NewValues()
	router := NewRouter(&values)

	router.SetField(model.Field{Type: model.FieldTypeEmail, Value: "pre@example.com"})
	if values.Identifier != "pre@example.com" {
		t.Fatalf("identifier = %q", values.Identifier)
	}

	router.SetField(model.Field{Type: model.FieldTypeCode, Value: "987654"})
	if values.Code != "987654" {
		t.Fatalf("code = %q", values.Code)
	}

	// Dial code only updates when supplied; the local number always does.
	router.SetField(model.Field{Type: model.FieldTypePhone, Value: "5550001111"})
	if values.Phone.DialCode != "+1" {
		t.Fatalf("dial code = %q, want default", values.Phone.DialCode)
	}
	router.SetField(model.Field{Type: model.FieldTypePhone, Value: "7911123456", DialCode: "+44"})
	if values.Phone.DialCode != "+44" || values.Phone.LocalNumber != "7911123456" {
		t.Fatalf("phone state = %+v", values.Phone)
	}

	// Custom types are left alone.
	router.SetField(model.Field{Type: model.FieldType("captcha"), Value: "token"})
	if values.Identifier != "pre@example.com" || values.Code != "987654" {
		t.Fatal("custom field update leaked into tracked state")
	}
}

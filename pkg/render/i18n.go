package render

import (
	"errors"
	"strings"
)

// Translator resolves display-string keys. Locale may be empty when the
// caller has a single-locale deployment.
type Translator interface {
	Translate(locale, key string, params ...any) (string, error)
}

// ErrMissingTranslator is passed to fallbacks when no translator was
// configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Display-string keys used by the default confirm sign-up template.
const (
	KeyHeader           = "confirmSignUp.header"
	KeySubmitLabel      = "confirmSignUp.submit"
	KeyUsernameLabel    = "confirmSignUp.usernameLabel"
	KeyEmailLabel       = "confirmSignUp.emailLabel"
	KeyPhoneLabel       = "confirmSignUp.phoneLabel"
	KeyCodeLabel        = "confirmSignUp.codeLabel"
	KeyCodePlaceholder  = "confirmSignUp.codePlaceholder"
	KeyLostCodePrompt   = "confirmSignUp.lostCode"
	KeyResendCodeAction = "confirmSignUp.resendCode"
)

// Text resolves a key through the translator, falling back to the supplied
// default when the translator is missing, errors, or returns an empty
// string.
func Text(t Translator, locale, key, fallback string) string {
	if strings.TrimSpace(key) == "" {
		return fallback
	}
	if t == nil {
		return fallback
	}
	result, err := t.Translate(locale, key)
	if err != nil || strings.TrimSpace(result) == "" {
		return fallback
	}
	return result
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(locale, key string, params ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, params ...any) (string, error) {
	return f(locale, key, params...)
}

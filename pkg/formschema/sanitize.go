package formschema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// sanitizeHintMarkup strips everything but simple inline elements from hint
// markup so schema documents cannot inject scripts into rendered forms.
func sanitizeHintMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := hintSanitizer()
	cleaned := strings.TrimSpace(policy.Sanitize(trimmed))
	if cleaned == "" {
		return ""
	}
	return cleaned
}

func hintSanitizer() *bluemonday.Policy {
	hintPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "u", "code", "span", "br", "a")
		policy.AllowAttrs("class").OnElements("span", "strong", "em", "code")
		policy.AllowAttrs("href", "rel", "target").OnElements("a")
		policy.AllowURLSchemes("https", "mailto")
		policy.RequireNoFollowOnLinks(true)

		hintPolicy = policy
	})
	return hintPolicy
}

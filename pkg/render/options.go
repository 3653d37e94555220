package render

// RenderOptions describe per-request data renderers can use without
// mutating the form view itself.
type RenderOptions struct {
	// Locale is forwarded to the translator when resolving display strings.
	Locale string
	// Errors surfaces validation feedback keyed by field name so renderers
	// can show inline messages next to the offending control.
	Errors map[string][]string
}

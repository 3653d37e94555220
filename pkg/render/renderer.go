package render

import (
	"context"

	"github.com/goliatone/go-confirmform/pkg/model"
)

// FormView is the declarative payload renderers consume: the resolved
// display strings, the ordered field list, and the loading flag.
type FormView struct {
	Header      string
	SubmitLabel string
	Fields      []model.Field
	Loading     bool
}

// Renderer converts a FormView into a byte representation (HTML, text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view FormView, options RenderOptions) ([]byte, error)
}

// Package controller drives the confirm sign-up step of an account
// registration workflow: it owns the typed field values, the loading flag,
// and the resend/confirm cycle against an injected authentication backend.
package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-confirmform/pkg/binding"
	"github.com/goliatone/go-confirmform/pkg/fieldset"
	"github.com/goliatone/go-confirmform/pkg/model"
	"github.com/goliatone/go-confirmform/pkg/phone"
	"github.com/goliatone/go-confirmform/pkg/render"
)

// AuthState identifies the application state announced after a completed
// flow branch.
type AuthState string

const (
	StateConfirmSignUp AuthState = "confirmSignUp"
	StateSignIn        AuthState = "signIn"
)

// Backend is the injected capability surface of the authentication service.
// ConfirmCode reports false when the service resolves without an error but
// rejects the code.
type Backend interface {
	ConfirmCode(ctx context.Context, identifier, code string) (bool, error)
	ResendCode(ctx context.Context, identifier string) error
}

// StateHandler receives state-change signals, invoked exactly once per
// completed flow branch.
type StateHandler func(state AuthState, payload any)

// ErrorHandler receives every recoverable failure. Nothing escapes the
// operation boundary except fatal configuration errors.
type ErrorHandler func(err error)

// SignInFunc is the delegated sign-in capability used for auto-sign-in after
// confirmation. The delegate owns all subsequent state transitions, which is
// why it receives the state handler.
type SignInFunc func(ctx context.Context, identifier, password string, onStateChange StateHandler) error

// SignUpAttributes carries data forwarded from a prior sign-up step. A
// non-empty password enables auto-sign-in after successful confirmation.
type SignUpAttributes struct {
	Password string
}

// User is the optional prior user context supplied at setup time.
type User struct {
	Username    string
	SignUpAttrs SignUpAttributes
}

// Controller is the confirm sign-up state machine. It is not safe for
// concurrent use; it expects a cooperative event loop where the only
// suspension points are the backend calls.
type Controller struct {
	alias      model.IdentityAlias
	backend    Backend
	signIn     SignInFunc
	onState    StateHandler
	onError    ErrorHandler
	translator render.Translator
	locale     string
	headerKey  string
	submitKey  string

	user      User
	values    binding.Values
	router    *binding.Router
	fields    []model.Field
	loading   bool
	fieldOpts []fieldset.Option
}

// New validates the configuration and builds the field list. An
// unrecognized alias or a missing backend is a fatal setup error; there is
// no valid mode to continue rendering.
func New(alias string, backend Backend, opts ...Option) (*Controller, error) {
	parsed, err := model.ParseAlias(alias)
	if err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, ErrBackendUnavailable
	}

	c := &Controller{
		alias:     parsed,
		backend:   backend,
		headerKey: render.KeyHeader,
		submitKey: render.KeySubmitLabel,
	}
	c.values = binding.NewValues()
	c.router = binding.NewRouter(&c.values)

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}

	c.values.Identifier = c.user.Username

	builderOpts := append([]fieldset.Option{
		fieldset.WithTranslator(c.translator),
		fieldset.WithLocale(c.locale),
	}, c.fieldOpts...)
	if c.user.Username != "" {
		builderOpts = append(builderOpts, fieldset.WithKnownUsername(c.user.Username))
	}

	fields, err := fieldset.New(builderOpts...).Build(parsed, c.router, func() error {
		return c.Resend(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("controller: build fields: %w", err)
	}
	c.fields = fields

	return c, nil
}

// Fields returns the built field descriptor list in rendering order.
func (c *Controller) Fields() []model.Field {
	return c.fields
}

// Loading reports whether a confirm operation is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// Values returns a snapshot of the tracked field state.
func (c *Controller) Values() binding.Values {
	return c.values
}

// SetField applies a programmatic field update through the input router.
func (c *Controller) SetField(f model.Field) {
	c.router.SetField(f)
}

// View assembles the declarative payload a rendering collaborator consumes.
func (c *Controller) View() render.FormView {
	return render.FormView{
		Header:      render.Text(c.translator, c.locale, c.headerKey, "Confirm Sign Up"),
		SubmitLabel: render.Text(c.translator, c.locale, c.submitKey, "Confirm"),
		Fields:      c.fields,
		Loading:     c.loading,
	}
}

// Resend requests a new confirmation code for the current identifier. On
// success it re-announces the confirm sign-up state so collaborators can
// reset timers or UI. Resend never touches the loading flag.
func (c *Controller) Resend(ctx context.Context) error {
	if c.backend == nil {
		return ErrBackendUnavailable
	}

	identifier := strings.TrimSpace(c.values.Identifier)
	if identifier == "" {
		c.fail(ErrEmptyIdentifier)
		return nil
	}

	if err := c.backend.ResendCode(ctx, identifier); err != nil {
		c.fail(err)
		return nil
	}

	c.emit(StateConfirmSignUp, nil)
	return nil
}

// Confirm submits the identifier and code to the backend. The loading flag
// is set for exactly the duration of one confirm operation and cleared on
// every exit path. All recoverable failures are routed to the error sink;
// only fatal misconfiguration is returned.
func (c *Controller) Confirm(ctx context.Context) error {
	if c.backend == nil {
		return ErrBackendUnavailable
	}
	if c.loading {
		c.fail(ErrSubmitInFlight)
		return nil
	}

	c.loading = true
	defer func() { c.loading = false }()

	if c.alias == model.AliasPhone {
		composed, err := phone.Compose(c.values.Phone)
		if err != nil {
			// Deliberate fall-through: a failed composition is reported but
			// confirmation still proceeds with whatever identifier is held,
			// which in the common case fails the emptiness check below.
			c.fail(err)
		} else {
			c.values.Identifier = composed
		}
	}

	identifier := strings.TrimSpace(c.values.Identifier)
	if identifier == "" {
		c.fail(ErrEmptyIdentifier)
		return nil
	}

	confirmed, err := c.backend.ConfirmCode(ctx, identifier, c.values.Code)
	if err != nil {
		c.fail(err)
		return nil
	}
	if !confirmed {
		c.fail(ErrConfirmationFailed)
		return nil
	}

	if password := c.user.SignUpAttrs.Password; password != "" && c.signIn != nil {
		if err := c.signIn(ctx, identifier, password, c.onState); err != nil {
			c.fail(err)
		}
		return nil
	}

	c.emit(StateSignIn, nil)
	return nil
}

func (c *Controller) fail(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}

func (c *Controller) emit(state AuthState, payload any) {
	if c.onState != nil {
		c.onState(state, payload)
	}
}

// Package panel models the token settings page: pick a lifetime, request a
// token once, then show it together with the usage examples.
package panel

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/guide"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
	"github.com/dmp-tools/tokenpanel/internal/logging"
)

// State is the lifecycle of one panel.
type State int

const (
	StateUnsubmitted State = iota
	StateSubmitting
	StateIssued
)

func (s State) String() string {
	switch s {
	case StateUnsubmitted:
		return "unsubmitted"
	case StateSubmitting:
		return "submitting"
	case StateIssued:
		return "issued"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Context is the read-only environment a panel renders in.
type Context struct {
	Lang    i18n.Lang
	Variant expiry.Variant
}

// Requester issues a token with the given lifetime in hours and returns it
// together with the server's message.
type Requester interface {
	CreateToken(ctx context.Context, hours int) (token, message string, err error)
}

// RequesterFunc adapts a function to Requester.
type RequesterFunc func(ctx context.Context, hours int) (string, string, error)

func (f RequesterFunc) CreateToken(ctx context.Context, hours int) (string, string, error) {
	return f(ctx, hours)
}

// Notifier surfaces transient feedback to the user.
type Notifier interface {
	Warn(message string)
	Success(message string)
	Error(err error)
}

// Clipboard receives the issued token on Copy.
type Clipboard interface {
	WriteAll(text string) error
}

// FormState is the user's pending input. A nil Expiration means unset.
type FormState struct {
	Expiration *int
}

type Option func(*Panel)

func WithClipboard(c Clipboard) Option {
	return func(p *Panel) { p.clipboard = c }
}

func WithLogger(l *logging.Logger) Option {
	return func(p *Panel) { p.logger = l }
}

// Panel is safe for concurrent use. The create call runs without the lock
// held; a second Submit during it gets ErrInFlight.
type Panel struct {
	pctx      Context
	requester Requester
	notifier  Notifier
	clipboard Clipboard
	logger    *logging.Logger
	guide     string

	mu    sync.Mutex
	form  FormState
	state State
	token string
	// generation is bumped by Reset so a late result can be discarded
	generation uint64
}

func New(pctx Context, requester Requester, notifier Notifier, opts ...Option) (*Panel, error) {
	if requester == nil {
		return nil, fmt.Errorf("panel: requester is required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("panel: notifier is required")
	}
	if len(pctx.Variant.Options) == 0 {
		return nil, fmt.Errorf("panel: variant %q has no options", pctx.Variant.Name)
	}
	if pctx.Lang == "" {
		pctx.Lang = i18n.ZH
	}

	p := &Panel{
		pctx:      pctx,
		requester: requester,
		notifier:  notifier,
		logger:    logging.NewNopLogger(),
		guide:     guide.Compose(pctx.Variant.HeaderName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Panel) msg(key string) string {
	return messages.Get(p.pctx.Lang, key)
}

// SelectExpiry sets the pending lifetime. Values outside the variant's
// options are rejected and leave the form unchanged.
func (p *Panel) SelectExpiry(hours int) error {
	if !p.pctx.Variant.Contains(hours) {
		return fmt.Errorf("%w: %d", ErrUnknownExpiry, hours)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	h := hours
	p.form.Expiration = &h
	return nil
}

// SelectExpiryByName selects an option by its name, e.g. "month".
func (p *Panel) SelectExpiryByName(name string) error {
	o, ok := p.pctx.Variant.ByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExpiry, name)
	}
	return p.SelectExpiry(o.Hours)
}

// ClearExpiry unsets the pending lifetime.
func (p *Panel) ClearExpiry() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form.Expiration = nil
}

// Submit requests a token for the selected lifetime.
func (p *Panel) Submit(ctx context.Context) error {
	p.mu.Lock()
	switch p.state {
	case StateSubmitting:
		p.mu.Unlock()
		return ErrInFlight
	case StateIssued:
		p.mu.Unlock()
		return ErrAlreadyIssued
	}
	if p.form.Expiration == nil {
		p.mu.Unlock()
		p.notifier.Warn(p.msg("select expire time"))
		return ErrNoExpiry
	}
	hours := *p.form.Expiration
	gen := p.generation
	p.state = StateSubmitting
	p.mu.Unlock()

	p.logger.Debug("Requesting token: variant=%s hours=%d", p.pctx.Variant.Name, hours)
	token, message, err := p.requester.CreateToken(ctx, hours)
	if err == nil && token == "" {
		err = ErrEmptyToken
	}

	p.mu.Lock()
	if gen != p.generation {
		p.mu.Unlock()
		p.logger.Debug("Discarding token response after reset")
		return ErrReset
	}
	if err != nil {
		p.state = StateUnsubmitted
		p.mu.Unlock()
		p.logger.Warn("Token request failed: %v", err)
		p.notifier.Error(err)
		return fmt.Errorf("failed to create token: %w", err)
	}
	p.token = token
	p.state = StateIssued
	if p.pctx.Variant.Name == expiry.DMP.Name {
		p.form.Expiration = nil
	}
	p.mu.Unlock()

	p.logger.Info("Token issued: variant=%s hours=%d", p.pctx.Variant.Name, hours)
	if message == "" {
		message = p.msg("create success")
	}
	p.notifier.Success(message)
	return nil
}

// Reset returns the panel to its initial state, as a page reload would.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = FormState{}
	p.state = StateUnsubmitted
	p.token = ""
	p.generation++
}

// Copy places the issued token on the clipboard.
func (p *Panel) Copy() error {
	p.mu.Lock()
	token, state := p.token, p.state
	p.mu.Unlock()

	if state != StateIssued {
		return ErrNotIssued
	}
	if p.clipboard == nil {
		return ErrNoClipboard
	}
	if err := p.clipboard.WriteAll(token); err != nil {
		p.notifier.Error(err)
		return fmt.Errorf("failed to copy token: %w", err)
	}
	p.notifier.Success(p.msg("copy success"))
	return nil
}

func (p *Panel) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Token returns the issued token, or "" before issuance.
func (p *Panel) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Selected returns the pending lifetime and whether one is set.
func (p *Panel) Selected() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.form.Expiration == nil {
		return 0, false
	}
	return *p.form.Expiration, true
}

// Context returns the environment the panel was built with.
func (p *Panel) Context() Context {
	return p.pctx
}

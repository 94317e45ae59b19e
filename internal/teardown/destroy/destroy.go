package destroy

import (
	"context"

	"github.com/imamik/stackrm/internal/config"
	"github.com/imamik/stackrm/internal/teardown"
)

// Option configures a destroy run.
type Option func(*options)

type options struct {
	clients  *teardown.Clients
	reporter teardown.Reporter
	timeouts *config.Timeouts
	metrics  *teardown.Metrics
	observer teardown.PhaseObserver
}

// WithClients uses the given remote clients instead of building AWS clients.
func WithClients(c teardown.Clients) Option {
	return func(o *options) { o.clients = &c }
}

// WithReporter sends progress to r.
func WithReporter(r teardown.Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithTimeouts overrides the grace period, poll interval and log stagger.
func WithTimeouts(t *config.Timeouts) Option {
	return func(o *options) { o.timeouts = t }
}

// WithMetrics records the run into m.
func WithMetrics(m *teardown.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithObserver reports phase transitions to obs.
func WithObserver(obs teardown.PhaseObserver) Option {
	return func(o *options) { o.observer = obs }
}

// Run destroys the stack described by req and everything that belongs to it.
// It returns the final pipeline state and the first error encountered,
// unwrapped, so callers can classify it with errors.As.
func Run(ctx context.Context, req *teardown.Request, opts ...Option) (*teardown.State, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.timeouts == nil {
		t, err := config.LoadTimeouts()
		if err != nil {
			return nil, &teardown.InputError{Field: "timeouts", Reason: err.Error()}
		}
		o.timeouts = t
	}

	var clients teardown.Clients
	if o.clients != nil {
		clients = *o.clients
	} else {
		c, err := NewClients(ctx, req.AWS)
		if err != nil {
			return nil, err
		}
		clients = c
	}

	tctx := teardown.NewContext(ctx, req, clients, o.reporter, o.timeouts)
	tctx.Metrics = o.metrics
	tctx.Observer = o.observer

	err := teardown.RunPhases(tctx, Phases())
	return tctx.State, err
}

// Phases returns the destroy pipeline in execution order.
func Phases() []teardown.Phase {
	return []teardown.Phase{
		teardown.NewPhase("grace period", gracePeriod),
		teardown.NewPhase("describe stack", describeStack),
		teardown.NewPhase("guard user data", guardUserData),
		teardown.NewPhase("static bucket", emptyStaticBucket),
		teardown.NewPhase("deployment bucket", emptyDeployBucket),
		teardown.NewPhase("parameters", purgeParameters),
		teardown.NewPhase("log groups", reapLogGroups),
		teardown.NewPhase("delete stack", deleteStack),
		teardown.NewPhase("wait for deletion", waitForDeletion),
	}
}

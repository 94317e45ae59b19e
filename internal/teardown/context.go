package teardown

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/stackrm/internal/config"
)

// Context wraps all dependencies and state needed for a destroy phase.
type Context struct {
	context.Context
	Request   *Request
	StackName string
	State     *State
	Clients   Clients
	Reporter  Reporter
	Metrics   *Metrics
	Timeouts  *config.Timeouts
	Observer  PhaseObserver // Optional
}

// NewContext creates a new destroy context.
// A nil reporter discards progress output and nil timeouts use the defaults.
func NewContext(ctx context.Context, req *Request, clients Clients, reporter Reporter, timeouts *config.Timeouts) *Context {
	if reporter == nil {
		reporter = NewQuietReporter()
	}
	if timeouts == nil {
		timeouts = config.DefaultTimeouts()
	}
	return &Context{
		Context:   ctx,
		Request:   req,
		StackName: req.StackName(),
		State:     NewState(),
		Clients:   clients,
		Reporter:  reporter,
		Timeouts:  timeouts,
	}
}

// Logger returns the debug logger carried by the context.
func (c *Context) Logger() logr.Logger {
	return logr.FromContextOrDiscard(c.Context)
}

// MaxPollAttempts resolves the poll budget for this run.
func (c *Context) MaxPollAttempts() int {
	if c.Request.MaxPollAttempts > 0 {
		return c.Request.MaxPollAttempts
	}
	return c.Timeouts.MaxPollAttempts
}

package teardown

import (
	"github.com/imamik/stackrm/internal/platform/cloudformation"
	"github.com/imamik/stackrm/internal/platform/logs"
	"github.com/imamik/stackrm/internal/platform/s3"
	"github.com/imamik/stackrm/internal/platform/ssm"
)

// Phase defines the interface for a destroy phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Run executes the phase. A returned error aborts the pipeline.
	Run(ctx *Context) error
}

// PhaseObserver is notified as the pipeline moves through its phases.
type PhaseObserver interface {
	PhaseStarted(name string)
	PhaseFinished(name string, err error)
}

// Clients bundles the remote APIs a destroy run talks to.
// It is built once per run and shared read-only by every phase.
type Clients struct {
	Stacks     cloudformation.StackManager
	Buckets    s3.BucketManager
	Parameters ssm.ParameterStore
	LogGroups  logs.LogGroupManager
}

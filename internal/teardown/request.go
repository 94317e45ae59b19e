package teardown

import (
	"github.com/imamik/stackrm/internal/platform/awsconf"
	"github.com/imamik/stackrm/internal/util/naming"
)

// Environments a stack can be deployed to.
const (
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "production"
)

// Request describes one destroy run.
type Request struct {
	AppName     string
	Environment string

	// StackSuffix names an ephemeral stack (for example a pull request
	// environment) deployed alongside the main one. Named stacks share the
	// parameter namespace of their parent, so parameters are left alone.
	StackSuffix string

	Force     bool // Permit removal of the static bucket and stacks holding tables
	Immediate bool // Skip the grace period

	// MaxPollAttempts bounds the stack deletion poll loop.
	// Zero means the configured default.
	MaxPollAttempts int

	AWS awsconf.Options
}

// Validate checks the request before any remote call is made.
func (r *Request) Validate() error {
	if r.AppName == "" {
		return &InputError{Field: "app name", Reason: "is required"}
	}
	switch r.Environment {
	case "":
		return &InputError{Field: "environment", Reason: "is required"}
	case EnvironmentStaging, EnvironmentProduction:
	default:
		return &InputError{Field: "environment", Reason: "must be staging or production, got " + r.Environment}
	}
	if r.MaxPollAttempts < 0 {
		return &InputError{Field: "max poll attempts", Reason: "must not be negative"}
	}
	if err := r.AWS.Validate(); err != nil {
		return &InputError{Field: "AWS options", Reason: err.Error()}
	}
	return nil
}

// StackName derives the stack identifier from the request.
func (r *Request) StackName() string {
	return naming.StackName(r.AppName, r.Environment, r.StackSuffix)
}

// Named reports whether the request targets a named (suffixed) stack.
func (r *Request) Named() bool {
	return r.StackSuffix != ""
}

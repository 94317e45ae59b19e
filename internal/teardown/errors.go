package teardown

import (
	"errors"
	"fmt"
	"strings"
)

// Guard kinds. The error message of a GuardError is exactly its kind.
const (
	GuardBucketExists = "bucket_exists"
	GuardTableExists  = "table_exists"
)

// InputError reports an invalid request. It is raised before any remote call.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid destroy request: %s %s", e.Field, e.Reason)
}

// GuardError is a safety gate refusing to destroy user data without force.
type GuardError struct {
	Kind      string
	Resources []string // Bucket or table names that tripped the gate
}

func (e *GuardError) Error() string {
	return e.Kind
}

// Describe returns a one-line summary of a guard error's resources.
func (e *GuardError) Describe() string {
	if len(e.Resources) == 0 {
		return e.Kind
	}
	return e.Kind + ": " + strings.Join(e.Resources, ", ")
}

// IsGuard reports whether err is a GuardError of the given kind.
func IsGuard(err error, kind string) bool {
	var g *GuardError
	return errors.As(err, &g) && g.Kind == kind
}

// RemoteError is an unexpected failure of a remote call outside listing and deletion.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ListError is a failed listing of bucket contents.
type ListError struct {
	Resource string
	Err      error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Resource, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// DeleteError is a failed deletion of a bucket, its objects or parameters.
type DeleteError struct {
	Resource string
	Err      error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to delete %s: %v", e.Resource, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// DiscoveryError is a failed discovery of parameters or log groups.
type DiscoveryError struct {
	Resource string
	Err      error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to discover %s: %v", e.Resource, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// PollTimeoutError means the stack was still deleting when the poll budget ran out.
type PollTimeoutError struct {
	Stack    string
	Attempts int
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("CloudFormation Stack destroy still ongoing; aborting as we hit max number of retries (%d)", e.Attempts)
}

// PollFailedError means CloudFormation reported the stack deletion as failed.
type PollFailedError struct {
	Stack  string
	Reason string
}

func (e *PollFailedError) Error() string {
	return fmt.Sprintf("CloudFormation Stack %q destroy failed: %s", e.Stack, e.Reason)
}

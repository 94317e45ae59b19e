package teardown

import (
	"github.com/imamik/stackrm/internal/platform/cloudformation"
)

// Inventory is what the stack holds that the safety gate cares about.
type Inventory struct {
	StaticBucket string   // Bucket named by the BucketURL output, if any
	Tables       []string // Names of attached tables
}

// HasTables reports whether any table is attached to the stack.
func (i Inventory) HasTables() bool {
	return len(i.Tables) > 0
}

// State holds the shared results of destroy phases.
// It is populated as each phase completes and read by later phases.
type State struct {
	Stack     *cloudformation.Stack
	Inventory Inventory

	DeployBucket string // Empty when no deployment bucket is recorded

	DeletionRequested bool
	PollAttempts      int
}

// NewState creates an empty destroy state.
func NewState() *State {
	return &State{}
}

// StackExists reports whether the described stack exists.
func (s *State) StackExists() bool {
	return s.Stack != nil && s.Stack.Exists
}

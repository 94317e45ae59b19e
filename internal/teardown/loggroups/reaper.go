package loggroups

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/imamik/stackrm/internal/platform/logs"
	"github.com/imamik/stackrm/internal/teardown"
	"github.com/imamik/stackrm/internal/util/naming"
)

// DefaultStagger spaces deletions to stay under the API's two to three
// calls per second.
const DefaultStagger = 400 * time.Millisecond

// Result summarizes what Reap did.
type Result struct {
	Found   int
	Deleted int
	Failed  []string
}

// Reaper deletes the log groups of a stack.
type Reaper struct {
	groups   logs.LogGroupManager
	reporter teardown.Reporter
	metrics  *teardown.Metrics
	stagger  time.Duration
}

// NewReaper creates a reaper. metrics may be nil; a non-positive stagger
// uses DefaultStagger.
func NewReaper(groups logs.LogGroupManager, reporter teardown.Reporter, metrics *teardown.Metrics, stagger time.Duration) *Reaper {
	if stagger <= 0 {
		stagger = DefaultStagger
	}
	if reporter == nil {
		reporter = teardown.NewQuietReporter()
	}
	return &Reaper{groups: groups, reporter: reporter, metrics: metrics, stagger: stagger}
}

// Reap deletes every log group named /aws/lambda/{stack}-*.
// Only a failed discovery is returned as an error. Individual deletion
// failures are reported as warnings and listed in the result.
func (r *Reaper) Reap(ctx context.Context, stack string) (*Result, error) {
	prefix := naming.LogGroupPrefix(stack)

	names, err := r.discover(ctx, prefix)
	if err != nil {
		return nil, err
	}

	result := &Result{Found: len(names)}
	if len(names) == 0 {
		return result, nil
	}

	log := logr.FromContextOrDiscard(ctx)
	var mu sync.Mutex
	var g errgroup.Group

	for i, name := range names {
		delay := time.Duration(i+1) * r.stagger
		g.Go(func() error {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}

			err := r.groups.DeleteLogGroup(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, name)
				r.metrics.LogGroupFailed()
				r.reporter.Warn("Could not delete log group %s: %v", name, err)
				return nil
			}
			result.Deleted++
			r.metrics.Deleted(teardown.ResourceLogGroups, 1)
			log.V(1).Info("Deleted log group", "name", name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

func (r *Reaper) discover(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	token := ""
	for {
		page, err := r.groups.ListLogGroups(ctx, prefix, token)
		if err != nil {
			return nil, &teardown.DiscoveryError{Resource: "log groups with prefix " + prefix, Err: err}
		}
		names = append(names, page.Names...)

		if page.NextToken == "" {
			return names, nil
		}
		token = page.NextToken
	}
}

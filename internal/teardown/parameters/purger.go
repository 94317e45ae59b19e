package parameters

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"github.com/imamik/stackrm/internal/platform/ssm"
	"github.com/imamik/stackrm/internal/teardown"
	"github.com/imamik/stackrm/internal/util/async"
	"github.com/imamik/stackrm/internal/util/naming"
)

// Result summarizes what Purge did.
type Result struct {
	Found   int
	Deleted int
	Batches int
}

// Purger discovers and deletes parameters.
type Purger struct {
	params  ssm.ParameterStore
	metrics *teardown.Metrics
}

// NewPurger creates a purger. metrics may be nil.
func NewPurger(params ssm.ParameterStore, metrics *teardown.Metrics) *Purger {
	return &Purger{params: params, metrics: metrics}
}

// Purge deletes every parameter under /{app}/{env} and /{app}/deploy.
func (p *Purger) Purge(ctx context.Context, app, env string) (*Result, error) {
	names, err := p.Discover(ctx, naming.ParameterRoots(app, env))
	if err != nil {
		return nil, err
	}

	result := &Result{Found: len(names)}
	if len(names) == 0 {
		logr.FromContextOrDiscard(ctx).V(1).Info("No parameters to delete", "app", app, "env", env)
		return result, nil
	}

	for start := 0; start < len(names); start += ssm.MaxDeleteBatch {
		end := min(start+ssm.MaxDeleteBatch, len(names))
		if err := p.params.DeleteParameters(ctx, names[start:end]); err != nil {
			return result, &teardown.DeleteError{
				Resource: fmt.Sprintf("parameters %d-%d of %d", start+1, end, len(names)),
				Err:      err,
			}
		}
		result.Batches++
		result.Deleted += end - start
		p.metrics.Deleted(teardown.ResourceParameters, end-start)
	}

	return result, nil
}

// Discover lists every parameter name under the given roots. Roots are
// listed concurrently and the names are returned grouped in root order.
func (p *Purger) Discover(ctx context.Context, roots []string) ([]string, error) {
	var mu sync.Mutex
	found := make(map[string][]string, len(roots))

	tasks := make([]async.Task, 0, len(roots))
	for _, root := range roots {
		tasks = append(tasks, async.Task{
			Name: root,
			Func: func(ctx context.Context) error {
				names, err := p.collect(ctx, root)
				if err != nil {
					return err
				}
				mu.Lock()
				found[root] = names
				mu.Unlock()
				return nil
			},
		})
	}

	if err := async.RunParallel(ctx, tasks); err != nil {
		return nil, err
	}

	var names []string
	for _, root := range roots {
		names = append(names, found[root]...)
	}
	return names, nil
}

func (p *Purger) collect(ctx context.Context, root string) ([]string, error) {
	var names []string
	token := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := p.params.ListParametersByPath(ctx, root, token)
		if err != nil {
			return nil, &teardown.DiscoveryError{Resource: "parameters under " + root, Err: err}
		}
		names = append(names, page.Names...)

		if page.NextToken == "" {
			return names, nil
		}
		token = page.NextToken
	}
}

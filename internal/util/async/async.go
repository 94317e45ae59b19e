package async

import (
	"context"
	"time"

	"github.com/go-logr/logr"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel executes multiple tasks in parallel and returns the first error encountered.
// All tasks are started concurrently, and the function waits for all to complete.
// The error is returned as the task produced it so callers can classify it.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "/app/staging", Func: collectEnv},
//	    {Name: "/app/deploy", Func: collectDeploy},
//	}
//	if err := RunParallel(ctx, tasks); err != nil {
//	    return err
//	}
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	log := logr.FromContextOrDiscard(ctx)
	resultChan := make(chan error, len(tasks))

	for _, task := range tasks {
		go func() {
			start := time.Now()
			err := task.Func(ctx)
			log.V(1).Info("Task finished", "task", task.Name,
				"duration", time.Since(start).Round(time.Millisecond), "failed", err != nil)
			resultChan <- err
		}()
	}

	var firstError error
	for range len(tasks) {
		if err := <-resultChan; err != nil && firstError == nil {
			firstError = err
		}
	}

	return firstError
}

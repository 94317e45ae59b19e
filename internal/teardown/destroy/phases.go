package destroy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imamik/stackrm/internal/platform/cloudformation"
	"github.com/imamik/stackrm/internal/teardown"
	"github.com/imamik/stackrm/internal/teardown/bucket"
	"github.com/imamik/stackrm/internal/teardown/loggroups"
	"github.com/imamik/stackrm/internal/teardown/parameters"
	"github.com/imamik/stackrm/internal/util/naming"
	"github.com/imamik/stackrm/internal/util/retry"
)

func gracePeriod(ctx *teardown.Context) error {
	delay := ctx.Timeouts.PreflightDelay
	if ctx.Request.Immediate || delay <= 0 {
		ctx.Reporter.Status("Destroying %s immediately, hope you know what you're doing!", ctx.StackName)
		return nil
	}

	ctx.Reporter.Status("Destroying %s in %s...", ctx.StackName, humanDuration(delay))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func describeStack(ctx *teardown.Context) error {
	ctx.Reporter.Status("Destroying %s", ctx.StackName)

	stack, err := ctx.Clients.Stacks.DescribeStack(ctx, ctx.StackName)
	if err != nil {
		return &teardown.RemoteError{Op: "describe stack " + ctx.StackName, Err: err}
	}
	ctx.State.Stack = stack
	if !stack.Exists {
		ctx.Logger().V(1).Info("Stack not found, continuing with cleanup", "stack", ctx.StackName)
		return nil
	}

	if url, ok := stack.Outputs[naming.StaticBucketOutputKey]; ok {
		ctx.State.Inventory.StaticBucket = naming.BucketFromURL(url)
	}

	resources, err := ctx.Clients.Stacks.DescribeStackResources(ctx, ctx.StackName)
	if err != nil {
		return &teardown.RemoteError{Op: "describe resources of stack " + ctx.StackName, Err: err}
	}
	for _, r := range resources {
		if r.Type == naming.TableResourceType {
			ctx.State.Inventory.Tables = append(ctx.State.Inventory.Tables, tableName(r))
		}
	}
	return nil
}

// guardUserData checks the static bucket before tables so the bucket guard
// wins when both are present.
func guardUserData(ctx *teardown.Context) error {
	if ctx.Request.Force {
		return nil
	}
	inv := ctx.State.Inventory
	if inv.StaticBucket != "" {
		return &teardown.GuardError{Kind: teardown.GuardBucketExists, Resources: []string{inv.StaticBucket}}
	}
	if inv.HasTables() {
		return &teardown.GuardError{Kind: teardown.GuardTableExists, Resources: inv.Tables}
	}
	return nil
}

func emptyStaticBucket(ctx *teardown.Context) error {
	name := ctx.State.Inventory.StaticBucket
	if name == "" {
		return nil
	}

	ctx.Reporter.Status("Deleting static S3 bucket...")
	_, err := bucket.NewEmptier(ctx.Clients.Buckets, ctx.Metrics).Empty(ctx, name, true)
	return err
}

func emptyDeployBucket(ctx *teardown.Context) error {
	ctx.Reporter.Status("Retrieving deployment bucket...")

	param := naming.DeployBucketParameter(ctx.Request.AppName)
	name, found, err := ctx.Clients.Parameters.GetParameter(ctx, param)
	if err != nil {
		return &teardown.RemoteError{Op: "read parameter " + param, Err: err}
	}
	if !found || name == "" {
		return nil
	}
	ctx.State.DeployBucket = name

	ctx.Reporter.Status("Deleting deployment S3 bucket...")
	_, err = bucket.NewEmptier(ctx.Clients.Buckets, ctx.Metrics).Empty(ctx, name, true)
	return err
}

func purgeParameters(ctx *teardown.Context) error {
	if ctx.Request.Named() {
		ctx.Reporter.Status("Named environment found, skipping SSM parameter deletion")
		return nil
	}

	ctx.Reporter.Status("Deleting SSM parameters...")
	_, err := parameters.NewPurger(ctx.Clients.Parameters, ctx.Metrics).
		Purge(ctx, ctx.Request.AppName, ctx.Request.Environment)
	return err
}

func reapLogGroups(ctx *teardown.Context) error {
	ctx.Reporter.Status("Deleting CloudWatch log groups...")
	_, err := loggroups.NewReaper(ctx.Clients.LogGroups, ctx.Reporter, ctx.Metrics, ctx.Timeouts.LogDeleteStagger).
		Reap(ctx, ctx.StackName)
	return err
}

func deleteStack(ctx *teardown.Context) error {
	if !ctx.State.StackExists() {
		return nil
	}

	ctx.Reporter.Status("Destroying CloudFormation Stack %s...", ctx.StackName)
	if err := ctx.Clients.Stacks.DeleteStack(ctx, ctx.StackName); err != nil {
		return &teardown.RemoteError{Op: "delete stack " + ctx.StackName, Err: err}
	}
	ctx.State.DeletionRequested = true
	return nil
}

func waitForDeletion(ctx *teardown.Context) error {
	if !ctx.State.DeletionRequested {
		return nil
	}

	maxAttempts := ctx.MaxPollAttempts()
	err := retry.Poll(ctx, func(_ context.Context, attempt int) (bool, error) {
		ctx.State.PollAttempts = attempt
		ctx.Metrics.PollAttempt()

		stack, err := ctx.Clients.Stacks.DescribeStack(ctx, ctx.StackName)
		if err != nil {
			return false, &teardown.RemoteError{Op: "describe stack " + ctx.StackName, Err: err}
		}
		if !stack.Exists {
			return true, nil
		}
		if stack.Status == cloudformation.StatusDeleteFailed {
			return false, &teardown.PollFailedError{Stack: ctx.StackName, Reason: stack.StatusReason}
		}
		ctx.Logger().V(1).Info("Stack still deleting", "status", stack.Status, "attempt", attempt, "max", maxAttempts)
		return false, nil
	}, retry.WithMaxAttempts(maxAttempts), retry.WithInterval(ctx.Timeouts.PollInterval))

	if errors.Is(err, retry.ErrAttemptsExhausted) {
		return &teardown.PollTimeoutError{Stack: ctx.StackName, Attempts: maxAttempts}
	}
	if err != nil {
		return err
	}

	ctx.Metrics.Deleted(teardown.ResourceStacks, 1)
	ctx.Reporter.Done("Successfully destroyed %s", ctx.StackName)
	return nil
}

// tableName prefers the physical table name, which is what an operator
// sees in the console.
func tableName(r cloudformation.Resource) string {
	if r.PhysicalID != "" {
		return r.PhysicalID
	}
	return r.LogicalID
}

func humanDuration(d time.Duration) string {
	if d%time.Second == 0 {
		n := int(d / time.Second)
		if n == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", n)
	}
	return d.String()
}

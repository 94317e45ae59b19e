package cloudformation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
)

// Stack status values the destroy pipeline reacts to.
const (
	StatusDeleteFailed     = string(types.StackStatusDeleteFailed)
	StatusDeleteInProgress = string(types.StackStatusDeleteInProgress)
	StatusDeleteComplete   = string(types.StackStatusDeleteComplete)
)

// Stack is the remote state of a stack at the time it was described.
// Exists is false when CloudFormation reports that the stack does not exist.
type Stack struct {
	Name         string
	Exists       bool
	Status       string
	StatusReason string
	Outputs      map[string]string
}

// Resource is one resource attached to a stack.
type Resource struct {
	LogicalID  string
	PhysicalID string
	Type       string
}

// StackManager is the stack surface used by the destroy pipeline.
type StackManager interface {
	DescribeStack(ctx context.Context, name string) (*Stack, error)
	DescribeStackResources(ctx context.Context, name string) ([]Resource, error)
	DeleteStack(ctx context.Context, name string) error
}

var _ StackManager = (*Client)(nil)

// Client wraps the CloudFormation API.
type Client struct {
	api API
}

// NewClient creates a new CloudFormation client from a shared AWS config.
func NewClient(cfg aws.Config) *Client {
	return &Client{api: cloudformation.NewFromConfig(cfg)}
}

// NewClientWithAPI creates a client around an existing API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// DescribeStack fetches the current state of a stack.
// A stack that does not exist is returned with Exists set to false.
func (c *Client) DescribeStack(ctx context.Context, name string) (*Stack, error) {
	out, err := c.api.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if IsStackNotFound(err) {
			logr.FromContextOrDiscard(ctx).V(1).Info("Stack does not exist", "stack", name)
			return &Stack{Name: name}, nil
		}
		return nil, fmt.Errorf("failed to describe stack %s: %w", name, err)
	}

	if len(out.Stacks) == 0 {
		return &Stack{Name: name}, nil
	}

	s := out.Stacks[0]
	stack := &Stack{
		Name:         name,
		Exists:       s.StackStatus != types.StackStatusDeleteComplete,
		Status:       string(s.StackStatus),
		StatusReason: aws.ToString(s.StackStatusReason),
		Outputs:      make(map[string]string, len(s.Outputs)),
	}
	for _, o := range s.Outputs {
		if o.OutputKey != nil {
			stack.Outputs[*o.OutputKey] = aws.ToString(o.OutputValue)
		}
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Described stack",
		"stack", name, "status", stack.Status, "outputs", len(stack.Outputs))

	return stack, nil
}

// DescribeStackResources lists the resources attached to a stack.
func (c *Client) DescribeStackResources(ctx context.Context, name string) ([]Resource, error) {
	out, err := c.api.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe resources of stack %s: %w", name, err)
	}

	resources := make([]Resource, 0, len(out.StackResources))
	for _, r := range out.StackResources {
		resources = append(resources, Resource{
			LogicalID:  aws.ToString(r.LogicalResourceId),
			PhysicalID: aws.ToString(r.PhysicalResourceId),
			Type:       aws.ToString(r.ResourceType),
		})
	}
	return resources, nil
}

// DeleteStack requests deletion of a stack. Deletion completes asynchronously.
func (c *Client) DeleteStack(ctx context.Context, name string) error {
	_, err := c.api.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", name, err)
	}
	return nil
}

// IsStackNotFound reports whether err is CloudFormation's answer for a
// stack that does not exist: a ValidationError whose message reads
// "Stack with id <name> does not exist".
func IsStackNotFound(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" &&
			strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}

	return false
}

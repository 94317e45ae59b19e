package cloudformation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// DescribeStacksAPI is the subset of the CloudFormation API used to read
// stack status and outputs.
type DescribeStacksAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

// DescribeStackResourcesAPI is the subset of the CloudFormation API used to
// inspect the resources attached to a stack.
type DescribeStackResourcesAPI interface {
	DescribeStackResources(ctx context.Context, params *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error)
}

// DeleteStackAPI is the subset of the CloudFormation API used to delete a stack.
type DeleteStackAPI interface {
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

// API combines every CloudFormation operation the client needs.
type API interface {
	DescribeStacksAPI
	DescribeStackResourcesAPI
	DeleteStackAPI
}

var _ API = (*cloudformation.Client)(nil)

package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
)

// API is the subset of the CloudWatch Logs API the client needs.
type API interface {
	DescribeLogGroups(ctx context.Context, params *cloudwatchlogs.DescribeLogGroupsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
	DeleteLogGroup(ctx context.Context, params *cloudwatchlogs.DeleteLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error)
}

var _ API = (*cloudwatchlogs.Client)(nil)

// LogGroupPage is one page of a log group listing.
// NextToken is empty when the listing is exhausted.
type LogGroupPage struct {
	Names     []string
	NextToken string
}

// LogGroupManager is the logging surface used by the log group reaper.
type LogGroupManager interface {
	ListLogGroups(ctx context.Context, prefix, token string) (*LogGroupPage, error)
	DeleteLogGroup(ctx context.Context, name string) error
}

var _ LogGroupManager = (*Client)(nil)

// Client wraps the CloudWatch Logs API.
type Client struct {
	api API
}

// NewClient creates a new CloudWatch Logs client from a shared AWS config.
func NewClient(cfg aws.Config) *Client {
	return &Client{api: cloudwatchlogs.NewFromConfig(cfg)}
}

// NewClientWithAPI creates a client around an existing API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// ListLogGroups returns one page of log group names starting with prefix.
func (c *Client) ListLogGroups(ctx context.Context, prefix, token string) (*LogGroupPage, error) {
	input := &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(prefix),
	}
	if token != "" {
		input.NextToken = aws.String(token)
	}

	out, err := c.api.DescribeLogGroups(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to list log groups with prefix %s: %w", prefix, err)
	}

	page := &LogGroupPage{
		Names:     make([]string, 0, len(out.LogGroups)),
		NextToken: aws.ToString(out.NextToken),
	}
	for _, g := range out.LogGroups {
		if g.LogGroupName != nil {
			page.Names = append(page.Names, *g.LogGroupName)
		}
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Listed log groups",
		"prefix", prefix, "count", len(page.Names), "more", page.NextToken != "")

	return page, nil
}

// DeleteLogGroup deletes a log group. A group that is already gone is not an error.
func (c *Client) DeleteLogGroup(ctx context.Context, name string) error {
	_, err := c.api.DeleteLogGroup(ctx, &cloudwatchlogs.DeleteLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil {
		if isNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to delete log group %s: %w", name, err)
	}
	return nil
}

func isNotFoundError(err error) bool {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceNotFoundException"
	}

	return false
}

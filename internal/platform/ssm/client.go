package ssm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
)

const (
	// MaxDeleteBatch is the largest number of names DeleteParameters accepts.
	MaxDeleteBatch = 10
	// pageSize is the GetParametersByPath page size.
	pageSize = 10
)

// API is the subset of the SSM API the client needs.
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
	DeleteParameters(ctx context.Context, params *ssm.DeleteParametersInput, optFns ...func(*ssm.Options)) (*ssm.DeleteParametersOutput, error)
}

var _ API = (*ssm.Client)(nil)

// ParameterPage is one page of a path listing.
// NextToken is empty when the listing is exhausted.
type ParameterPage struct {
	Names     []string
	NextToken string
}

// ParameterStore is the configuration store surface used by the destroy pipeline.
type ParameterStore interface {
	GetParameter(ctx context.Context, name string) (value string, found bool, err error)
	ListParametersByPath(ctx context.Context, path, token string) (*ParameterPage, error)
	DeleteParameters(ctx context.Context, names []string) error
}

var _ ParameterStore = (*Client)(nil)

// Client wraps the SSM API.
type Client struct {
	api API
}

// NewClient creates a new SSM client from a shared AWS config.
func NewClient(cfg aws.Config) *Client {
	return &Client{api: ssm.NewFromConfig(cfg)}
}

// NewClientWithAPI creates a client around an existing API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// GetParameter reads a decrypted parameter value.
// found is false when the parameter does not exist.
func (c *Client) GetParameter(ctx context.Context, name string) (string, bool, error) {
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if IsParameterNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get parameter %s: %w", name, err)
	}
	if out.Parameter == nil {
		return "", false, nil
	}
	return aws.ToString(out.Parameter.Value), true, nil
}

// ListParametersByPath returns one page of parameter names under path,
// recursing into nested paths. A path with no parameters yields an empty page.
func (c *Client) ListParametersByPath(ctx context.Context, path, token string) (*ParameterPage, error) {
	input := &ssm.GetParametersByPathInput{
		Path:       aws.String(path),
		Recursive:  aws.Bool(true),
		MaxResults: aws.Int32(pageSize),
	}
	if token != "" {
		input.NextToken = aws.String(token)
	}

	out, err := c.api.GetParametersByPath(ctx, input)
	if err != nil {
		if IsParameterNotFound(err) {
			return &ParameterPage{}, nil
		}
		return nil, fmt.Errorf("failed to list parameters under %s: %w", path, err)
	}

	page := &ParameterPage{
		Names:     make([]string, 0, len(out.Parameters)),
		NextToken: aws.ToString(out.NextToken),
	}
	for _, p := range out.Parameters {
		if p.Name != nil {
			page.Names = append(page.Names, *p.Name)
		}
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Listed parameters",
		"path", path, "count", len(page.Names), "more", page.NextToken != "")

	return page, nil
}

// DeleteParameters deletes up to MaxDeleteBatch parameters.
// Names that no longer exist are reported by SSM as invalid and ignored.
func (c *Client) DeleteParameters(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return errors.New("no parameter names to delete")
	}
	if len(names) > MaxDeleteBatch {
		return fmt.Errorf("cannot delete %d parameters in one call (max %d)", len(names), MaxDeleteBatch)
	}

	out, err := c.api.DeleteParameters(ctx, &ssm.DeleteParametersInput{
		Names: names,
	})
	if err != nil {
		return fmt.Errorf("failed to delete %d parameters: %w", len(names), err)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Deleted parameters",
		"deleted", len(out.DeletedParameters), "missing", len(out.InvalidParameters))
	return nil
}

// IsParameterNotFound reports whether err means the parameter or path is absent.
func IsParameterNotFound(err error) bool {
	if err == nil {
		return false
	}

	var pnf *types.ParameterNotFound
	if errors.As(err, &pnf) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ParameterNotFound"
	}

	return false
}

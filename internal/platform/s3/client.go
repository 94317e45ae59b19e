package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
)

// MaxDeleteBatch is the largest number of keys a single DeleteObjects call accepts.
const MaxDeleteBatch = 1000

// ObjectPage is one page of a bucket listing.
// NextToken is empty when the listing is exhausted.
type ObjectPage struct {
	Keys      []string
	NextToken string
}

// BucketManager is the object storage surface used by the bucket emptier.
type BucketManager interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	ListObjects(ctx context.Context, bucket, token string) (*ObjectPage, error)
	DeleteObjects(ctx context.Context, bucket string, keys []string) error
	DeleteBucket(ctx context.Context, bucket string) error
}

var _ BucketManager = (*Client)(nil)

// Client wraps the S3 client.
type Client struct {
	s3 *s3.Client
}

// NewClient creates a new S3 client from a shared AWS config.
// Path-style addressing is used when an endpoint override is configured,
// which is what S3 emulators expect.
func NewClient(cfg aws.Config) *Client {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.BaseEndpoint != nil
	})
	return &Client{s3: client}
}

// BucketExists checks if a bucket exists and is accessible.
func (c *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	return true, nil
}

// ListObjects returns one page of object keys, starting at token.
func (c *Client) ListObjects(ctx context.Context, bucket, token string) (*ObjectPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if token != "" {
		input.ContinuationToken = aws.String(token)
	}

	result, err := c.s3.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects in bucket %s: %w", bucket, err)
	}

	page := &ObjectPage{Keys: make([]string, 0, len(result.Contents))}
	for _, obj := range result.Contents {
		if obj.Key != nil {
			page.Keys = append(page.Keys, *obj.Key)
		}
	}
	if aws.ToBool(result.IsTruncated) {
		page.NextToken = aws.ToString(result.NextContinuationToken)
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Listed objects",
		"bucket", bucket, "count", len(page.Keys), "truncated", page.NextToken != "")

	return page, nil
}

// DeleteObjects removes up to MaxDeleteBatch keys in one call.
// Per-key failures reported in a successful response are returned as an error.
func (c *Client) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if len(keys) > MaxDeleteBatch {
		return fmt.Errorf("cannot delete %d objects in one call (max %d)", len(keys), MaxDeleteBatch)
	}

	objects := make([]types.ObjectIdentifier, len(keys))
	for i, key := range keys {
		objects[i] = types.ObjectIdentifier{Key: aws.String(key)}
	}

	result, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete objects from bucket %s: %w", bucket, err)
	}

	if len(result.Errors) > 0 {
		first := result.Errors[0]
		return fmt.Errorf("failed to delete %d of %d objects from bucket %s: %s: %s %s",
			len(result.Errors), len(keys), bucket,
			aws.ToString(first.Key), aws.ToString(first.Code), aws.ToString(first.Message))
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Deleted objects", "bucket", bucket, "count", len(keys))
	return nil
}

// DeleteBucket deletes a bucket. The bucket must be empty.
// A bucket that is already gone is not an error.
func (c *Client) DeleteBucket(ctx context.Context, bucket string) error {
	_, err := c.s3.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		if isNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}
	return nil
}

// isNotFoundError checks if the error is a not found error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	// Check for typed S3 errors first
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	// Fall back to API error code checking for S3-compatible services
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket" || code == "404"
	}

	return false
}

package bucket

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/stackrm/internal/platform/s3"
	"github.com/imamik/stackrm/internal/teardown"
)

// Result summarizes what Empty did.
type Result struct {
	Existed        bool
	ObjectsDeleted int
	Batches        int
	BucketDeleted  bool
}

// Emptier deletes every object in a bucket.
type Emptier struct {
	buckets s3.BucketManager
	metrics *teardown.Metrics
}

// NewEmptier creates an emptier. metrics may be nil.
func NewEmptier(buckets s3.BucketManager, metrics *teardown.Metrics) *Emptier {
	return &Emptier{buckets: buckets, metrics: metrics}
}

// Empty deletes all objects in bucket and, when removeBucket is set, the
// bucket itself. A bucket that does not exist is left alone: no listing or
// deletion is attempted and no error is returned.
func (e *Emptier) Empty(ctx context.Context, bucket string, removeBucket bool) (*Result, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("bucket", bucket)
	result := &Result{}

	exists, err := e.buckets.BucketExists(ctx, bucket)
	if err != nil {
		return result, &teardown.ListError{Resource: "bucket " + bucket, Err: err}
	}
	if !exists {
		log.V(1).Info("Bucket does not exist, nothing to empty")
		return result, nil
	}
	result.Existed = true

	keys, err := e.collect(ctx, bucket)
	if err != nil {
		return result, err
	}

	for start := 0; start < len(keys); start += s3.MaxDeleteBatch {
		end := min(start+s3.MaxDeleteBatch, len(keys))
		if err := e.buckets.DeleteObjects(ctx, bucket, keys[start:end]); err != nil {
			return result, &teardown.DeleteError{
				Resource: fmt.Sprintf("objects %d-%d in bucket %s", start+1, end, bucket),
				Err:      err,
			}
		}
		result.Batches++
		result.ObjectsDeleted += end - start
		e.metrics.Deleted(teardown.ResourceObjects, end-start)
	}
	log.V(1).Info("Bucket emptied", "objects", result.ObjectsDeleted, "batches", result.Batches)

	if !removeBucket {
		return result, nil
	}

	if err := e.buckets.DeleteBucket(ctx, bucket); err != nil {
		return result, &teardown.DeleteError{Resource: "bucket " + bucket, Err: err}
	}
	result.BucketDeleted = true
	e.metrics.Deleted(teardown.ResourceBuckets, 1)

	return result, nil
}

// collect pages through the whole bucket listing.
func (e *Emptier) collect(ctx context.Context, bucket string) ([]string, error) {
	var keys []string
	token := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := e.buckets.ListObjects(ctx, bucket, token)
		if err != nil {
			return nil, &teardown.ListError{Resource: "objects in bucket " + bucket, Err: err}
		}
		keys = append(keys, page.Keys...)

		if page.NextToken == "" {
			return keys, nil
		}
		token = page.NextToken
	}
}

package teardown

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/imamik/stackrm/internal/platform/cloudformation"
	"github.com/imamik/stackrm/internal/platform/logs"
	"github.com/imamik/stackrm/internal/platform/s3"
	"github.com/imamik/stackrm/internal/platform/ssm"
)

// MockClient is a mock implementation of every remote API in Clients.
// Unset functions behave as an empty account: no stack, no bucket, no
// parameters, no log groups, and deletions succeed.
type MockClient struct {
	// Stacks
	DescribeStackFunc          func(ctx context.Context, name string) (*cloudformation.Stack, error)
	DescribeStackResourcesFunc func(ctx context.Context, name string) ([]cloudformation.Resource, error)
	DeleteStackFunc            func(ctx context.Context, name string) error

	// Buckets
	BucketExistsFunc  func(ctx context.Context, bucket string) (bool, error)
	ListObjectsFunc   func(ctx context.Context, bucket, token string) (*s3.ObjectPage, error)
	DeleteObjectsFunc func(ctx context.Context, bucket string, keys []string) error
	DeleteBucketFunc  func(ctx context.Context, bucket string) error

	// Parameters
	GetParameterFunc         func(ctx context.Context, name string) (string, bool, error)
	ListParametersByPathFunc func(ctx context.Context, path, token string) (*ssm.ParameterPage, error)
	DeleteParametersFunc     func(ctx context.Context, names []string) error

	// Log groups
	ListLogGroupsFunc  func(ctx context.Context, prefix, token string) (*logs.LogGroupPage, error)
	DeleteLogGroupFunc func(ctx context.Context, name string) error

	mu    sync.Mutex
	calls []string
}

var (
	_ cloudformation.StackManager = (*MockClient)(nil)
	_ s3.BucketManager            = (*MockClient)(nil)
	_ ssm.ParameterStore          = (*MockClient)(nil)
	_ logs.LogGroupManager        = (*MockClient)(nil)
)

// Clients returns a client bundle backed entirely by the mock.
func (m *MockClient) Clients() Clients {
	return Clients{Stacks: m, Buckets: m, Parameters: m, LogGroups: m}
}

// Calls returns the recorded calls in order, formatted as "Op(arg)".
func (m *MockClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns how many times op was called.
func (m *MockClient) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if strings.HasPrefix(c, op+"(") {
			n++
		}
	}
	return n
}

func (m *MockClient) record(op string, arg any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, fmt.Sprintf("%s(%v)", op, arg))
}

// DescribeStack mocks describing a stack.
func (m *MockClient) DescribeStack(ctx context.Context, name string) (*cloudformation.Stack, error) {
	m.record("DescribeStack", name)
	if m.DescribeStackFunc != nil {
		return m.DescribeStackFunc(ctx, name)
	}
	return &cloudformation.Stack{Name: name}, nil
}

// DescribeStackResources mocks listing stack resources.
func (m *MockClient) DescribeStackResources(ctx context.Context, name string) ([]cloudformation.Resource, error) {
	m.record("DescribeStackResources", name)
	if m.DescribeStackResourcesFunc != nil {
		return m.DescribeStackResourcesFunc(ctx, name)
	}
	return nil, nil
}

// DeleteStack mocks requesting stack deletion.
func (m *MockClient) DeleteStack(ctx context.Context, name string) error {
	m.record("DeleteStack", name)
	if m.DeleteStackFunc != nil {
		return m.DeleteStackFunc(ctx, name)
	}
	return nil
}

// BucketExists mocks the bucket existence probe.
func (m *MockClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	m.record("BucketExists", bucket)
	if m.BucketExistsFunc != nil {
		return m.BucketExistsFunc(ctx, bucket)
	}
	return false, nil
}

// ListObjects mocks one page of a bucket listing.
func (m *MockClient) ListObjects(ctx context.Context, bucket, token string) (*s3.ObjectPage, error) {
	m.record("ListObjects", bucket)
	if m.ListObjectsFunc != nil {
		return m.ListObjectsFunc(ctx, bucket, token)
	}
	return &s3.ObjectPage{}, nil
}

// DeleteObjects mocks a bulk object deletion.
func (m *MockClient) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	m.record("DeleteObjects", bucket)
	if m.DeleteObjectsFunc != nil {
		return m.DeleteObjectsFunc(ctx, bucket, keys)
	}
	return nil
}

// DeleteBucket mocks bucket deletion.
func (m *MockClient) DeleteBucket(ctx context.Context, bucket string) error {
	m.record("DeleteBucket", bucket)
	if m.DeleteBucketFunc != nil {
		return m.DeleteBucketFunc(ctx, bucket)
	}
	return nil
}

// GetParameter mocks reading a parameter.
func (m *MockClient) GetParameter(ctx context.Context, name string) (string, bool, error) {
	m.record("GetParameter", name)
	if m.GetParameterFunc != nil {
		return m.GetParameterFunc(ctx, name)
	}
	return "", false, nil
}

// ListParametersByPath mocks one page of a parameter path listing.
func (m *MockClient) ListParametersByPath(ctx context.Context, path, token string) (*ssm.ParameterPage, error) {
	m.record("ListParametersByPath", path)
	if m.ListParametersByPathFunc != nil {
		return m.ListParametersByPathFunc(ctx, path, token)
	}
	return &ssm.ParameterPage{}, nil
}

// DeleteParameters mocks a batch parameter deletion.
func (m *MockClient) DeleteParameters(ctx context.Context, names []string) error {
	m.record("DeleteParameters", len(names))
	if m.DeleteParametersFunc != nil {
		return m.DeleteParametersFunc(ctx, names)
	}
	return nil
}

// ListLogGroups mocks one page of a log group listing.
func (m *MockClient) ListLogGroups(ctx context.Context, prefix, token string) (*logs.LogGroupPage, error) {
	m.record("ListLogGroups", prefix)
	if m.ListLogGroupsFunc != nil {
		return m.ListLogGroupsFunc(ctx, prefix, token)
	}
	return &logs.LogGroupPage{}, nil
}

// DeleteLogGroup mocks log group deletion.
func (m *MockClient) DeleteLogGroup(ctx context.Context, name string) error {
	m.record("DeleteLogGroup", name)
	if m.DeleteLogGroupFunc != nil {
		return m.DeleteLogGroupFunc(ctx, name)
	}
	return nil
}

// Report levels recorded by RecordingReporter.
const (
	LevelStatus = "status"
	LevelWarn   = "warn"
	LevelDone   = "done"
	LevelError  = "error"
)

// Report is one line received by a RecordingReporter.
type Report struct {
	Level   string
	Message string
}

// RecordingReporter keeps every reported line in memory.
type RecordingReporter struct {
	mu      sync.Mutex
	reports []Report
}

// NewRecordingReporter creates an empty recording reporter.
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) Status(format string, args ...any) { r.add(LevelStatus, format, args) }
func (r *RecordingReporter) Warn(format string, args ...any)   { r.add(LevelWarn, format, args) }
func (r *RecordingReporter) Done(format string, args ...any)   { r.add(LevelDone, format, args) }
func (r *RecordingReporter) Error(format string, args ...any)  { r.add(LevelError, format, args) }

func (r *RecordingReporter) add(level, format string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Level: level, Message: fmt.Sprintf(format, args...)})
}

// Reports returns all recorded lines in order.
func (r *RecordingReporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Messages returns the messages recorded at the given level.
func (r *RecordingReporter) Messages(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, rep := range r.reports {
		if rep.Level == level {
			out = append(out, rep.Message)
		}
	}
	return out
}

package s3

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

func TestNewClient_PathStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint *string
		want     bool
	}{
		{"default endpoint uses virtual hosts", nil, false},
		{"endpoint override uses path style", aws.String("http://localhost:4566"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := NewClient(aws.Config{Region: "us-east-1", BaseEndpoint: tt.endpoint})
			if got := client.s3.Options().UsePathStyle; got != tt.want {
				t.Errorf("UsePathStyle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{"typed NotFound", &types.NotFound{}, true},
		{"typed NoSuchBucket", &types.NoSuchBucket{}, true},
		{"wrapped NoSuchBucket", fmt.Errorf("outer: %w", &types.NoSuchBucket{}), true},
		{"generic NoSuchBucket code", &smithy.GenericAPIError{Code: "NoSuchBucket"}, true},
		{"generic 404 code", &smithy.GenericAPIError{Code: "404"}, true},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isNotFoundError(tt.err); got != tt.want {
				t.Errorf("isNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

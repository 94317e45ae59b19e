package destroy

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/imamik/stackrm/internal/platform/awsconf"
	"github.com/imamik/stackrm/internal/platform/cloudformation"
	"github.com/imamik/stackrm/internal/platform/logs"
	"github.com/imamik/stackrm/internal/platform/s3"
	"github.com/imamik/stackrm/internal/platform/ssm"
	"github.com/imamik/stackrm/internal/teardown"
)

// NewClients loads the AWS config for opts and builds the remote client bundle.
func NewClients(ctx context.Context, opts awsconf.Options) (teardown.Clients, error) {
	cfg, err := awsconf.LoadConfig(ctx, opts)
	if err != nil {
		return teardown.Clients{}, &teardown.RemoteError{Op: "configure AWS clients", Err: err}
	}
	return NewClientsFromConfig(cfg), nil
}

// NewClientsFromConfig builds the remote client bundle from one shared AWS config.
func NewClientsFromConfig(cfg aws.Config) teardown.Clients {
	return teardown.Clients{
		Stacks:     cloudformation.NewClient(cfg),
		Buckets:    s3.NewClient(cfg),
		Parameters: ssm.NewClient(cfg),
		LogGroups:  logs.NewClient(cfg),
	}
}

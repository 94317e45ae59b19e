package awsconf

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-logr/logr"
)

// Options selects the account and region a destroy run talks to.
// Zero values fall back to the AWS SDK default chain.
type Options struct {
	Region   string
	Profile  string
	Endpoint string // Override for LocalStack and similar emulators

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// HasStaticCredentials reports whether explicit credentials were supplied.
func (o Options) HasStaticCredentials() bool {
	return o.AccessKeyID != "" || o.SecretAccessKey != ""
}

// Validate checks that static credentials are complete.
func (o Options) Validate() error {
	if o.HasStaticCredentials() && (o.AccessKeyID == "" || o.SecretAccessKey == "") {
		return errors.New("both access key id and secret access key are required")
	}
	if o.SessionToken != "" && !o.HasStaticCredentials() {
		return errors.New("session token requires an access key id and secret access key")
	}
	return nil
}

// LoadConfig builds the AWS configuration for the given options.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	if err := opts.Validate(); err != nil {
		return aws.Config{}, fmt.Errorf("invalid AWS options: %w", err)
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.HasStaticCredentials() {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken),
		))
	}
	if opts.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(opts.Endpoint))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return aws.Config{}, errors.New("no AWS region configured: set it in stackrm.yaml, with --region or AWS_REGION")
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("Loaded AWS config",
		"region", cfg.Region, "profile", opts.Profile, "endpoint", opts.Endpoint)

	return cfg, nil
}

//go:build e2e

// Package e2e runs stackrm against a live AWS API.
//
// The suite seeds real buckets, parameters, log groups and stacks, runs the
// destroy pipeline and checks that nothing is left behind. It targets
// LocalStack by default.
//
// Run with:
//
//	STACKRM_E2E=1 go test -v -tags=e2e ./tests/e2e/...
//
// Environment:
//   - STACKRM_E2E_ENDPOINT (default: http://localhost:4566, empty string for real AWS)
//   - STACKRM_E2E_REGION (default: us-east-1)
package e2e

import (
	"context"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/imamik/stackrm/internal/platform/awsconf"
)

var (
	ctx     context.Context
	cancel  context.CancelFunc
	awsOpts awsconf.Options
	awsCfg  aws.Config
)

// TestE2E is the entry point for Ginkgo tests.
func TestE2E(t *testing.T) {
	if os.Getenv("STACKRM_E2E") != "1" {
		t.Skip("set STACKRM_E2E=1 to run against a live AWS endpoint")
	}
	RegisterFailHandler(Fail)
	RunSpecs(t, "stackrm E2E Suite")
}

var _ = BeforeSuite(func() {
	ctx, cancel = context.WithCancel(context.Background())

	awsOpts = awsconf.Options{
		Region:   envOr("STACKRM_E2E_REGION", "us-east-1"),
		Endpoint: envOr("STACKRM_E2E_ENDPOINT", "http://localhost:4566"),
	}
	if awsOpts.Endpoint != "" {
		awsOpts.AccessKeyID = "test"
		awsOpts.SecretAccessKey = "test"
	}

	By("loading the AWS config")
	var err error
	awsCfg, err = awsconf.LoadConfig(ctx, awsOpts)
	Expect(err).NotTo(HaveOccurred())

	id, err := awsconf.CallerIdentity(ctx, awsCfg)
	Expect(err).NotTo(HaveOccurred())
	GinkgoWriter.Printf("Running as %s in account %s\n", id.ARN, id.Account)
})

var _ = AfterSuite(func() {
	if cancel != nil {
		cancel()
	}
})

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

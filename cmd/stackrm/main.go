// Package main is the entry point for the stackrm CLI.
//
// stackrm tears down a deployed serverless application environment on AWS:
// its CloudFormation stack, static and deployment buckets, SSM parameters
// and CloudWatch log groups.
//
// Commands: destroy, version, completion.
//
// For detailed usage information, run:
//
//	stackrm --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/stackrm/cmd/stackrm/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

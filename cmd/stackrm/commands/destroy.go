package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackrm/cmd/stackrm/handlers"
)

// Destroy returns the destroy command.
func Destroy() *cobra.Command {
	var opts handlers.DestroyOptions

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy an application environment and everything it owns",
		Long: `Destroy removes a deployed application environment from AWS.

The following are deleted, in order:
  - Static assets bucket (requires --force)
  - Deployment bucket
  - SSM parameters of the environment
  - CloudWatch log groups of the stack's functions
  - The CloudFormation stack itself

Stacks that own DynamoDB tables are only destroyed with --force.
Staging is destroyed unless --production is given.

Example:
  stackrm destroy --app my-app
  stackrm destroy --app my-app --production --force

WARNING: This operation is irreversible. Static assets and table data will be lost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the application manifest (default: nearest stackrm.yaml)")
	f.StringVar(&opts.AppName, "app", "", "Name of the app to destroy; must match the manifest")
	f.BoolVar(&opts.Production, "production", false, "Destroy the production environment instead of staging")
	f.BoolVarP(&opts.Force, "force", "f", false, "Also destroy static assets and database tables")
	f.StringVar(&opts.Name, "name", "", "Destroy a named environment (e.g. a pull request stack)")
	f.BoolVar(&opts.Now, "now", false, "Skip the grace period before deleting")
	f.BoolVar(&opts.NoTimeout, "no-timeout", false, "Keep waiting for the stack deletion far beyond the default budget")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress progress output")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every remote call to stderr")
	f.BoolVar(&opts.TUI, "tui", false, "Show a live progress dashboard (terminal only)")
	f.StringVar(&opts.Region, "region", "", "AWS region (overrides the manifest)")
	f.StringVar(&opts.Profile, "profile", "", "AWS shared config profile (overrides the manifest)")
	f.StringVar(&opts.EndpointURL, "endpoint-url", "", "Custom AWS endpoint, e.g. LocalStack")
	f.StringVar(&opts.AccessKeyID, "access-key-id", "", "AWS access key ID")
	f.StringVar(&opts.SecretAccessKey, "secret-access-key", "", "AWS secret access key")
	f.StringVar(&opts.SessionToken, "session-token", "", "AWS session token")
	f.StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write run metrics to this Prometheus textfile")

	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	cmd.MarkFlagsMutuallyExclusive("quiet", "tui")

	return cmd
}

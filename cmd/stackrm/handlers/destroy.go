package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/imamik/stackrm/internal/config"
	"github.com/imamik/stackrm/internal/platform/awsconf"
	"github.com/imamik/stackrm/internal/teardown"
	"github.com/imamik/stackrm/internal/teardown/destroy"
	"github.com/imamik/stackrm/internal/ui/tui"
)

// ErrNoAppName is returned when --app does not name the manifest's app.
var ErrNoAppName = errors.New("no_app_name")

// DestroyOptions carries the destroy command's flags.
type DestroyOptions struct {
	ConfigPath string
	AppName    string
	Production bool
	Force      bool
	Name       string
	Now        bool
	NoTimeout  bool
	Quiet      bool
	Verbose    bool
	TUI        bool

	Region          string
	Profile         string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	MetricsTextfile string
}

// Factory function variables for destroy - can be replaced in tests.
var (
	findManifest  = config.FindManifest
	loadManifest  = config.LoadManifest
	loadTimeouts  = config.LoadTimeouts
	loadAWSConfig = awsconf.LoadConfig

	newClients = func(cfg aws.Config) teardown.Clients {
		return destroy.NewClientsFromConfig(cfg)
	}
	callerIdentity = awsconf.CallerIdentity
	runDestroy     = destroy.Run
	runDashboard   = tui.RunDestroyTUI

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Destroy handles the destroy command.
//
// It loads the manifest, checks that --app names the manifest's app and
// runs the destroy pipeline against the selected environment.
func Destroy(ctx context.Context, opts DestroyOptions) error {
	manifest, err := resolveManifest(opts.ConfigPath)
	if err != nil {
		return err
	}

	errOut := teardown.NewConsoleReporter(stderr)
	var reporter teardown.Reporter = teardown.NewConsoleReporter(stdout)
	if opts.Quiet {
		reporter = teardown.NewQuietReporter()
	}

	appName, err := confirmAppName(ctx, opts.AppName, manifest.App)
	if err != nil {
		errOut.Warn("If you're really sure you want to destroy this app, run destroy with: --app %s", manifest.App)
		return err
	}

	if opts.Verbose {
		ctx = logr.NewContext(ctx, newDebugLogger(stderr))
	}

	timeouts, err := loadTimeouts()
	if err != nil {
		return err
	}

	req := &teardown.Request{
		AppName:     appName,
		Environment: environment(opts.Production),
		StackSuffix: opts.Name,
		Force:       opts.Force,
		Immediate:   opts.Now,
		AWS:         awsOptions(opts, manifest),
	}
	if opts.NoTimeout {
		req.MaxPollAttempts = timeouts.UnlimitedPollAttempts
	}
	if err := req.Validate(); err != nil {
		return err
	}

	reporter.Status("Destroying %s environment", req.Environment)
	if req.Environment == teardown.EnvironmentStaging {
		reporter.Status("Reminder: if you deployed to production, don't forget to run destroy again with: --production")
	}

	cfg, err := loadAWSConfig(ctx, req.AWS)
	if err != nil {
		return &teardown.RemoteError{Op: "configure AWS clients", Err: err}
	}
	if id, err := callerIdentity(ctx, cfg); err != nil {
		reporter.Warn("Could not determine the AWS account: %v", err)
	} else {
		reporter.Status("Using AWS account %s (%s) in %s", id.Account, id.ARN, cfg.Region)
	}

	metrics := teardown.NewMetrics(req.StackName())
	runOpts := []destroy.Option{
		destroy.WithClients(newClients(cfg)),
		destroy.WithTimeouts(timeouts),
		destroy.WithMetrics(metrics),
	}

	var runErr error
	if opts.TUI && !opts.Quiet && isInteractive() {
		runErr = runDashboard(ctx, func(ctx context.Context, b *tui.Bridge) error {
			_, err := runDestroy(ctx, req, append(runOpts, destroy.WithReporter(b), destroy.WithObserver(b))...)
			return err
		}, req.StackName(), req.Environment, phaseNames())
	} else {
		_, runErr = runDestroy(ctx, req, append(runOpts, destroy.WithReporter(reporter))...)
	}

	if opts.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(opts.MetricsTextfile); err != nil {
			reporter.Warn("Could not write metrics: %v", err)
		}
	}

	if runErr != nil {
		explain(errOut, runErr)
		return runErr
	}
	return nil
}

func phaseNames() []string {
	var names []string
	for _, p := range destroy.Phases() {
		names = append(names, p.Name())
	}
	return names
}

func resolveManifest(path string) (*config.Manifest, error) {
	if path == "" {
		found, err := findManifest()
		if err != nil {
			return nil, err
		}
		path = found
	}
	return loadManifest(path)
}

func environment(production bool) string {
	if production {
		return teardown.EnvironmentProduction
	}
	return teardown.EnvironmentStaging
}

// awsOptions resolves region and profile with flags taking precedence over
// the manifest. Anything left empty falls through to the SDK default chain.
func awsOptions(opts DestroyOptions, m *config.Manifest) awsconf.Options {
	o := awsconf.Options{
		Region:          m.AWS.Region,
		Profile:         m.AWS.Profile,
		Endpoint:        opts.EndpointURL,
		AccessKeyID:     opts.AccessKeyID,
		SecretAccessKey: opts.SecretAccessKey,
		SessionToken:    opts.SessionToken,
	}
	if opts.Region != "" {
		o.Region = opts.Region
	}
	if opts.Profile != "" {
		o.Profile = opts.Profile
	}
	return o
}

// explain prints remediation for errors an operator can act on.
func explain(r teardown.Reporter, err error) {
	var guard *teardown.GuardError
	if !errors.As(err, &guard) {
		return
	}

	switch guard.Kind {
	case teardown.GuardBucketExists:
		r.Error("Found static bucket!")
	case teardown.GuardTableExists:
		r.Error("Found DynamoDB table(s)!")
	}
	r.Warn("To destroy this app (and any static assets and database tables that belong to it), run destroy with: --force")
}

func newDebugLogger(w io.Writer) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: 1})
}

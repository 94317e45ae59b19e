package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Timeouts holds the configurable timings of a destroy run.
type Timeouts struct {
	PreflightDelay        time.Duration `env:"STACKRM_PREFLIGHT_DELAY" envDefault:"5s"`          // Grace period before anything is deleted
	PollInterval          time.Duration `env:"STACKRM_POLL_INTERVAL" envDefault:"10s"`           // Wait between stack deletion checks
	LogDeleteStagger      time.Duration `env:"STACKRM_LOG_DELETE_STAGGER" envDefault:"400ms"`    // Spacing between log group deletions
	MaxPollAttempts       int           `env:"STACKRM_MAX_POLL_ATTEMPTS" envDefault:"15"`        // Stack deletion checks before giving up
	UnlimitedPollAttempts int           `env:"STACKRM_UNLIMITED_POLL_ATTEMPTS" envDefault:"999"` // Budget used with --no-timeout
}

// LoadTimeouts loads timings from environment variables.
//
// Environment Variables:
//   - STACKRM_PREFLIGHT_DELAY (default: 5s)
//   - STACKRM_POLL_INTERVAL (default: 10s)
//   - STACKRM_LOG_DELETE_STAGGER (default: 400ms)
//   - STACKRM_MAX_POLL_ATTEMPTS (default: 15)
//   - STACKRM_UNLIMITED_POLL_ATTEMPTS (default: 999)
func LoadTimeouts() (*Timeouts, error) {
	t := &Timeouts{}
	if err := env.Parse(t); err != nil {
		return nil, fmt.Errorf("parsing timeouts: %w", err)
	}
	return t, nil
}

// DefaultTimeouts returns the built-in timings, ignoring the environment.
func DefaultTimeouts() *Timeouts {
	return &Timeouts{
		PreflightDelay:        5 * time.Second,
		PollInterval:          10 * time.Second,
		LogDeleteStagger:      400 * time.Millisecond,
		MaxPollAttempts:       15,
		UnlimitedPollAttempts: 999,
	}
}

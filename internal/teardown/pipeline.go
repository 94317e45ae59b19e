package teardown

import (
	"time"
)

// RunPhases executes all destroy phases sequentially.
// The first failing phase stops the run and its error is returned as is.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	log := ctx.Logger().WithValues("stack", ctx.StackName)
	log.V(1).Info("Starting destroy", "phases", len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return err
		}

		phaseStart := time.Now()
		plog := log.WithValues("phase", phase.Name(), "step", i+1, "of", len(phases))
		plog.V(1).Info("Phase starting")
		if ctx.Observer != nil {
			ctx.Observer.PhaseStarted(phase.Name())
		}

		err := phase.Run(ctx)
		if ctx.Observer != nil {
			ctx.Observer.PhaseFinished(phase.Name(), err)
		}
		if err != nil {
			plog.V(1).Info("Phase failed", "error", err.Error())
			ctx.Metrics.ObserveRun(time.Since(start), false)
			return err
		}

		plog.V(1).Info("Phase completed", "duration", time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.Metrics.ObserveRun(time.Since(start), true)
	log.V(1).Info("Destroy completed", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

type funcPhase struct {
	name string
	run  func(*Context) error
}

func (p funcPhase) Name() string           { return p.name }
func (p funcPhase) Run(ctx *Context) error { return p.run(ctx) }

// NewPhase adapts a function to the Phase interface.
func NewPhase(name string, run func(*Context) error) Phase {
	return funcPhase{name: name, run: run}
}

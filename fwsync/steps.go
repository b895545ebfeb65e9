package fwsync

import "context"

// step is one named, independently-invokable unit of the pipeline. Steps
// tag their own errors with the failing operation, so the runner only has
// to log and abort.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// runSteps executes steps strictly in order and aborts at the first
// failure. There is no internal parallelism: sequential execution is what
// makes the cross-collection ordering invariants hold.
func (e *Engine) runSteps(ctx context.Context, phase string, steps []step) error {
	for _, s := range steps {
		start := e.now()
		if err := s.run(ctx); err != nil {
			e.logger.Error("sync step failed", "phase", phase, "step", s.name, "error", err)
			return err
		}
		e.logger.Debug("sync step completed", "phase", phase, "step", s.name, "elapsed", e.now().Sub(start))
	}
	return nil
}

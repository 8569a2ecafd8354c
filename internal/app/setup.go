package app

import (
	"context"
	"fmt"

	"terraweave.app/internal/ports"
)

// SetupStep is one named unit of startup work. A failing fatal step aborts startup;
// a failing non-fatal step is logged and skipped.
type SetupStep struct {
	Name  string
	Fatal bool
	Run   func(ctx context.Context) error
}

// RunSetup executes steps in order and returns the first fatal failure
func RunSetup(ctx context.Context, steps []SetupStep, logger ports.Logger) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("setup interrupted before %s: %w", step.Name, err)
		}

		if err := step.Run(ctx); err != nil {
			if step.Fatal {
				logger.Error("Setup step failed", ports.F("step", step.Name), ports.F("error", err))
				return fmt.Errorf("%s: %w", step.Name, err)
			}
			logger.Warn("Setup step failed, continuing", ports.F("step", step.Name), ports.F("error", err))
			continue
		}

		logger.Debug("Setup step completed", ports.F("step", step.Name))
	}
	return nil
}

package ports

import (
	"context"

	"go.trai.ch/emforge/internal/core/domain"
)

// Runner executes external toolchain processes. It is the capability
// boundary around process spawning so tests can substitute a fake without
// invoking real toolchains.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run starts cmd, streams its output while capturing it, and blocks
	// until the process exits.
	//
	// The returned result is populated even on failure so callers can
	// report the exit code and captured stderr. Run returns an error when
	// the process cannot be spawned, exits non-zero, or is cancelled via
	// ctx.
	Run(ctx context.Context, cmd domain.Command) (domain.InvocationResult, error)
}

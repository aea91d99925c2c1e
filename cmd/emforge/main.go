// Package main is the entry point for the emforge build tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/emforge/cmd/emforge/commands"
	"go.trai.ch/emforge/internal/adapters/logger"
	"go.trai.ch/emforge/internal/app"
	"go.trai.ch/emforge/internal/core/domain"
	_ "go.trai.ch/emforge/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	opts := commands.Options{}
	if lg, ok := components.Logger.(*logger.Logger); ok {
		opts.OnVerbose = func() { lg.SetVerbose(true) }
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Defaults, opts)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps a pipeline failure to its stage-specific exit code.
// Anything without a stage (flag parsing, configuration, IO) exits 1.
func exitCode(err error) int {
	stage, ok := domain.StageOf(err)
	if !ok {
		return 1
	}
	switch stage {
	case domain.StageClassification:
		return 2
	case domain.StageComposition:
		return 3
	case domain.StageInvocation:
		return 4
	default:
		return 1
	}
}

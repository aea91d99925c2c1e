package domain

import (
	"strings"
	"time"
)

// Command describes one external toolchain process to run.
type Command struct {
	// Step is a short human-readable name ("configure", "build", "compile").
	Step string
	Tool string
	Args []string
	// Dir is the working directory for the process.
	Dir string
	// Env holds extra KEY=VALUE entries layered over the system environment.
	Env []string
}

func (c Command) String() string {
	return c.Tool + " " + strings.Join(c.Args, " ")
}

// InvocationResult captures the outcome of one toolchain process.
// Output is streamed to the logger while it runs and retained here for
// error reporting.
type InvocationResult struct {
	Step     string
	Tool     string
	Args     []string
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Outcome is the result of a successful build run.
type Outcome struct {
	Strategy Strategy
	// Artifacts are the absolute paths produced in the output directory.
	Artifacts []string
	Results   []InvocationResult
}

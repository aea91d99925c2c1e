// Package shell provides the os/exec-based toolchain runner.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTailLimit bounds the stderr excerpt attached to error metadata.
// The full stream is still retained in the InvocationResult.
const stderrTailLimit = 4096

// Runner implements ports.Runner using os/exec. Process output is streamed
// line by line to the logger for visibility and captured in full for the
// InvocationResult.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and blocks until it exits.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.InvocationResult, error) {
	res := domain.InvocationResult{
		Step: cmd.Step,
		Tool: cmd.Tool,
		Args: cmd.Args,
		Dir:  cmd.Dir,
	}

	env := resolveEnvironment(os.Environ(), cmd.Env)

	// Resolve the executable against the merged PATH so an env file that
	// activates the Emscripten SDK takes effect for lookup too.
	executable := cmd.Tool
	if !filepath.IsAbs(executable) {
		lp, err := lookPath(cmd.Tool, env)
		if err != nil {
			res.ExitCode = -1
			return res, zerr.With(errors.Join(domain.ErrToolNotFound, err), "tool", cmd.Tool)
		}
		executable = lp
	}

	proc := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // toolchain invocation composed from config
	if len(proc.Args) > 0 {
		// Preserve the tool name as invoked instead of the resolved path.
		proc.Args[0] = cmd.Tool
	}
	if cmd.Dir != "" {
		proc.Dir = cmd.Dir
	}
	proc.Env = env

	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: r.logger, level: levelInfo}
	stderrLog := &logWriter{logger: r.logger, level: levelWarn}
	proc.Stdout = io.MultiWriter(&stdout, stdoutLog)
	proc.Stderr = io.MultiWriter(&stderr, stderrLog)

	r.logger.Debug("running " + cmd.String())

	start := time.Now()
	err := proc.Run()
	res.Duration = time.Since(start)

	stdoutLog.Flush()
	stderrLog.Flush()

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if err == nil {
		res.ExitCode = 0
		return res, nil
	}

	if ctx.Err() != nil {
		res.ExitCode = -1
		return res, zerr.With(zerr.Wrap(domain.ErrBuildCancelled, ""), "step", cmd.Step)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		failure := zerr.With(errors.Join(domain.ErrToolchainFailed, err), "exit_code", res.ExitCode)
		if tail := tailOf(res.Stderr); tail != "" {
			failure = zerr.With(failure, "stderr", tail)
		}
		return res, failure
	}

	res.ExitCode = -1
	return res, zerr.With(errors.Join(domain.ErrProcessSpawnFailed, err), "tool", cmd.Tool)
}

// tailOf returns the trailing portion of captured stderr for error metadata.
func tailOf(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= stderrTailLimit {
		return s
	}
	return s[len(s)-stderrTailLimit:]
}

// resolveEnvironment layers extra KEY=VALUE entries over the system
// environment. PATH entries from the extra environment are prepended so
// SDK toolchain binaries shadow system ones.
func resolveEnvironment(sysEnv, extraEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv))
	order := make([]string, 0, len(sysEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range extraEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		if k == "PATH" && envMap["PATH"] != "" {
			envMap[k] = v + string(os.PathListSeparator) + envMap["PATH"]
			continue
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: empty path element means ".".
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

var _ ports.Runner = (*Runner)(nil)

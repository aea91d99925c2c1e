// Package invoker turns a classified project and a composed flag set into
// toolchain invocations and verifies the produced artifacts.
package invoker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Toolchain entry points. emcmake and emmake wrap cmake/make so the
// project's own build system picks up the Emscripten compilers.
const (
	toolEmcc    = "emcc"
	toolEmcmake = "emcmake"
	toolEmmake  = "emmake"
)

// Invoker runs the per-strategy build plan through a Runner.
type Invoker struct {
	runner ports.Runner
	logger ports.Logger
}

// New creates an Invoker.
func New(runner ports.Runner, logger ports.Logger) *Invoker {
	return &Invoker{runner: runner, logger: logger}
}

// Invoke prepares the output directory, runs every step of the strategy's
// plan in order, and verifies the expected artifacts exist. The first
// failing step halts the plan; its partial result is still returned in the
// outcome so callers can report exit code and captured stderr.
func (i *Invoker) Invoke(
	ctx context.Context,
	cfg domain.BuildConfiguration,
	strategy domain.Strategy,
	fs domain.FlagSet,
	env []string,
) (*domain.Outcome, error) {
	if err := os.MkdirAll(cfg.OutputDir, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrOutputDirCreateFailed, err), "dir", cfg.OutputDir)
	}

	plan, err := i.plan(cfg, strategy, fs)
	if err != nil {
		return nil, err
	}

	outcome := &domain.Outcome{Strategy: strategy}
	for _, cmd := range plan {
		cmd.Env = env
		i.logger.Info(fmt.Sprintf("[%s] %s", cmd.Step, cmd.String()))

		result, runErr := i.runner.Run(ctx, cmd)
		outcome.Results = append(outcome.Results, result)
		if runErr != nil {
			return outcome, runErr
		}
	}

	switch strategy.Kind {
	case domain.StrategyMakefile:
		if err := i.collectArtifacts(cfg, cfg.ProjectPath, false); err != nil {
			return outcome, err
		}
	case domain.StrategyCMake:
		if err := i.collectArtifacts(cfg, cfg.CMakeBuildDir(), true); err != nil {
			return outcome, err
		}
	}

	for _, artifact := range cfg.ExpectedArtifacts() {
		if _, err := os.Stat(artifact); err != nil {
			return outcome, zerr.With(errors.Join(domain.ErrArtifactMissing, err), "artifact", artifact)
		}
		outcome.Artifacts = append(outcome.Artifacts, artifact)
	}

	return outcome, nil
}

func (i *Invoker) plan(cfg domain.BuildConfiguration, strategy domain.Strategy, fs domain.FlagSet) ([]domain.Command, error) {
	switch strategy.Kind {
	case domain.StrategyCMake:
		buildDir := cfg.CMakeBuildDir()
		if err := os.MkdirAll(buildDir, domain.DirPerm); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrOutputDirCreateFailed, err), "dir", buildDir)
		}
		return []domain.Command{
			{
				Step: "configure",
				Tool: toolEmcmake,
				Args: []string{
					"cmake", cfg.ProjectPath,
					"-B", buildDir,
					"-DCMAKE_BUILD_TYPE=" + string(cfg.Mode),
					"-DCMAKE_EXE_LINKER_FLAGS=" + fs.Join(),
				},
				Dir: cfg.ProjectPath,
			},
			{
				Step: "build",
				Tool: toolEmmake,
				Args: []string{"make"},
				Dir:  buildDir,
			},
		}, nil

	case domain.StrategyMakefile:
		joined := fs.Join()
		return []domain.Command{
			{
				Step: "build",
				Tool: toolEmmake,
				Args: []string{
					"make",
					"CFLAGS=" + joined,
					"CXXFLAGS=" + joined,
					"LDFLAGS=" + joined,
				},
				Dir: cfg.ProjectPath,
			},
		}, nil

	case domain.StrategySingleFile:
		args := make([]string, 0, len(fs)+1)
		args = append(args, strategy.SourceFile)
		args = append(args, fs...)
		return []domain.Command{
			{
				Step: "compile",
				Tool: toolEmcc,
				Args: args,
				Dir:  filepath.Dir(strategy.SourceFile),
			},
		}, nil

	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownProjectType, ""), "strategy", strategy.Kind.String())
	}
}

// collectArtifacts copies expected artifacts the build wrote into dir
// instead of the output directory. Makefiles frequently ignore the LDFLAGS
// -o and emit next to themselves; CMake's link rule appends its own -o
// after LINK_FLAGS, so outputs land in the build tree under the CMakeLists
// target name. byExtension matches those regardless of base name.
func (i *Invoker) collectArtifacts(cfg domain.BuildConfiguration, dir string, byExtension bool) error {
	for _, artifact := range cfg.ExpectedArtifacts() {
		if _, err := os.Stat(artifact); err == nil {
			continue
		}
		local, ok := findArtifact(dir, filepath.Base(artifact), byExtension)
		if !ok {
			continue
		}
		i.logger.Debug(fmt.Sprintf("copying %s to %s", local, artifact))
		if err := copyFile(local, artifact); err != nil {
			return zerr.With(zerr.With(errors.Join(domain.ErrArtifactCopyFailed, err), "source", local), "destination", artifact)
		}
	}
	return nil
}

// findArtifact locates name in dir, optionally falling back to the first
// file sharing its extension.
func findArtifact(dir, name string, byExtension bool) (string, bool) {
	exact := filepath.Join(dir, name)
	if _, err := os.Stat(exact); err == nil {
		return exact, true
	}
	if !byExtension {
		return "", false
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*"+filepath.Ext(name)))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // paths derive from the validated configuration
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

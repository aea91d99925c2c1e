package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectPathEmpty is returned when no project path is configured.
	ErrProjectPathEmpty = zerr.New("project path must not be empty")

	// ErrInvalidBuildMode is returned for build modes other than Debug or Release.
	ErrInvalidBuildMode = zerr.New("invalid build mode, expected 'Debug' or 'Release'")

	// ErrInvalidTargetEnv is returned for target environments other than web, node or wasi.
	ErrInvalidTargetEnv = zerr.New("invalid target environment, expected 'web', 'node' or 'wasi'")

	// ErrOutputNameEmpty is returned when the output base name is empty.
	ErrOutputNameEmpty = zerr.New("output name must not be empty")

	// ErrInvalidPath is returned when the project path does not exist or is
	// neither a directory nor a recognized C++ source file.
	ErrInvalidPath = zerr.New("project path does not exist or is not a buildable path")

	// ErrUnknownProjectType is returned when a project directory contains
	// neither CMakeLists.txt nor Makefile.
	ErrUnknownProjectType = zerr.New("no CMakeLists.txt or Makefile found in project directory")

	// ErrUnsupportedTarget indicates an internal flag template gap. It is a
	// programming error and unreachable for validated configurations.
	ErrUnsupportedTarget = zerr.New("no flag template for target environment")

	// ErrToolNotFound is returned when a toolchain executable is not in PATH.
	ErrToolNotFound = zerr.New("toolchain executable not found in PATH, is the Emscripten SDK activated?")

	// ErrProcessSpawnFailed is returned when a toolchain process cannot be started.
	ErrProcessSpawnFailed = zerr.New("failed to start toolchain process")

	// ErrToolchainFailed is returned when a toolchain step exits non-zero.
	ErrToolchainFailed = zerr.New("toolchain step failed")

	// ErrBuildCancelled is returned when a running toolchain step is terminated
	// because the build context was cancelled.
	ErrBuildCancelled = zerr.New("build cancelled")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrArtifactMissing is returned when an expected artifact is absent after
	// all toolchain steps succeeded.
	ErrArtifactMissing = zerr.New("expected build artifact not found after compilation")

	// ErrArtifactCopyFailed is returned when collecting artifacts into the
	// output directory fails.
	ErrArtifactCopyFailed = zerr.New("failed to copy build artifact")

	// ErrEnvFileNotFound is returned when the configured Emscripten env file is missing.
	ErrEnvFileNotFound = zerr.New("emscripten config file not found")

	// ErrEnvFileParseFailed is returned when the Emscripten env file cannot be parsed.
	ErrEnvFileParseFailed = zerr.New("failed to parse emscripten config file")

	// ErrDefaultsReadFailed is returned when the defaults file cannot be read.
	ErrDefaultsReadFailed = zerr.New("failed to read defaults file")

	// ErrDefaultsParseFailed is returned when the defaults file cannot be parsed.
	ErrDefaultsParseFailed = zerr.New("failed to parse defaults file")

	// ErrRecordReadFailed is returned when the build record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read build record")

	// ErrRecordWriteFailed is returned when the build record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write build record")

	// ErrRecordDecodeFailed is returned when the build record cannot be decoded.
	ErrRecordDecodeFailed = zerr.New("failed to decode build record")

	// ErrWebappWriteFailed is returned when a webapp shell file cannot be written.
	ErrWebappWriteFailed = zerr.New("failed to write webapp file")

	// ErrWatchFailed is returned when the file system watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch project directory")
)

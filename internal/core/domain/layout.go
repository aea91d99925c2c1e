package domain

import (
	"os"
	"path/filepath"
)

// File system permissions used for everything emforge writes.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// recordDirName is the metadata directory kept inside the output directory.
const recordDirName = ".emforge"

// ArtifactJS returns the path of the produced JavaScript loader.
func (c BuildConfiguration) ArtifactJS() string {
	return filepath.Join(c.OutputDir, c.OutputName+".js")
}

// ArtifactWasm returns the path of the produced wasm binary.
func (c BuildConfiguration) ArtifactWasm() string {
	return filepath.Join(c.OutputDir, c.OutputName+".wasm")
}

// PrimaryArtifact is the path handed to the toolchain's -o flag. WASI builds
// emit a standalone .wasm; JS targets emit a .js loader plus a .wasm next to it.
func (c BuildConfiguration) PrimaryArtifact() string {
	if c.Target == TargetWASI {
		return c.ArtifactWasm()
	}
	return c.ArtifactJS()
}

// ExpectedArtifacts lists the files that must exist after a successful build.
func (c BuildConfiguration) ExpectedArtifacts() []string {
	if c.Target == TargetWASI {
		return []string{c.ArtifactWasm()}
	}
	return []string{c.ArtifactJS(), c.ArtifactWasm()}
}

// CMakeBuildDir is the out-of-source CMake build tree, keyed by the
// configuration digest so mode or target switches never share stale caches.
func (c BuildConfiguration) CMakeBuildDir() string {
	return filepath.Join(c.OutputDir, "cmake-build-"+c.Digest())
}

// RecordPath is the location of the persisted build record.
func (c BuildConfiguration) RecordPath() string {
	return RecordPathIn(c.OutputDir)
}

// RecordPathIn locates the build record of an arbitrary output directory.
func RecordPathIn(outputDir string) string {
	return filepath.Join(outputDir, recordDirName, "build.json")
}

// RecordDirIn locates the metadata directory of an output directory.
func RecordDirIn(outputDir string) string {
	return filepath.Join(outputDir, recordDirName)
}

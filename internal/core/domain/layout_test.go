package domain_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/emforge/internal/core/domain"
)

func TestArtifactPaths(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.OutputDir = "/out"
	cfg.OutputName = "app"

	assert.Equal(t, filepath.Join("/out", "app.js"), cfg.ArtifactJS())
	assert.Equal(t, filepath.Join("/out", "app.wasm"), cfg.ArtifactWasm())
}

func TestPrimaryArtifact(t *testing.T) {
	t.Parallel()

	cfg := valid()
	assert.Equal(t, cfg.ArtifactJS(), cfg.PrimaryArtifact())

	cfg.Target = domain.TargetNode
	assert.Equal(t, cfg.ArtifactJS(), cfg.PrimaryArtifact())

	cfg.Target = domain.TargetWASI
	assert.Equal(t, cfg.ArtifactWasm(), cfg.PrimaryArtifact())
}

func TestExpectedArtifacts(t *testing.T) {
	t.Parallel()

	cfg := valid()
	assert.Equal(t, []string{cfg.ArtifactJS(), cfg.ArtifactWasm()}, cfg.ExpectedArtifacts())

	cfg.Target = domain.TargetWASI
	assert.Equal(t, []string{cfg.ArtifactWasm()}, cfg.ExpectedArtifacts())
}

func TestCMakeBuildDir(t *testing.T) {
	t.Parallel()

	cfg := valid()
	dir := cfg.CMakeBuildDir()
	assert.Equal(t, cfg.OutputDir, filepath.Dir(dir))
	assert.True(t, strings.HasPrefix(filepath.Base(dir), "cmake-build-"))
	assert.Contains(t, dir, cfg.Digest())

	// Mode switches never share a build tree.
	other := valid()
	other.Mode = domain.ModeDebug
	assert.NotEqual(t, dir, other.CMakeBuildDir())
}

func TestRecordPath(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.OutputDir = "/out"
	assert.Equal(t, filepath.Join("/out", ".emforge", "build.json"), cfg.RecordPath())
	assert.Equal(t, cfg.RecordPath(), domain.RecordPathIn("/out"))
	assert.Equal(t, filepath.Join("/out", ".emforge"), domain.RecordDirIn("/out"))
}

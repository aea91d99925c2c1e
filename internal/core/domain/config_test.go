package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emforge/internal/core/domain"
)

func valid() domain.BuildConfiguration {
	return domain.BuildConfiguration{
		ProjectPath: "/proj",
		OutputDir:   "dist",
		Mode:        domain.ModeRelease,
		Target:      domain.TargetWeb,
		OutputName:  "output",
	}
}

func TestParseBuildMode(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"debug", "Debug", "DEBUG"} {
		mode, err := domain.ParseBuildMode(s)
		require.NoError(t, err)
		assert.Equal(t, domain.ModeDebug, mode)
	}

	mode, err := domain.ParseBuildMode("release")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeRelease, mode)

	_, err = domain.ParseBuildMode("profiling")
	require.ErrorIs(t, err, domain.ErrInvalidBuildMode)
}

func TestParseTargetEnv(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]domain.TargetEnv{
		"web":  domain.TargetWeb,
		"Node": domain.TargetNode,
		"WASI": domain.TargetWASI,
	} {
		target, err := domain.ParseTargetEnv(s)
		require.NoError(t, err)
		assert.Equal(t, want, target)
	}

	_, err := domain.ParseTargetEnv("browser")
	require.ErrorIs(t, err, domain.ErrInvalidTargetEnv)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.ProjectPath = "  "
	assert.ErrorIs(t, cfg.Validate(), domain.ErrProjectPathEmpty)

	cfg = valid()
	cfg.Mode = "Profiling"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidBuildMode)

	cfg = valid()
	cfg.Target = "browser"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidTargetEnv)

	cfg = valid()
	cfg.OutputName = ""
	assert.ErrorIs(t, cfg.Validate(), domain.ErrOutputNameEmpty)
}

func TestAbsolutize(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.ProjectPath = "proj"
	cfg.OutputDir = "dist"

	abs, err := cfg.Absolutize()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs.ProjectPath))
	assert.True(t, filepath.IsAbs(abs.OutputDir))

	// Idempotent on already absolute paths.
	again, err := abs.Absolutize()
	require.NoError(t, err)
	assert.Equal(t, abs, again)
}

func TestDigest(t *testing.T) {
	t.Parallel()

	cfg := valid()
	assert.Equal(t, cfg.Digest(), cfg.Digest())
	assert.Len(t, cfg.Digest(), 16)

	other := valid()
	other.Mode = domain.ModeDebug
	assert.NotEqual(t, cfg.Digest(), other.Digest())

	other = valid()
	other.Target = domain.TargetNode
	assert.NotEqual(t, cfg.Digest(), other.Digest())
}

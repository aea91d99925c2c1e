package flags_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/emforge/internal/engine/flags"
)

func baseConfig() domain.BuildConfiguration {
	return domain.BuildConfiguration{
		ProjectPath: "/proj",
		OutputDir:   "/out",
		Mode:        domain.ModeRelease,
		Target:      domain.TargetWeb,
		OutputName:  "output",
	}
}

func compose(t *testing.T, cfg domain.BuildConfiguration) domain.FlagSet {
	t.Helper()
	fs, err := flags.Compose(cfg, domain.Strategy{Kind: domain.StrategySingleFile})
	require.NoError(t, err)
	return fs
}

func TestCompose_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.BuildConfiguration)
	}{
		{
			name: "web_debug_imgui",
			mutate: func(cfg *domain.BuildConfiguration) {
				cfg.Mode = domain.ModeDebug
				cfg.OutputName = "app"
				cfg.WithImGui = true
			},
		},
		{
			name:   "node_release",
			mutate: func(cfg *domain.BuildConfiguration) { cfg.Target = domain.TargetNode },
		},
		{
			name:   "wasi_release",
			mutate: func(cfg *domain.BuildConfiguration) { cfg.Target = domain.TargetWASI },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := baseConfig()
			tt.mutate(&cfg)

			fs := compose(t, cfg)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(strings.Join(fs, "\n")+"\n"))
		})
	}
}

func TestCompose_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.WithImGui = true
	cfg.RawFlags = "-pthread -sPTHREAD_POOL_SIZE=4"

	assert.Equal(t, compose(t, cfg), compose(t, cfg))
}

func TestCompose_UserFlagsLastAndVerbatim(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.RawFlags = "  -O1   -O1\t-sASSERTIONS=1 "

	fs := compose(t, cfg)

	// Whitespace-split, order preserved, duplicates kept.
	require.GreaterOrEqual(t, len(fs), 3)
	assert.Equal(t, domain.FlagSet{"-O1", "-O1", "-sASSERTIONS=1"}, fs[len(fs)-3:])
}

func TestCompose_EmptyUserFlags(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	withoutUser := compose(t, cfg)

	cfg.RawFlags = "   \t "
	assert.Equal(t, withoutUser, compose(t, cfg))
}

func TestCompose_ImGuiBundlePrecedesUserFlags(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.WithImGui = true
	cfg.RawFlags = "-sUSE_WEBGL2=0"

	fs := compose(t, cfg)

	bundleAt := indexOf(fs, "-sUSE_WEBGL2=1")
	overrideAt := indexOf(fs, "-sUSE_WEBGL2=0")
	require.NotEqual(t, -1, bundleAt)
	require.NotEqual(t, -1, overrideAt)
	assert.Less(t, bundleAt, overrideAt)
}

func TestCompose_GLAssertionsOnlyInDebug(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.WithImGui = true

	assert.Equal(t, -1, indexOf(compose(t, cfg), "-sGL_ASSERTIONS=1"))

	cfg.Mode = domain.ModeDebug
	assert.NotEqual(t, -1, indexOf(compose(t, cfg), "-sGL_ASSERTIONS=1"))
}

func TestCompose_OutputFlagPerTarget(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	fs := compose(t, cfg)
	require.Equal(t, "-o", fs[0])
	assert.Equal(t, "/out/output.js", fs[1])

	cfg.Target = domain.TargetWASI
	fs = compose(t, cfg)
	require.Equal(t, "-o", fs[0])
	assert.Equal(t, "/out/output.wasm", fs[1])
}

func TestCompose_WASIOmitsModularize(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Target = domain.TargetWASI

	fs := compose(t, cfg)
	assert.Equal(t, -1, indexOf(fs, "-sMODULARIZE=1"))
	assert.Equal(t, -1, indexOf(fs, "-sEXPORT_ES6=1"))
	assert.NotEqual(t, -1, indexOf(fs, "-fwasm-exceptions"))
}

func TestCompose_UnsupportedTarget(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Target = domain.TargetEnv("freestanding")

	_, err := flags.Compose(cfg, domain.Strategy{})
	require.ErrorIs(t, err, domain.ErrUnsupportedTarget)
}

func indexOf(fs domain.FlagSet, flag string) int {
	for i, f := range fs {
		if f == flag {
			return i
		}
	}
	return -1
}

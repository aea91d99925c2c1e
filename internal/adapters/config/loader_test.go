package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emforge/internal/adapters/config"
	"go.trai.ch/emforge/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

func TestLoad_MissingFileYieldsNil(t *testing.T) {
	t.Parallel()

	d, err := config.NewLoader(nopLogger{}).Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestLoad_ParsesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `version: "1"
project: ./src
output: build-out
mode: Debug
target: node
name: demo
imgui: true
emcc_flags: "-pthread"
env_file: .emscripten_env
webapp: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFileName), []byte(content), 0o644))

	d, err := config.NewLoader(nopLogger{}).Load(dir)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "./src", d.ProjectPath)
	assert.Equal(t, "build-out", d.OutputDir)
	assert.Equal(t, "Debug", d.BuildConfig)
	assert.Equal(t, "node", d.TargetEnv)
	assert.Equal(t, "demo", d.OutputName)
	require.NotNil(t, d.WithImGui)
	assert.True(t, *d.WithImGui)
	assert.Equal(t, "-pthread", d.EmccFlags)
	assert.Equal(t, ".emscripten_env", d.EmscriptenConfig)
	require.NotNil(t, d.Webapp)
	assert.False(t, *d.Webapp)
}

func TestLoad_UnsetBoolsStayNil(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFileName), []byte("project: ./src\n"), 0o644))

	d, err := config.NewLoader(nopLogger{}).Load(dir)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Nil(t, d.WithImGui)
	assert.Nil(t, d.Webapp)
}

func TestLoad_EmptyFileYieldsNil(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFileName), nil, 0o644))

	d, err := config.NewLoader(nopLogger{}).Load(dir)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestLoad_CommentsOnlyFileYieldsNil(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "# defaults for emforge\n# project: ./src\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFileName), []byte(content), 0o644))

	d, err := config.NewLoader(nopLogger{}).Load(dir)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFileName), []byte("projct: typo\n"), 0o644))

	_, err := config.NewLoader(nopLogger{}).Load(dir)
	require.ErrorIs(t, err, domain.ErrDefaultsParseFailed)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultsFileName), []byte(":\n\t- bad"), 0o644))

	_, err := config.NewLoader(nopLogger{}).Load(dir)
	require.ErrorIs(t, err, domain.ErrDefaultsParseFailed)
}

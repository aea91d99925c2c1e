//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var emforgeBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "emforge-e2e-*")
	if err != nil {
		panic(err)
	}

	emforgeBinary = filepath.Join(tmpDir, "emforge")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", emforgeBinary, "./cmd/emforge")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build emforge binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// toolStubs stand in for the Emscripten toolchain. emcc mimics the real
// compiler's artifact layout: the -o target plus a .wasm next to .js
// outputs. emmake simply runs the wrapped build tool.
var toolStubs = map[string]string{
	"emcc": `#!/bin/sh
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then out="$a"; fi
  prev="$a"
done
[ -n "$out" ] || exit 1
: > "$out"
case "$out" in
  *.js) : > "${out%.js}.wasm" ;;
esac
`,
	"emcmake": `#!/bin/sh
exit 0
`,
	"emmake": `#!/bin/sh
exec "$@"
`,
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	stubDir := filepath.Join(env.WorkDir, ".toolstubs")
	if err := os.MkdirAll(stubDir, 0o750); err != nil {
		return err
	}
	for name, script := range toolStubs {
		if err := os.WriteFile(filepath.Join(stubDir, name), []byte(script), 0o755); err != nil { //nolint:gosec // test stub must be executable
			return err
		}
	}

	binDir := filepath.Dir(emforgeBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH",
		stubDir+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	return nil
}

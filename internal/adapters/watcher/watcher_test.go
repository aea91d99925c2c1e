package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, root string) <-chan []string {
	t.Helper()

	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	batches, err := w.Start(ctx, root)
	require.NoError(t, err)
	return batches
}

func awaitBatch(t *testing.T, batches <-chan []string) []string {
	t.Helper()
	select {
	case paths := <-batches:
		return paths
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change batch")
		return nil
	}
}

func TestWatcher_ReportsFileChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	batches := startWatcher(t, root)

	src := filepath.Join(root, "main.cpp")
	require.NoError(t, os.WriteFile(src, []byte("int main() {}\n"), 0o644))

	paths := awaitBatch(t, batches)
	assert.Contains(t, paths, src)
}

func TestWatcher_CoalescesBurst(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	batches := startWatcher(t, root)

	for _, name := range []string{"a.cpp", "b.cpp", "c.cpp"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	paths := awaitBatch(t, batches)
	assert.NotEmpty(t, paths)
	// All three writes land inside one debounce window.
	assert.LessOrEqual(t, len(paths), 3)
}

func TestWatcher_IgnoresSkippedDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	buildDir := filepath.Join(root, "cmake-build-0011223344556677")
	require.NoError(t, os.MkdirAll(gitDir, 0o755))
	require.NoError(t, os.MkdirAll(buildDir, 0o755))

	batches := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "out.o"), []byte("obj"), 0o644))

	select {
	case paths := <-batches:
		t.Fatalf("expected no batch for skipped directories, got %v", paths)
	case <-time.After(time.Second):
	}
}

func TestWatcher_ShutdownDuringDebounceWindow(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	batches, err := w.Start(ctx, root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "main.cpp"), []byte("int main() {}\n"), 0o644))

	// Tear down while the debounce window from the write is still armed.
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, w.Stop())

	drainUntilClosed(t, batches)

	// The armed timer fires well after the channel has closed; a late
	// delivery would panic the process.
	time.Sleep(2 * debounceWindow)
}

func drainUntilClosed(t *testing.T, batches <-chan []string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-batches:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("batches channel not closed after shutdown")
		}
	}
}

func TestShouldSkipPath(t *testing.T) {
	t.Parallel()

	assert.True(t, shouldSkipPath("/proj/.git/HEAD"))
	assert.True(t, shouldSkipPath("/out/cmake-build-abc/CMakeCache.txt"))
	assert.True(t, shouldSkipPath("/proj/node_modules/x/y.js"))
	assert.False(t, shouldSkipPath("/proj/src/main.cpp"))
}

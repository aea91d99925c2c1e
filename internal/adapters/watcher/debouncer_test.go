package watcher

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesRapidAdds(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var batches [][]string
	d := NewDebouncer(30*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, paths)
	})

	d.Add("a.cpp")
	d.Add("b.cpp")
	d.Add("a.cpp")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	got := batches[0]
	sort.Strings(got)
	assert.Equal(t, []string{"a.cpp", "b.cpp"}, got)
}

func TestDebouncer_SeparateWindowsSeparateBatches(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var batches [][]string
	d := NewDebouncer(20*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, paths)
	})

	d.Add("first.cpp")
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) == 1
	}, time.Second, 5*time.Millisecond)

	d.Add("second.cpp")
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first.cpp"}, batches[0])
	assert.Equal(t, []string{"second.cpp"}, batches[1])
}

func TestDebouncer_FlushDeliversPending(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var batches [][]string
	d := NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, paths)
	})

	d.Add("pending.cpp")
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"pending.cpp"}, batches[0])
}

func TestDebouncer_FlushWithoutPendingIsNoop(t *testing.T) {
	t.Parallel()

	called := false
	d := NewDebouncer(time.Hour, func([]string) { called = true })
	d.Flush()
	assert.False(t, called)
}

func TestDebouncer_StopCancelsArmedWindow(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var batches [][]string
	d := NewDebouncer(30*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, paths)
	})

	d.Add("a.cpp")
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, batches)
}

func TestDebouncer_AddAfterStopIsIgnored(t *testing.T) {
	t.Parallel()

	called := false
	d := NewDebouncer(10*time.Millisecond, func([]string) { called = true })

	d.Stop()
	d.Add("late.cpp")
	d.Flush()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, called)
}

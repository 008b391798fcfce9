package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/strata.hcl")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 1)
		assert.Equal(t, "/project/strata.hcl", receivedPaths[0])
	})
}

func TestDebouncer_CoalescesPaths(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		// Several changes within one window fire a single callback.
		d.Add("/project/strata.hcl")
		d.Add("/project/registry/packages/go.yaml")
		d.Add("/project/registry/platforms.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 3)
		assert.Contains(t, receivedPaths, "/project/strata.hcl")
		assert.Contains(t, receivedPaths, "/project/registry/packages/go.yaml")
		assert.Contains(t, receivedPaths, "/project/registry/platforms.yaml")
	})
}

func TestDebouncer_DeduplicatesPaths(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			receivedPaths = paths
		})

		// Editors writing in bursts produce the same path repeatedly.
		d.Add("/project/strata.hcl")
		d.Add("/project/strata.hcl")
		d.Add("/project/strata.hcl")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, receivedPaths, 1)
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("/project/strata.hcl")
		time.Sleep(50 * time.Millisecond)

		// A second add within the window restarts it.
		d.Add("/project/registry/platforms.yaml")
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/strata.hcl")
		d.Flush()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 1)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
		callCount++
	})

	d.Flush()
	assert.Equal(t, 0, callCount)
}

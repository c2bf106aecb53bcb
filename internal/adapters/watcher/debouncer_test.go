package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ngpack/internal/adapters/watcher"
)

func isReady(d *watcher.Debouncer) bool {
	select {
	case <-d.Ready():
		return true
	default:
		return false
	}
}

func TestDebouncer_SettlesAfterWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(100 * time.Millisecond)

		d.Add("/bin/core.d.ts")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.False(t, isReady(d))

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.True(t, isReady(d))
		assert.Equal(t, []string{"/bin/core.d.ts"}, d.Take())
	})
}

func TestDebouncer_BurstCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(100 * time.Millisecond)

		d.Add("/src/b.ts")
		time.Sleep(80 * time.Millisecond)
		d.Add("/src/a.ts")
		time.Sleep(80 * time.Millisecond)
		d.Add("/src/b.ts")
		synctest.Wait()
		assert.False(t, isReady(d))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.True(t, isReady(d))
		assert.Equal(t, []string{"/src/a.ts", "/src/b.ts"}, d.Take())
		assert.False(t, isReady(d))
	})
}

func TestDebouncer_BatchesMergeUntilTaken(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10 * time.Millisecond)

		d.Add("/src/a.ts")
		time.Sleep(20 * time.Millisecond)
		d.Add("/src/c.ts")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		assert.True(t, isReady(d))
		assert.False(t, isReady(d))
		assert.Equal(t, []string{"/src/a.ts", "/src/c.ts"}, d.Take())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	d := watcher.NewDebouncer(time.Hour)

	d.Flush()
	assert.False(t, isReady(d))

	d.Add("/src/a.ts")
	d.Flush()
	assert.True(t, isReady(d))
	assert.Equal(t, []string{"/src/a.ts"}, d.Take())
	assert.Empty(t, d.Take())
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10 * time.Millisecond)

		d.Add("/src/a.ts")
		d.Stop()
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		assert.False(t, isReady(d))
	})
}

package klog

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urban233/kern-comm-lib/check"
	"github.com/urban233/kern-comm-lib/internal/fatal"
)

// Verifies the full fatal path: once Init has run, a failed check emits its
// record through the default logger's handlers before terminating.
func TestInit_RoutesFatalChecksThroughLogger(t *testing.T) {
	dir := t.TempDir()
	require.True(t, Init("kern-it", dir).Ok())

	h := &memoryHandler{}
	require.True(t, Default().AddHandler(h).Ok())
	prevExit := fatal.SetExit(func(int) {})
	t.Cleanup(func() { fatal.SetExit(prevExit) })

	check.Check(false, "integration invariant")

	var found bool
	for _, r := range h.all() {
		if r.message == "integration invariant" {
			found = true
			require.Equal(t, SeverityFatal, r.sev)
			require.False(t, r.loc.IsZero())
		}
	}
	require.True(t, found)

	data, err := os.ReadFile(filepath.Join(dir, "kern-it.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "integration invariant")
}

func TestInit_ConcurrentFirstUse(t *testing.T) {
	before := len(Default().handlers)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.True(t, Init("kern-it-concurrent", "").Ok())
		}()
	}
	wg.Wait()

	// At most one call wins the setup; the rest return without registering
	// another console handler.
	require.LessOrEqual(t, len(Default().handlers), before+1)
}

func TestInit_Idempotent(t *testing.T) {
	require.True(t, Init("kern-it", "").Ok())

	before := len(Default().handlers)
	require.True(t, Init("kern-it-again", "").Ok())

	require.Equal(t, before, len(Default().handlers))
}

package skills

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherResyncsOnNewSkill(t *testing.T) {
	manager, officialRoot, customRoot := newTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := manager.Initialize(ctx)
	require.NoError(t, err)
	require.Empty(t, manager.GetAllSkills())

	watcher, err := NewWatcher(manager, officialRoot, customRoot)
	require.NoError(t, err)
	defer watcher.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = watcher.Run(ctx)
	}()

	writeSkill(t, customRoot, "fresh", "---\nname: fresh\n---\nBody\n")

	assert.Eventually(t, func() bool {
		return len(manager.GetAllSkills()) == 1
	}, 10*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

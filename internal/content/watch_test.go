package content

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	require.NoError(t, Write(dir, Default()))
	s, err := NewStore(dir, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, 20*time.Millisecond) }()

	// give the watcher a moment to register before writing
	time.Sleep(50 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "projects.json"), `{"projects":[{"id":1,"title":"Only"}]}`)

	require.Eventually(t, func() bool {
		return len(s.Current().Projects) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

package regions

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlTemplate), 0o644))

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Template, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(tpl *Template, err error) {
			if err == nil {
				reloaded <- tpl
			}
		})
	}()

	updated := yamlTemplate + "  - editable: false\n    content: \"# end\"\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	// A truncating write may be observed before the new content lands.
	timeout := time.After(5 * time.Second)
	for got := 0; got != 3; {
		select {
		case tpl := <-reloaded:
			got = len(tpl.Sections)
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlTemplate), 0o644))

	w, err := NewWatcher(path, WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	calls := 0
	go func() {
		_ = os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0o644)
	}()

	require.NoError(t, w.Run(ctx, func(*Template, error) { calls++ }))
	assert.Zero(t, calls)
}

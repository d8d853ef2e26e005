package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/lagoon/internal/adapters/fs"
	"github.com/bft-labs/lagoon/pkg/lagoon"
)

type outcome struct {
	res lagoon.Result
	err error
}

func waitFor(t *testing.T, ch <-chan outcome, match func(outcome) bool) outcome {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case o := <-ch:
			if match(o) {
				return o
			}
		case <-deadline:
			t.Fatal("timed out waiting for watcher result")
			return outcome{}
		}
	}
}

func TestWatcher_ResolvesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("R 1 (#000010)\nD 1 (#000011)\nL 1 (#000012)\nU 1 (#000013)\n"), 0o644))

	results := make(chan outcome, 16)
	w := NewWatcher(NewRunner(fs.NewInputFile(path), nil), 20*time.Millisecond, func(res lagoon.Result, err error) {
		results <- outcome{res: res, err: err}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	first := waitFor(t, results, func(outcome) bool { return true })
	require.NoError(t, first.err)
	assert.Equal(t, int64(4), first.res.Total)

	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))
	waitFor(t, results, func(o outcome) bool { return o.err == nil && o.res.Total == 9 })

	// A broken edit is reported but the watcher keeps going.
	require.NoError(t, os.WriteFile(path, []byte("R 2\n"), 0o644))
	bad := waitFor(t, results, func(o outcome) bool { return errors.Is(o.err, lagoon.ErrMalformedLine) })
	assert.Zero(t, bad.res.Total)

	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))
	waitFor(t, results, func(o outcome) bool { return o.err == nil && o.res.Total == 9 })

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o644))

	results := make(chan outcome, 16)
	w := NewWatcher(NewRunner(fs.NewInputFile(path), nil), 20*time.Millisecond, func(res lagoon.Result, err error) {
		results <- outcome{res: res, err: err}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	waitFor(t, results, func(outcome) bool { return true })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	select {
	case o := <-results:
		t.Fatalf("unexpected re-solve: %+v", o)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "input.txt")
	w := NewWatcher(NewRunner(fs.NewInputFile(path), nil), 0, nil)

	err := w.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, DefaultDebounce, w.delay)
}

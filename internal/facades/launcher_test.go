package facades

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX utilities")
	}
}

func TestPlatformOpener(t *testing.T) {
	assert.Equal(t, []string{"open"}, platformOpener("darwin"))
	assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler"}, platformOpener("windows"))
	assert.Equal(t, []string{"xdg-open"}, platformOpener("linux"))
	assert.Equal(t, []string{"xdg-open"}, platformOpener("freebsd"))
}

func TestNewCommandLauncher(t *testing.T) {
	l := NewCommandLauncher("  mpv --no-video  ")
	assert.Equal(t, "mpv", l.name)
	assert.Equal(t, []string{"--no-video"}, l.args)

	def := NewCommandLauncher("")
	assert.Equal(t, platformOpener(runtime.GOOS)[0], def.name)
}

func TestCommandLauncher_Launch(t *testing.T) {
	skipOnWindows(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		err := NewCommandLauncher("true").Launch(ctx, "spotify:track:abc123")
		assert.NoError(t, err)
	})

	t.Run("command fails", func(t *testing.T) {
		err := NewCommandLauncher("false").Launch(ctx, "spotify:track:abc123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spotify:track:abc123")
	})

	t.Run("command missing", func(t *testing.T) {
		err := NewCommandLauncher("definitely-not-an-opener-binary").Launch(ctx, "spotify:track:abc123")
		assert.Error(t, err)
	})

	t.Run("empty uri", func(t *testing.T) {
		err := NewCommandLauncher("true").Launch(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyURI)
	})

	t.Run("bounded by context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		// sleep receives the uri as its duration argument.
		err := NewCommandLauncher("sleep").Launch(ctx, "5")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 4*time.Second)
	})

	t.Run("opener leaving a long-lived child returns promptly", func(t *testing.T) {
		opener := filepath.Join(t.TempDir(), "opener.sh")
		require.NoError(t, os.WriteFile(opener, []byte("#!/bin/sh\nsleep 5 &\nexit 0\n"), 0o644))

		ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := NewCommandLauncher("sh "+opener).Launch(ctx, "spotify:track:abc123")
		assert.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("opener hanging with a child is cut at the deadline", func(t *testing.T) {
		opener := filepath.Join(t.TempDir(), "opener.sh")
		require.NoError(t, os.WriteFile(opener, []byte("#!/bin/sh\nsleep 5 &\nsleep 5\n"), 0o644))

		ctx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := NewCommandLauncher("sh "+opener).Launch(ctx, "spotify:track:abc123")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

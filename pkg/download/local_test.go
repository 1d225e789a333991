package download_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/odash/pkg/download"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestLocalSink(t *testing.T) {
	t.Parallel()

	t.Run("creates directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "out")
		sink, err := download.NewLocalSink(dir)
		require.NoError(t, err)
		assert.DirExists(t, sink.Dir())
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		_, err := download.NewLocalSink("")
		assert.ErrorIs(t, err, download.ErrInvalidConfig)
	})

	t.Run("writes file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sink, err := download.NewLocalSink(dir)
		require.NoError(t, err)

		loc, err := sink.Put(context.Background(), download.Object{
			Name: "report.pdf",
			Size: -1,
			Body: strings.NewReader("%PDF-1.7"),
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(sink.Dir(), "report.pdf"), loc)

		data, err := os.ReadFile(loc)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()
		sink, err := download.NewLocalSink(t.TempDir())
		require.NoError(t, err)

		_, err = sink.Put(context.Background(), download.Object{Name: "a.pdf", Body: strings.NewReader("old")})
		require.NoError(t, err)
		loc, err := sink.Put(context.Background(), download.Object{Name: "a.pdf", Body: strings.NewReader("new")})
		require.NoError(t, err)

		data, err := os.ReadFile(loc)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("path traversal stays inside directory", func(t *testing.T) {
		t.Parallel()
		sink, err := download.NewLocalSink(t.TempDir())
		require.NoError(t, err)

		loc, err := sink.Put(context.Background(), download.Object{Name: "../../evil.pdf", Body: strings.NewReader("x")})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(sink.Dir(), "evil.pdf"), loc)
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		sink, err := download.NewLocalSink(t.TempDir())
		require.NoError(t, err)

		_, err = sink.Put(context.Background(), download.Object{Name: "..", Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, download.ErrInvalidFilename)
	})

	t.Run("read failure leaves no files", func(t *testing.T) {
		t.Parallel()
		sink, err := download.NewLocalSink(t.TempDir())
		require.NoError(t, err)

		boom := errors.New("boom")
		_, err = sink.Put(context.Background(), download.Object{Name: "a.pdf", Body: failingReader{err: boom}})
		assert.ErrorIs(t, err, download.ErrWriteFailed)
		assert.ErrorIs(t, err, boom)

		entries, err := os.ReadDir(sink.Dir())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		sink, err := download.NewLocalSink(t.TempDir())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = sink.Put(ctx, download.Object{Name: "a.pdf", Body: strings.NewReader("x")})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

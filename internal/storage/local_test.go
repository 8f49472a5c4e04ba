package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()

	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalSaveGetDelete(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	err := s.Save(ctx, "events/abc/photo.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "events/abc/photo.png")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := s.GetSize(ctx, "events/abc/photo.png")
	require.NoError(t, err)
	assert.Equal(t, int64(len("png-bytes")), size)

	reader, err := s.Get(ctx, "events/abc/photo.png")
	require.NoError(t, err)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, "png-bytes", string(content))

	require.NoError(t, s.Delete(ctx, "events/abc/photo.png"))

	exists, err = s.Exists(ctx, "events/abc/photo.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalDeleteIsIdempotent(t *testing.T) {
	s := newLocal(t)

	assert.NoError(t, s.Delete(context.Background(), "never/existed.png"))
}

func TestLocalDeleteDirIfEmpty(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "events/abc/photo.png", strings.NewReader("x"), "image/png"))
	require.NoError(t, s.Save(ctx, "events/abc/other.png", strings.NewReader("y"), "image/png"))

	// still holds a file, must stay
	require.NoError(t, s.Delete(ctx, "events/abc/photo.png"))
	require.NoError(t, s.DeleteDirIfEmpty(ctx, "events/abc"))

	exists, err := s.Exists(ctx, "events/abc/other.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "events/abc/other.png"))
	require.NoError(t, s.DeleteDirIfEmpty(ctx, "events/abc"))

	exists, err = s.Exists(ctx, filepath.Join("events", "abc"))
	require.NoError(t, err)
	assert.False(t, exists)

	// missing dir is fine
	assert.NoError(t, s.DeleteDirIfEmpty(ctx, "events/never-existed"))
}

func TestLocalGetURL(t *testing.T) {
	ctx := context.Background()

	s := newLocal(t)
	url, err := s.GetURL(ctx, "events/abc/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "/files/events/abc/photo.png", url)

	withBase, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com"})
	require.NoError(t, err)
	url, err = withBase.GetURL(ctx, "events/abc/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/events/abc/photo.png", url)
}

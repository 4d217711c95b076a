package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) core.Session {
	return core.Session{
		ID:          id,
		LiveViewURL: "https://live.example.com/" + id + "?X-Amz-Signature=abc",
	}
}

func TestReadFileNotExist(t *testing.T) {
	r, err := ReadFile(filepath.Join(t.TempDir(), "sessions.json"))
	require.NoError(t, err)
	assert.Empty(t, r.Sessions)
}

func TestReadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := ReadFile(path)
	assert.ErrorContains(t, err, "parse")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sessions.json")

	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	rec := record("abc")
	rec.UpdatedAt = &now

	r := &Registry{Sessions: []core.Session{rec}}
	require.NoError(t, r.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, "abc", got.Sessions[0].ID)
	assert.Equal(t, rec.LiveViewURL, got.Sessions[0].LiveViewURL)
	assert.True(t, now.Equal(*got.Sessions[0].UpdatedAt))
}

func TestUpsert(t *testing.T) {
	r := &Registry{}
	r.Upsert(record("b"))
	r.Upsert(record("a"))

	require.Len(t, r.Sessions, 2)
	assert.Equal(t, "a", r.Sessions[0].ID, "sorted by id")

	updated := record("b")
	updated.LiveViewURL = "https://live.example.com/new"
	r.Upsert(updated)

	require.Len(t, r.Sessions, 2)
	got, ok := r.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "https://live.example.com/new", got.LiveViewURL)
}

func TestWriteFileNoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.json")

	r := &Registry{Sessions: []core.Session{record("a")}}
	require.NoError(t, r.WriteFile(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sessions.json", entries[0].Name())
}

func TestStore(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "sessions.json")}
	ctx := context.Background()

	_, err := s.LiveViewURL(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, s.Put(record("sess-1")))
	require.NoError(t, s.Put(core.Session{ID: "no-url"}))

	url, err := s.LiveViewURL(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, record("sess-1").LiveViewURL, url)

	_, err = s.LiveViewURL(ctx, "no-url")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

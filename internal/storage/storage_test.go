package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/config"
	"github.com/justestif/go-life-cheatkey/internal/habit"
)

var (
	_ habit.Store = (*Memory)(nil)
	_ habit.Store = (*File)(nil)
	_ habit.Store = (*Redis)(nil)
	_ habit.Store = (*Postgres)(nil)
)

func testStore(t *testing.T, s habit.Store) {
	t.Helper()
	ctx := context.Background()

	data, err := s.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.Save(ctx, "visitor:habits", []byte(`[1]`)))
	require.NoError(t, s.Save(ctx, "visitor:habits", []byte(`[1,2]`)))
	require.NoError(t, s.Save(ctx, "other:habits", []byte(`[]`)))

	data, err = s.Load(ctx, "visitor:habits")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data))

	data, err = s.Load(ctx, "other:habits")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestMemoryCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	in := []byte("abc")
	require.NoError(t, m.Save(ctx, "k", in))
	in[0] = 'x'

	out, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	fs, err := NewFile(dir)
	require.NoError(t, err)
	testStore(t, fs)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files should be cleaned up")
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "a/b:c", []byte(`{"ok":true}`)))

	second, err := NewFile(dir)
	require.NoError(t, err)
	data, err := second.Load(ctx, "a/b:c")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	b, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, b.Store)
	assert.Nil(t, b.DB)
	assert.NoError(t, b.Close())

	b, err = Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: config.BackendFile, Dir: t.TempDir()}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &File{}, b.Store)

	_, err = Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: "tape"}}, logger)
	assert.Error(t, err)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKV_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	_, ok, err := s.Get(ctx, "pawlog_user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "pawlog_user", `{"id":"u1"}`))
	require.NoError(t, s.Set(ctx, "pawlog_user", `{"id":"u2"}`))

	v, ok, err := s.Get(ctx, "pawlog_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"u2"}`, v)
}

func TestKV_DeleteMissingKeyIsNoop(t *testing.T) {
	s := newTestKV(t)
	assert.NoError(t, s.Delete(context.Background(), "nope"))
}

func TestKV_SetManyWritesAll(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	require.NoError(t, s.SetMany(ctx, map[string]string{
		"pawlog_dogs":      "[]",
		"pawlog_reminders": "[]",
	}))
	for _, k := range []string{"pawlog_dogs", "pawlog_reminders"} {
		v, ok, err := s.Get(ctx, k)
		require.NoError(t, err)
		assert.True(t, ok, k)
		assert.Equal(t, "[]", v)
	}
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pawlog.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "pawlog_settings", `{"theme":"dark"}`))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "pawlog_settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"theme":"dark"}`, v)
}

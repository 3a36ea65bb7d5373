package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere PAWLOG_TEST_DSN apuntando a una base descartable.
func newTestKV(t *testing.T) *KV {
	t.Helper()
	dsn := os.Getenv("PAWLOG_TEST_DSN")
	if dsn == "" {
		t.Skip("PAWLOG_TEST_DSN not set")
	}
	ctx := context.Background()
	s, err := OpenKV(ctx, dsn)
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, `DELETE FROM pawlog_kv`)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	require.NoError(t, s.Set(ctx, "pawlog_dogs", "[]"))
	require.NoError(t, s.Set(ctx, "pawlog_dogs", `[{"id":"d1"}]`))

	v, ok, err := s.Get(ctx, "pawlog_dogs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"d1"}]`, v)

	require.NoError(t, s.Delete(ctx, "pawlog_dogs"))
	_, ok, err = s.Get(ctx, "pawlog_dogs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_SetMany(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))
	v, ok, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	val, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))
	require.NoError(t, c.Delete(ctx, "a", "b", "never-existed"))

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestJSONHelpers_RoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, SetJSON(ctx, c, "p", payload{Name: "ada", Score: 92}, time.Minute))

	var got payload
	assert.True(t, GetJSON(ctx, c, "p", &got))
	assert.Equal(t, payload{Name: "ada", Score: 92}, got)
}

func TestGetJSON_MissAndCorruptPayload(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var dest map[string]string
	assert.False(t, GetJSON(ctx, c, "missing", &dest))

	require.NoError(t, c.Set(ctx, "bad", "{not json", 0))
	assert.False(t, GetJSON(ctx, c, "bad", &dest))
}

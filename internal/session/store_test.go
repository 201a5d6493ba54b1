package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements cmdable over a plain map.
type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	n := int64(0)
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	n := int64(0)
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func testStore(rdb cmdable) *Store {
	s := newStore(rdb, time.Hour)
	s.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	store := testStore(newFakeRedis())
	ctx := context.Background()

	sess := &Session{
		SubscriberURL: "https://bpp.example.com",
		NPType:        "BPP",
		Env:           "staging",
		Difficulty:    &Difficulty{UseGateway: true, TotalDifficulty: 50},
	}
	require.NoError(t, store.Set(ctx, sess))
	assert.Equal(t, "2025-06-01T12:00:00Z", sess.CreatedAt)
	assert.Equal(t, "2025-06-01T12:00:00Z", sess.UpdatedAt)

	got, err := store.Get(ctx, "https://bpp.example.com")
	require.NoError(t, err)
	assert.Equal(t, "BPP", got.NPType)
	assert.Equal(t, "staging", got.Env)
	require.NotNil(t, got.Difficulty)
	assert.True(t, got.Difficulty.UseGateway)
	assert.Equal(t, 50, got.Difficulty.TotalDifficulty)
}

func TestStoreSetPreservesCreatedAt(t *testing.T) {
	store := testStore(newFakeRedis())
	ctx := context.Background()

	sess := &Session{SubscriberURL: "https://bpp.example.com", CreatedAt: "2025-01-01T00:00:00Z"}
	require.NoError(t, store.Set(ctx, sess))
	assert.Equal(t, "2025-01-01T00:00:00Z", sess.CreatedAt)
	assert.Equal(t, "2025-06-01T12:00:00Z", sess.UpdatedAt)
}

func TestStoreGetMissing(t *testing.T) {
	store := testStore(newFakeRedis())
	_, err := store.Get(context.Background(), "https://nobody.example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSetRequiresSubscriberURL(t *testing.T) {
	store := testStore(newFakeRedis())
	assert.Error(t, store.Set(context.Background(), &Session{}))
	assert.Error(t, store.Set(context.Background(), nil))
}

func TestStoreExistsAndDelete(t *testing.T) {
	store := testStore(newFakeRedis())
	ctx := context.Background()

	ok, err := store.Exists(ctx, "https://bpp.example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, &Session{SubscriberURL: "https://bpp.example.com"}))

	ok, err = store.Exists(ctx, "https://bpp.example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "https://bpp.example.com"))
	ok, err = store.Exists(ctx, "https://bpp.example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing session is a no-op.
	assert.NoError(t, store.Delete(ctx, "https://bpp.example.com"))
}

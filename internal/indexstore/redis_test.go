package indexstore

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngramcorrector/internal/corrector"
)

// newTestRedis connects to REDIS_ADDR and skips the test when it is unset.
func newTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	prefix := "ngramtest:" + t.Name()
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return NewRedisStore(client, prefix)
}

func TestRedisRoundTrip(t *testing.T) {
	store := newTestRedis(t)
	bigrams, trigrams := testIndices(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, bigrams, trigrams))
	gotBigrams, gotTrigrams, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, bigrams.Map(), gotBigrams.Map())
	assert.Equal(t, trigrams.Map(), gotTrigrams.Map())
}

func TestRedisSaveReplacesPreviousIndex(t *testing.T) {
	store := newTestRedis(t)
	bigrams, trigrams := testIndices(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, bigrams, trigrams))

	small := corrector.NewBigramIndex(map[string][]string{"ca": {"cat"}})
	require.NoError(t, store.SaveBigramIndex(ctx, small))
	got, err := store.LoadBigramIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, small.Map(), got.Map())
}

func TestRedisEmptyAndMissing(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	_, _, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoIndex)

	require.NoError(t, store.Save(ctx, corrector.NewBigramIndex(nil), corrector.NewTrigramTable(nil)))
	bigrams, trigrams, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, bigrams.Len())
	assert.Equal(t, 0, trigrams.Len())
}

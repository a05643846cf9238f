package indexstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"ngramcorrector/internal/corrector"
)

// RedisStore keeps indices in Redis: every bigram is a set of words, the list
// of bigrams is itself a set, and trigram counts live in one hash.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a store whose keys all start with prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ngram"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) bigramsKey() string         { return s.prefix + ":bigrams" }
func (s *RedisStore) bigramKey(bg string) string { return s.prefix + ":bigram:" + bg }
func (s *RedisStore) trigramsKey() string        { return s.prefix + ":trigrams" }
func (s *RedisStore) savedKey() string           { return s.prefix + ":saved" }

// markSaved records that field was written, so an empty index can be told
// apart from a missing one.
func (s *RedisStore) markSaved(ctx context.Context, field string) error {
	return s.client.HSet(ctx, s.savedKey(), field, 1).Err()
}

func (s *RedisStore) wasSaved(ctx context.Context, field string) (bool, error) {
	return s.client.HExists(ctx, s.savedKey(), field).Result()
}

const pipelineBatch = 1000

// SaveBigramIndex replaces the stored bigram index with idx.
func (s *RedisStore) SaveBigramIndex(ctx context.Context, idx *corrector.BigramIndex) error {
	if err := s.deleteBigrams(ctx); err != nil {
		return err
	}
	pipe := s.client.Pipeline()
	n := 0
	for bg, words := range idx.Map() {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, s.bigramKey(bg), members...)
		pipe.SAdd(ctx, s.bigramsKey(), bg)
		n++
		if n%pipelineBatch == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return fmt.Errorf("indexstore: save bigrams: %w", err)
			}
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("indexstore: save bigrams: %w", err)
	}
	return s.markSaved(ctx, "bigrams")
}

func (s *RedisStore) deleteBigrams(ctx context.Context) error {
	bigrams, err := s.client.SMembers(ctx, s.bigramsKey()).Result()
	if err != nil {
		return fmt.Errorf("indexstore: list bigrams: %w", err)
	}
	keys := make([]string, 0, len(bigrams)+1)
	for _, bg := range bigrams {
		keys = append(keys, s.bigramKey(bg))
	}
	keys = append(keys, s.bigramsKey())
	for start := 0; start < len(keys); start += pipelineBatch {
		end := min(start+pipelineBatch, len(keys))
		if err := s.client.Del(ctx, keys[start:end]...).Err(); err != nil {
			return fmt.Errorf("indexstore: delete bigrams: %w", err)
		}
	}
	return nil
}

// LoadBigramIndex reads the stored bigram index. An absent index yields ErrNoIndex.
func (s *RedisStore) LoadBigramIndex(ctx context.Context) (*corrector.BigramIndex, error) {
	bigrams, err := s.client.SMembers(ctx, s.bigramsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("indexstore: list bigrams: %w", err)
	}
	if len(bigrams) == 0 {
		saved, err := s.wasSaved(ctx, "bigrams")
		if err != nil {
			return nil, fmt.Errorf("indexstore: check bigrams: %w", err)
		}
		if !saved {
			return nil, fmt.Errorf("%w: %s", ErrNoIndex, s.bigramsKey())
		}
	}

	m := make(map[string][]string, len(bigrams))
	for start := 0; start < len(bigrams); start += pipelineBatch {
		batch := bigrams[start:min(start+pipelineBatch, len(bigrams))]
		pipe := s.client.Pipeline()
		cmds := make([]*redis.StringSliceCmd, len(batch))
		for i, bg := range batch {
			cmds[i] = pipe.SMembers(ctx, s.bigramKey(bg))
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("indexstore: load bigrams: %w", err)
		}
		for i, bg := range batch {
			m[bg] = cmds[i].Val()
		}
	}
	return corrector.NewBigramIndex(m), nil
}

// SaveTrigramTable replaces the stored trigram table with t.
func (s *RedisStore) SaveTrigramTable(ctx context.Context, t *corrector.TrigramTable) error {
	if err := s.client.Del(ctx, s.trigramsKey()).Err(); err != nil {
		return fmt.Errorf("indexstore: delete trigrams: %w", err)
	}
	values := make([]any, 0, pipelineBatch*2)
	flush := func() error {
		if len(values) == 0 {
			return nil
		}
		if err := s.client.HSet(ctx, s.trigramsKey(), values...).Err(); err != nil {
			return fmt.Errorf("indexstore: save trigrams: %w", err)
		}
		values = values[:0]
		return nil
	}
	for k, v := range t.Map() {
		values = append(values, k, v)
		if len(values) >= pipelineBatch*2 {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	return s.markSaved(ctx, "trigrams")
}

// LoadTrigramTable reads the stored trigram table. An absent table yields ErrNoIndex.
func (s *RedisStore) LoadTrigramTable(ctx context.Context) (*corrector.TrigramTable, error) {
	raw, err := s.client.HGetAll(ctx, s.trigramsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("indexstore: load trigrams: %w", err)
	}
	if len(raw) == 0 {
		saved, err := s.wasSaved(ctx, "trigrams")
		if err != nil {
			return nil, fmt.Errorf("indexstore: check trigrams: %w", err)
		}
		if !saved {
			return nil, fmt.Errorf("%w: %s", ErrNoIndex, s.trigramsKey())
		}
	}
	m := make(map[string]int, len(raw))
	for k, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("indexstore: trigram %q has count %q: %w", k, v, err)
		}
		m[k] = n
	}
	return corrector.NewTrigramTable(m), nil
}

// Save writes both indices.
func (s *RedisStore) Save(ctx context.Context, idx *corrector.BigramIndex, t *corrector.TrigramTable) error {
	if err := s.SaveBigramIndex(ctx, idx); err != nil {
		return err
	}
	return s.SaveTrigramTable(ctx, t)
}

// Load reads both indices.
func (s *RedisStore) Load(ctx context.Context) (*corrector.BigramIndex, *corrector.TrigramTable, error) {
	idx, err := s.LoadBigramIndex(ctx)
	if err != nil {
		return nil, nil, err
	}
	t, err := s.LoadTrigramTable(ctx)
	if err != nil {
		return nil, nil, err
	}
	return idx, t, nil
}

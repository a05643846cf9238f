package indexstore

import (
	"context"

	"github.com/redis/go-redis/v9"

	"ngramcorrector/internal/config"
	"ngramcorrector/internal/corrector"
)

// Store persists a pair of indices.
type Store interface {
	Save(ctx context.Context, idx *corrector.BigramIndex, t *corrector.TrigramTable) error
	Load(ctx context.Context) (*corrector.BigramIndex, *corrector.TrigramTable, error)
}

// DirStore keeps both indices as files in one directory.
type DirStore struct {
	Dir string
}

func (d DirStore) Save(ctx context.Context, idx *corrector.BigramIndex, t *corrector.TrigramTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return SaveDir(d.Dir, idx, t)
}

func (d DirStore) Load(ctx context.Context) (*corrector.BigramIndex, *corrector.TrigramTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return LoadDir(d.Dir)
}

// FromConfig opens the store selected by cfg. The returned close function
// releases any connection it holds.
func FromConfig(cfg config.Config) (Store, func() error) {
	if cfg.Index.Backend == config.BackendRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisStore(client, cfg.Redis.Prefix), client.Close
	}
	return DirStore{Dir: cfg.Index.Dir}, func() error { return nil }
}

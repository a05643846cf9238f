package corrector

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"ngramcorrector/internal/corpus"
)

// BuildStats describes one index build. Documents == 0 means the indices are
// empty and no correction will ever change a word.
type BuildStats struct {
	Documents int `json:"documents"`
	Skipped   int `json:"skipped"`
}

func (s BuildStats) add(o BuildStats) BuildStats {
	return BuildStats{Documents: s.Documents + o.Documents, Skipped: s.Skipped + o.Skipped}
}

func documentWords(d corpus.Document, stats *BuildStats) ([]string, bool) {
	text, err := d.Text()
	if err != nil {
		stats.Skipped++
		skippedDocuments.Inc()
		slog.Debug("skipping document", slog.String("id", d.ID), slog.Any("error", err))
		return nil, false
	}
	stats.Documents++
	return Tokenize(text), true
}

// BuildIndexes builds both indices in one pass, sharding docs over workers
// goroutines. The result does not depend on the number of workers.
func BuildIndexes(ctx context.Context, docs []corpus.Document, workers int) (*BigramIndex, *TrigramTable, BuildStats, error) {
	if workers < 1 {
		workers = 1
	}
	if len(docs) > 0 && workers > len(docs) {
		workers = len(docs)
	}

	type shard struct {
		bigrams  *bigramBuilder
		trigrams *trigramBuilder
		stats    BuildStats
	}
	shards := make([]shard, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			s := shard{bigrams: newBigramBuilder(), trigrams: newTrigramBuilder()}
			for i := w; i < len(docs); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				words, ok := documentWords(docs[i], &s.stats)
				if !ok {
					continue
				}
				s.bigrams.addWords(words)
				s.trigrams.addWords(words)
			}
			shards[w] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, BuildStats{}, err
	}

	bigrams, trigrams := newBigramBuilder(), newTrigramBuilder()
	var stats BuildStats
	for _, s := range shards {
		bigrams.merge(s.bigrams)
		trigrams.merge(s.trigrams)
		stats = stats.add(s.stats)
	}
	indexedDocuments.Add(float64(stats.Documents))
	return bigrams.freeze(), trigrams.freeze(), stats, nil
}

// BuildFromProvider loads the corpus from p and builds both indices.
func BuildFromProvider(ctx context.Context, p corpus.Provider, workers int) (*BigramIndex, *TrigramTable, BuildStats, error) {
	docs, err := p.Documents(ctx)
	if err != nil {
		return nil, nil, BuildStats{}, fmt.Errorf("load corpus: %w", err)
	}
	return BuildIndexes(ctx, docs, workers)
}

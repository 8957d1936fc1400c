package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"carepal-be/internal/pkg/logger"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/embedding"
)

// corpusCacheTTL keeps computed utterance embeddings around across restarts;
// the utterances change rarely, the vectors never do for a given model.
const corpusCacheTTL = 7 * 24 * time.Hour

// CorpusLoader builds the in-memory reference corpus at boot. Rows seeded
// without a vector are embedded on the spot, with a redis read-through cache
// in front of the embedding provider, and the vector is written back so the
// next boot skips the call.
type CorpusLoader struct {
	uowFactory unitofwork.RepositoryFactory
	embedder   embedding.Provider // nil when no embedding backend is configured
	cache      *redis.Client      // nil when redis is not configured
	logger     logger.ILogger
}

func NewCorpusLoader(uowFactory unitofwork.RepositoryFactory, embedder embedding.Provider, cache *redis.Client, log logger.ILogger) *CorpusLoader {
	return &CorpusLoader{
		uowFactory: uowFactory,
		embedder:   embedder,
		cache:      cache,
		logger:     log,
	}
}

func (l *CorpusLoader) Load(ctx context.Context) (*classify.Corpus, error) {
	rows, err := l.uowFactory.IntentExampleRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load intent examples: %w", err)
	}

	examples := make([]classify.Example, 0, len(rows))
	var embeddedNow int
	for i := range rows {
		row := &rows[i]
		if !row.Embedded || len(row.Embedding) == 0 {
			if l.embedder == nil {
				continue // gate will run degraded until a backend is configured
			}
			vec, err := l.embedUtterance(ctx, row.Utterance)
			if err != nil {
				l.logger.Warn("corpus", "Failed to embed corpus utterance", map[string]interface{}{
					"utterance": row.Utterance,
					"error":     err.Error(),
				})
				continue
			}
			row.Embedding = vec
			row.Embedded = true
			embeddedNow++
			if err := l.uowFactory.IntentExampleRepository().UpdateEmbedding(ctx, row); err != nil {
				l.logger.Warn("corpus", "Failed to persist corpus embedding", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
		examples = append(examples, classify.Example{
			Utterance: row.Utterance,
			Intent:    classify.Intent(row.Intent),
			Vector:    row.Embedding,
		})
	}

	l.logger.Info("corpus", "Reference corpus loaded", map[string]interface{}{
		"examples":     len(examples),
		"embedded_now": embeddedNow,
	})
	return classify.NewCorpus(examples), nil
}

func (l *CorpusLoader) embedUtterance(ctx context.Context, utterance string) ([]float32, error) {
	key := corpusCacheKey(utterance)

	if l.cache != nil {
		if raw, err := l.cache.Get(ctx, key).Bytes(); err == nil {
			var vec []float32
			if err := json.Unmarshal(raw, &vec); err == nil && len(vec) > 0 {
				return vec, nil
			}
		}
	}

	vec, err := l.embedder.Embed(ctx, utterance)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if raw, err := json.Marshal(vec); err == nil {
			if err := l.cache.Set(ctx, key, raw, corpusCacheTTL).Err(); err != nil {
				l.logger.Warn("corpus", "Failed to cache embedding", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return vec, nil
}

func corpusCacheKey(utterance string) string {
	sum := sha256.Sum256([]byte(utterance))
	return "corpus:embedding:" + hex.EncodeToString(sum[:])
}

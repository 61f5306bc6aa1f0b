// Package article implements article business logic: CRUD, the random
// trending pick, and the cache-aside read path for single articles.
package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ech0p1ng/articles-rest/internal/cache"
	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/observability/metrics"
	"github.com/ech0p1ng/articles-rest/internal/repository"
	"github.com/ech0p1ng/articles-rest/internal/usecase/crud"
)

// DefaultCacheTTL bounds how stale a cached article read may be.
const DefaultCacheTTL = 30 * time.Second

// Service provides article operations. Cache and Logger are optional; with a
// nil Cache, GetCached degrades to a plain storage read.
type Service struct {
	crud.Service[*entity.Article]

	Cache  cache.Store
	TTL    time.Duration
	Logger *slog.Logger
}

// NewService wires an article service over the given repository and cache.
func NewService(repo repository.EntityRepository[*entity.Article], store cache.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Service: crud.Service[*entity.Article]{Repo: repo, Label: "article"},
		Cache:   store,
		TTL:     DefaultCacheTTL,
		Logger:  logger,
	}
}

// Create stores a new article. A caller-supplied id that already exists is
// rejected up front with AlreadyExistsError; the storage unique constraint
// backstops the race between the check and the insert.
func (s *Service) Create(ctx context.Context, a *entity.Article) (*entity.Article, error) {
	if a.ID != 0 {
		exists, err := s.Exists(ctx, repository.Filter{"id": a.ID})
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &entity.AlreadyExistsError{
				Entity: "article",
				Filter: repository.Filter{"id": a.ID}.String(),
			}
		}
	}

	created, err := s.Service.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	metrics.RecordArticleCreated()
	return created, nil
}

// Trending returns a uniformly random article with its comments loaded.
// An empty collection yields NotFoundError.
func (s *Service) Trending(ctx context.Context) (*entity.Article, error) {
	articles, err := s.GetAll(ctx, repository.WithRelations("comments"))
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, &entity.NotFoundError{Entity: "article"}
	}
	return articles[rand.IntN(len(articles))], nil
}

// GetCached returns the article with the given id, serving from cache when a
// fresh entry exists and falling back to storage otherwise. Storage reads
// refresh the cache with s.TTL. Cache failures on either side never fail the
// read; they are logged and counted, and the request proceeds against storage.
func (s *Service) GetCached(ctx context.Context, id int64) (*entity.Article, error) {
	key := cacheKey(id)

	if s.Cache != nil {
		payload, err := s.Cache.Get(ctx, key)
		switch {
		case err == nil:
			var a entity.Article
			if uerr := json.Unmarshal([]byte(payload), &a); uerr == nil {
				metrics.RecordCacheLookup(metrics.CacheHit)
				return &a, nil
			}
			// A corrupt entry reads as an error, not a hit.
			metrics.RecordCacheLookup(metrics.CacheError)
			s.Logger.WarnContext(ctx, "cache entry undecodable, rereading from storage",
				slog.String("key", key))
		case errors.Is(err, cache.ErrCacheMiss):
			metrics.RecordCacheLookup(metrics.CacheMiss)
		default:
			metrics.RecordCacheLookup(metrics.CacheError)
			s.Logger.WarnContext(ctx, "cache read failed, degrading to storage",
				slog.String("key", key), slog.Any("error", err))
		}
	}

	a, err := s.Get(ctx, repository.Filter{"id": id}, repository.WithRelations("comments"))
	if err != nil {
		return nil, err
	}

	s.fill(ctx, key, a)
	return a, nil
}

// fill writes the article into the cache with the service TTL. Failures are
// logged and counted only; the caller already holds a valid result.
func (s *Service) fill(ctx context.Context, key string, a *entity.Article) {
	if s.Cache == nil {
		return
	}

	payload, err := json.Marshal(a)
	if err != nil {
		metrics.RecordCacheFill(false)
		s.Logger.WarnContext(ctx, "cache fill encode failed",
			slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := s.Cache.Set(ctx, key, string(payload), s.TTL); err != nil {
		metrics.RecordCacheFill(false)
		s.Logger.WarnContext(ctx, "cache fill failed",
			slog.String("key", key), slog.Any("error", err))
		return
	}
	metrics.RecordCacheFill(true)
}

func cacheKey(id int64) string {
	return fmt.Sprintf("article:%d", id)
}

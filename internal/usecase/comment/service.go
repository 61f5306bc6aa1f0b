// Package comment implements comment business logic on top of the generic
// CRUD service, adding the referential check against articles.
package comment

import (
	"context"
	"math/rand/v2"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/observability/metrics"
	"github.com/ech0p1ng/articles-rest/internal/repository"
	"github.com/ech0p1ng/articles-rest/internal/usecase/crud"
)

// ArticleChecker is the slice of the article service a comment create needs:
// verifying that the target article exists.
type ArticleChecker interface {
	Exists(ctx context.Context, filter repository.Filter) (bool, error)
}

// Service provides comment operations.
type Service struct {
	crud.Service[*entity.Comment]

	Articles ArticleChecker
}

// NewService wires a comment service over the given repository. The article
// checker guards creates against dangling article references.
func NewService(repo repository.EntityRepository[*entity.Comment], articles ArticleChecker) *Service {
	return &Service{
		Service:  crud.Service[*entity.Comment]{Repo: repo, Label: "comment"},
		Articles: articles,
	}
}

// Create stores a new comment after verifying its target article exists. The
// missing-article case surfaces as a NotFoundError naming the article, so the
// caller sees which reference was dangling. A caller-supplied id that is
// already taken is rejected with AlreadyExistsError.
func (s *Service) Create(ctx context.Context, c *entity.Comment) (*entity.Comment, error) {
	articleFilter := repository.Filter{"id": c.ArticleID}
	exists, err := s.Articles.Exists(ctx, articleFilter)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &entity.NotFoundError{Entity: "article", Filter: articleFilter.String()}
	}

	if c.ID != 0 {
		taken, err := s.Exists(ctx, repository.Filter{"id": c.ID})
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &entity.AlreadyExistsError{
				Entity: "comment",
				Filter: repository.Filter{"id": c.ID}.String(),
			}
		}
	}

	created, err := s.Service.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	metrics.RecordCommentCreated()
	return created, nil
}

// Trending returns a uniformly random comment. An empty collection yields
// NotFoundError.
func (s *Service) Trending(ctx context.Context) (*entity.Comment, error) {
	comments, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, &entity.NotFoundError{Entity: "comment"}
	}
	return comments[rand.IntN(len(comments))], nil
}

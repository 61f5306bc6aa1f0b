package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/repository"
)

// RelationComments is the relation name for an article's owned comments.
const RelationComments = "comments"

// NewArticleRepo returns the persistence gateway for articles. The "comments"
// relation loads each article's comments in one extra round trip.
func NewArticleRepo(db *sql.DB) repository.EntityRepository[*entity.Article] {
	return NewEntityRepo(db, ModelHandlers[*entity.Article]{
		Table:         "article",
		Columns:       []string{"id", "title", "text"},
		InsertColumns: []string{"title", "text"},
		NewRecord:     func() *entity.Article { return &entity.Article{Comments: []*entity.Comment{}} },
		ScanDest: func(a *entity.Article) []any {
			return []any{&a.ID, &a.Title, &a.Text}
		},
		InsertValues: func(a *entity.Article) []any {
			return []any{a.Title, a.Text}
		},
		ID: func(a *entity.Article) int64 { return a.ID },
		Relations: map[string]RelationLoader[*entity.Article]{
			RelationComments: loadArticleComments,
		},
	})
}

// loadArticleComments fetches the comments for every article in records with a
// single query and distributes them onto their owners.
func loadArticleComments(ctx context.Context, db *sql.DB, records []*entity.Article) error {
	byID := make(map[int64]*entity.Article, len(records))
	args := make([]any, 0, len(records))
	for _, a := range records {
		byID[a.ID] = a
		a.Comments = []*entity.Comment{}
		args = append(args, a.ID)
	}

	query := fmt.Sprintf(
		"SELECT id, text, score, article_id FROM comment WHERE article_id IN (%s) ORDER BY id",
		inPlaceholders(1, len(args)))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loadArticleComments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.Score, &c.ArticleID); err != nil {
			return fmt.Errorf("loadArticleComments: Scan: %w", err)
		}
		if owner, ok := byID[c.ArticleID]; ok {
			owner.Comments = append(owner.Comments, &c)
		}
	}
	return rows.Err()
}

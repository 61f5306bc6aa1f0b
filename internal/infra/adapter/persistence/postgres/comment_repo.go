package postgres

import (
	"database/sql"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/repository"
)

// NewCommentRepo returns the persistence gateway for comments.
func NewCommentRepo(db *sql.DB) repository.EntityRepository[*entity.Comment] {
	return NewEntityRepo(db, ModelHandlers[*entity.Comment]{
		Table:         "comment",
		Columns:       []string{"id", "text", "score", "article_id"},
		InsertColumns: []string{"text", "score", "article_id"},
		NewRecord:     func() *entity.Comment { return &entity.Comment{} },
		ScanDest: func(c *entity.Comment) []any {
			return []any{&c.ID, &c.Text, &c.Score, &c.ArticleID}
		},
		InsertValues: func(c *entity.Comment) []any {
			return []any{c.Text, c.Score, c.ArticleID}
		},
		ID: func(c *entity.Comment) int64 { return c.ID },
	})
}

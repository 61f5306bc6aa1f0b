// Package comment provides HTTP handlers for comment endpoints.
package comment

import (
	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
)

// DTO is the JSON shape of a comment on the wire.
type DTO struct {
	ID        int64  `json:"id" example:"1"`
	Text      string `json:"text" example:"Great read"`
	Score     int    `json:"score" example:"5"`
	ArticleID int64  `json:"article_id" example:"1"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		Text:      c.Text,
		Score:     c.Score,
		ArticleID: c.ArticleID,
	}
}

// Package article provides HTTP handlers for article endpoints: create, list,
// single and cached reads, and the random trending pick.
package article

import (
	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
)

// DTO is the JSON shape of an article on the wire.
type DTO struct {
	ID       int64        `json:"id" example:"1"`
	Title    string       `json:"title" example:"Generics in practice"`
	Text     string       `json:"text" example:"Type parameters landed in Go 1.18..."`
	Comments []CommentDTO `json:"comments"`
}

// CommentDTO is the JSON shape of a comment nested under an article.
type CommentDTO struct {
	ID        int64  `json:"id" example:"1"`
	Text      string `json:"text" example:"Great read"`
	Score     int    `json:"score" example:"5"`
	ArticleID int64  `json:"article_id" example:"1"`
}

// toDTO converts an entity to its wire shape. Comments always serialize as an
// array, never null.
func toDTO(a *entity.Article) DTO {
	comments := make([]CommentDTO, 0, len(a.Comments))
	for _, c := range a.Comments {
		comments = append(comments, CommentDTO{
			ID:        c.ID,
			Text:      c.Text,
			Score:     c.Score,
			ArticleID: c.ArticleID,
		})
	}
	return DTO{
		ID:       a.ID,
		Title:    a.Title,
		Text:     a.Text,
		Comments: comments,
	}
}

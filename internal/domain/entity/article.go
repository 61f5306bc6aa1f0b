// Package entity defines the core domain entities and domain-specific errors
// for the application. Entities carry an immutable database-assigned identity;
// equality between two entities of the same type is defined solely by id.
package entity

// Article represents an article with its owned comments.
// Comments are a composition: they are loaded and cached alongside the article.
type Article struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Text     string     `json:"text"`
	Comments []*Comment `json:"comments"`
}

// NewArticle builds a draft article without an id. The id is assigned by
// storage on insert.
func NewArticle(title, text string) *Article {
	return &Article{Title: title, Text: text, Comments: []*Comment{}}
}

// NewArticleWithID builds a full article with a known id, comments included.
// Used when reconstructing an article from a cached payload.
func NewArticleWithID(id int64, title, text string, comments []*Comment) *Article {
	if comments == nil {
		comments = []*Comment{}
	}
	return &Article{ID: id, Title: title, Text: text, Comments: comments}
}

// Equal reports whether both articles refer to the same persisted entity.
func (a *Article) Equal(other *Article) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.ID == other.ID
}

package entity

// Score bounds for comment ratings, inclusive. Enforced at the input boundary;
// services trust values that reach them.
const (
	ScoreMin = 0
	ScoreMax = 5
)

// Comment represents a reader comment attached to an article.
type Comment struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Score     int    `json:"score"`
	ArticleID int64  `json:"article_id"`
}

// NewComment builds a draft comment without an id.
func NewComment(text string, score int, articleID int64) *Comment {
	return &Comment{Text: text, Score: score, ArticleID: articleID}
}

// NewCommentWithID builds a full comment with a known id.
func NewCommentWithID(id int64, text string, score int, articleID int64) *Comment {
	return &Comment{ID: id, Text: text, Score: score, ArticleID: articleID}
}

// Equal reports whether both comments refer to the same persisted entity.
func (c *Comment) Equal(other *Comment) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID
}

// ValidScore reports whether score is within the accepted range.
func ValidScore(score int) bool {
	return score >= ScoreMin && score <= ScoreMax
}

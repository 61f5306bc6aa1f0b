package comment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	comUC "github.com/ech0p1ng/articles-rest/internal/usecase/comment"
)

type CreateHandler struct{ Svc *comUC.Service }

// ServeHTTP creates a comment on an existing article.
// @Summary      Create comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        comment body object true "Comment fields"
// @Success      200 {object} DTO "Created comment"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      403 {string} string "Forbidden - id already taken"
// @Failure      404 {string} string "Not found - article does not exist"
// @Router       /comments/add [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        int64  `json:"id"`
		Text      string `json:"text"`
		Score     int    `json:"score"`
		ArticleID int64  `json:"article_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("text is required"))
		return
	}
	if !entity.ValidScore(req.Score) {
		respond.SafeError(w, http.StatusBadRequest,
			fmt.Errorf("score must be between %d and %d", entity.ScoreMin, entity.ScoreMax))
		return
	}
	if req.ArticleID <= 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("article_id must be positive"))
		return
	}
	if req.ID < 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("id must be positive"))
		return
	}

	c := entity.NewComment(req.Text, req.Score, req.ArticleID)
	c.ID = req.ID

	created, err := h.Svc.Create(r.Context(), c)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(created))
}

package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article.
// @Summary      Create article
// @Description  Stores a new article and returns it with its assigned id
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body object true "Article fields"
// @Success      200 {object} DTO "Created article"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      403 {string} string "Forbidden - id already taken"
// @Router       /articles/ [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" || req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("title, text are required"))
		return
	}
	if req.ID < 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("id must be positive"))
		return
	}

	a := entity.NewArticle(req.Title, req.Text)
	a.ID = req.ID

	created, err := h.Svc.Create(r.Context(), a)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(created))
}

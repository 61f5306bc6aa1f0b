package article

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/pathutil"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	"github.com/ech0p1ng/articles-rest/internal/repository"
	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article by id, comments included.
// @Summary      Get article
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Article with comments"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.Get(r.Context(), repository.Filter{"id": id},
		repository.WithRelations("comments"))
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(a))
}

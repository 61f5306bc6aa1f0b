package comment

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/pathutil"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	"github.com/ech0p1ng/articles-rest/internal/repository"
	comUC "github.com/ech0p1ng/articles-rest/internal/usecase/comment"
)

type GetHandler struct{ Svc *comUC.Service }

// ServeHTTP returns one comment by id.
// @Summary      Get comment
// @Tags         comments
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200 {object} DTO "Comment"
// @Failure      400 {string} string "Bad request - invalid comment ID"
// @Failure      404 {string} string "Not found"
// @Router       /comments/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/comments/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Get(r.Context(), repository.Filter{"id": id})
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}

package article

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/pathutil"
	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
)

type CachedHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article by id through the cache-aside read path.
// @Summary      Get article (cached)
// @Description  Serves from cache when fresh, falls back to storage on a miss
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Article with comments"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      404 {string} string "Not found"
// @Router       /articles/cached/{id} [get]
func (h CachedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/cached/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.GetCached(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(a))
}

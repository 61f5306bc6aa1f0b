package article

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
)

type TrendingHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a random article.
// @Summary      Trending article
// @Description  Picks one article uniformly at random
// @Tags         articles
// @Produce      json
// @Success      200 {object} DTO "Random article with comments"
// @Failure      404 {string} string "Not found - no articles exist"
// @Router       /articles/trending [get]
func (h TrendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, err := h.Svc.Trending(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(a))
}

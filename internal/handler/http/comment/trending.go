package comment

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	comUC "github.com/ech0p1ng/articles-rest/internal/usecase/comment"
)

type TrendingHandler struct{ Svc *comUC.Service }

// ServeHTTP returns a random comment.
// @Summary      Trending comment
// @Description  Picks one comment uniformly at random
// @Tags         comments
// @Produce      json
// @Success      200 {object} DTO "Random comment"
// @Failure      404 {string} string "Not found - no comments exist"
// @Router       /comments/tranding [get]
func (h TrendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.Trending(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(c))
}

package article

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	"github.com/ech0p1ng/articles-rest/internal/repository"
	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP returns every article, comments included.
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Success      200 {array} DTO "All articles"
// @Failure      500 {string} string "Server error"
// @Router       /articles/ [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.GetAll(r.Context(), repository.WithRelations("comments"))
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

package comment

import (
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/handler/http/respond"
	comUC "github.com/ech0p1ng/articles-rest/internal/usecase/comment"
)

type ListHandler struct{ Svc *comUC.Service }

// ServeHTTP returns every comment.
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Success      200 {array} DTO "All comments"
// @Failure      500 {string} string "Server error"
// @Router       /comments/ [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Svc.GetAll(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]DTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

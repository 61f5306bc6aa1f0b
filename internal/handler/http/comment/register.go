package comment

import (
	"net/http"

	comUC "github.com/ech0p1ng/articles-rest/internal/usecase/comment"
)

// Register mounts the comment routes on mux. The trending route keeps its
// misspelled path; shipped clients depend on it.
func Register(mux *http.ServeMux, svc *comUC.Service) {
	mux.Handle("POST /comments/add", CreateHandler{svc})
	mux.Handle("GET /comments/{$}", ListHandler{svc})
	mux.Handle("GET /comments/tranding", TrendingHandler{svc})
	mux.Handle("GET /comments/", GetHandler{svc})
}

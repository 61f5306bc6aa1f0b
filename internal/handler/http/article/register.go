package article

import (
	"net/http"

	artUC "github.com/ech0p1ng/articles-rest/internal/usecase/article"
)

// Register mounts the article routes on mux. Literal segments (trending,
// cached/) win over the id subtree, so registration order does not matter.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("POST /articles/{$}", CreateHandler{svc})
	mux.Handle("GET /articles/{$}", ListHandler{svc})
	mux.Handle("GET /articles/trending", TrendingHandler{svc})
	mux.Handle("GET /articles/cached/", CachedHandler{svc})
	mux.Handle("GET /articles/", GetHandler{svc})
}

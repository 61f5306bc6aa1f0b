// Package requestid assigns each HTTP request a unique id so log lines from
// one request can be correlated.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is unexported so other packages cannot collide with our key.
type contextKey string

const (
	// Key is the context key under which the request id is stored.
	Key contextKey = "request_id"
	// Header is the HTTP header carrying the request id.
	Header = "X-Request-ID"
)

// FromContext returns the request id stored in ctx, or "" if none.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(Key).(string); ok {
		return id
	}
	return ""
}

// NewContext returns ctx with the request id attached.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, Key, id)
}

// Middleware propagates an incoming X-Request-ID or generates a UUID v4 when
// the header is absent. The id is echoed on the response and stored in the
// request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
	})
}

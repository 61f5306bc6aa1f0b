package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first. Pre-compiled at
// init so normalization stays cheap on the request path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/cached/\d+$`), template: "/articles/cached/:id"},
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
	{pattern: regexp.MustCompile(`^/comments/\d+$`), template: "/comments/:id"},
}

// NormalizePath collapses id-bearing paths to templates so metric labels stay
// bounded: /articles/123 becomes /articles/:id. Static paths pass through
// unchanged, as do unknown paths (they are served as 404 and stay rare).
// Query strings and trailing slashes on non-root paths are stripped first.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}

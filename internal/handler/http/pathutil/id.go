// Package pathutil provides helpers for working with URL paths: extracting
// numeric ids and normalizing dynamic paths for low-cardinality metric labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID parses an integer ID from a URL path after removing prefix.
// IDs must be positive; anything else fails with ErrInvalidID.
//
//	id, err := ExtractID("/articles/123", "/articles/")
//	// 123, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

package urlpath

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Join builds an absolute path from segments, escaping each one.
// Empty segments are rejected so a missing id never collapses a path
// like /api/products/{id} into /api/products.
func Join(segments ...string) (string, error) {
	if len(segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s == "" {
			return "", errors.New("empty path segment")
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}

	return b.String(), nil
}

// ID formats a resource id as a path segment.
func ID(id int) string {
	return strconv.Itoa(id)
}

package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"metals-tracker/internal/domain"
)

// Pagination defaults for the raw-data endpoint.
const (
	defaultLimit  = 100
	defaultOffset = 0
)

// cycleNamePattern restricts cycle identifiers to the dataset's naming
// scheme before they reach any query.
var cycleNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

func metalParam(r *http.Request) (domain.Metal, error) {
	raw := chi.URLParam(r, "metal")
	m, ok := domain.ParseMetal(raw)
	if !ok {
		return "", fmt.Errorf("unknown metal %q, expected gold or silver", raw)
	}
	return m, nil
}

func cycleParam(r *http.Request) (string, error) {
	cycle := chi.URLParam(r, "cycle")
	if !cycleNamePattern.MatchString(cycle) {
		return "", fmt.Errorf("malformed cycle name %q", cycle)
	}
	return cycle, nil
}

// paginationParams parses limit/offset. Absent values default to
// 100/0; anything that is not a non-negative integer is rejected
// rather than coerced.
func paginationParams(r *http.Request) (limit, offset int, err error) {
	limit, offset = defaultLimit, defaultOffset
	q := r.URL.Query()

	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("limit must be a non-negative integer, got %q", s)
		}
		limit = v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer, got %q", s)
		}
		offset = v
	}
	return limit, offset, nil
}

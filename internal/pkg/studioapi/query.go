package studioapi

import (
	"net/http"
	"net/url"
	"strconv"
)

const maxLimit = 100

// QueryFromRequest reads page, limit and the named filters from an inbound request.
func QueryFromRequest(r *http.Request, filters ...string) ListQuery {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit > maxLimit {
		limit = maxLimit
	}

	params := url.Values{}
	for _, f := range filters {
		if v := q.Get(f); v != "" {
			params.Set(f, v)
		}
	}

	return ListQuery{Page: page, Limit: limit, Params: params}
}

package api

import (
	"net/url"
	"strconv"
)

// ListQuery is the shared page/limit/search parameter set every list
// endpoint accepts.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

func (q ListQuery) Values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Package pagination slices ordered collections into numbered pages with navigation links.
package pagination

import (
	"net/url"
	"strconv"
)

// Query parameter names.
const (
	PageParam  = "page"
	LimitParam = "limit"
)

// Defaults used when no configuration is supplied.
const (
	DefaultPageSize    = 9
	DefaultMaxPageSize = 100
)

// Request is a validated page request.
type Request struct {
	Page  int      // 1-based page number
	Limit int      // page size
	URL   *url.URL // request URL links are derived from
}

// NewRequest parses the raw page and limit query values. Missing, non-numeric or
// non-positive values fall back to page 1 and defaultSize; limits above maxSize are clamped.
func NewRequest(rawPage, rawLimit string, defaultSize, maxSize int, requestURL *url.URL) Request {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	limit := parsePositive(rawLimit, defaultSize)
	if limit > maxSize {
		limit = maxSize
	}

	return Request{
		Page:  parsePositive(rawPage, 1),
		Limit: limit,
		URL:   requestURL,
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

// Offset returns the number of items preceding the page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Page is one page of results.
type Page[T any] struct {
	Results  []T     `json:"results"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Count    int64   `json:"count"`
}

// NewPage wraps the items of one page. total is the size of the whole collection.
func NewPage[T any](items []T, total int64, req Request) *Page[T] {
	if items == nil {
		items = []T{}
	}

	page := &Page[T]{
		Results: items,
		Count:   total,
	}

	if int64(req.Page)*int64(req.Limit) < total {
		page.Next = req.link(req.Page + 1)
	}
	if req.Page > 1 {
		page.Previous = req.link(req.Page - 1)
	}

	return page
}

// Slice pages an in-memory collection that is already ordered.
func Slice[T any](all []T, req Request) *Page[T] {
	total := len(all)
	start := min(req.Offset(), total)
	end := min(start+req.Limit, total)

	return NewPage(all[start:end], int64(total), req)
}

func (r Request) link(page int) *string {
	if r.URL == nil {
		return nil
	}

	u := *r.URL
	query := u.Query()
	query.Set(PageParam, strconv.Itoa(page))
	query.Set(LimitParam, strconv.Itoa(r.Limit))
	u.RawQuery = query.Encode()

	link := u.String()

	return &link
}

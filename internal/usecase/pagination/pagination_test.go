package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)

	return u
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", wantPage: 1, wantLimit: 9},
		{name: "explicit values", page: "3", limit: "20", wantPage: 3, wantLimit: 20},
		{name: "non numeric", page: "abc", limit: "x", wantPage: 1, wantLimit: 9},
		{name: "zero and negative", page: "0", limit: "-5", wantPage: 1, wantLimit: 9},
		{name: "limit clamped", page: "2", limit: "1000", wantPage: 2, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := NewRequest(tt.page, tt.limit, 9, 100, nil)
			assert.Equal(t, tt.wantPage, req.Page)
			assert.Equal(t, tt.wantLimit, req.Limit)
		})
	}
}

func TestNewRequest_ZeroConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	req := NewRequest("", "500", 0, 0, nil)
	assert.Equal(t, DefaultMaxPageSize, req.Limit)

	req = NewRequest("", "", 0, 0, nil)
	assert.Equal(t, DefaultPageSize, req.Limit)
}

func TestSlice_SizeAndLinks(t *testing.T) {
	t.Parallel()

	all := make([]int, 25)
	for i := range all {
		all[i] = i + 1
	}

	tests := []struct {
		name         string
		page         int
		limit        int
		wantResults  []int
		wantNext     bool
		wantPrevious bool
	}{
		{name: "first page", page: 1, limit: 10, wantResults: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantNext: true},
		{name: "middle page", page: 2, limit: 10, wantResults: []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, wantNext: true, wantPrevious: true},
		{name: "last partial page", page: 3, limit: 10, wantResults: []int{21, 22, 23, 24, 25}, wantPrevious: true},
		{name: "exact fit", page: 5, limit: 5, wantResults: []int{21, 22, 23, 24, 25}, wantPrevious: true},
		{name: "beyond the end", page: 9, limit: 10, wantResults: []int{}, wantPrevious: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := Request{Page: tt.page, Limit: tt.limit, URL: mustParse(t, "http://localhost/api/v1/products")}
			page := Slice(all, req)

			assert.Equal(t, tt.wantResults, page.Results)
			assert.Equal(t, int64(25), page.Count)
			assert.Equal(t, tt.wantNext, page.Next != nil)
			assert.Equal(t, tt.wantPrevious, page.Previous != nil)
		})
	}
}

func TestNewPage_LinksKeepPathAndQuery(t *testing.T) {
	t.Parallel()

	req := Request{Page: 2, Limit: 9, URL: mustParse(t, "http://localhost/api/v1/products/trending?s=latest&page=2")}
	page := NewPage([]string{"a"}, 30, req)

	require.NotNil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://localhost/api/v1/products/trending?limit=9&page=3&s=latest", *page.Next)
	assert.Equal(t, "http://localhost/api/v1/products/trending?limit=9&page=1&s=latest", *page.Previous)
}

func TestNewPage_EmptyCollection(t *testing.T) {
	t.Parallel()

	page := NewPage[int](nil, 0, Request{Page: 1, Limit: 9})

	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
	assert.Nil(t, page.Next)
	assert.Nil(t, page.Previous)
	assert.Zero(t, page.Count)
}

func TestRequest_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Request{Page: 1, Limit: 9}.Offset())
	assert.Equal(t, 18, Request{Page: 3, Limit: 9}.Offset())
}

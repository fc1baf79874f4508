package usecase

import "io"

// UploadInput is a file received from a multipart form.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// SearchInput holds case-insensitive substring filters. Empty fields match everything.
type SearchInput struct {
	Name     string `query:"name"`
	Category string `query:"category"`
}

package domain

import "context"

// MediaStore uploads a file to the external media service and returns its
// public URL.
type MediaStore interface {
	UploadImage(ctx context.Context, folder, publicID string, content []byte) (string, error)
	UploadDocument(ctx context.Context, folder, publicID string, content []byte) (string, error)
}

// FileUpload is a file received on a multipart form.
type FileUpload struct {
	Name    string
	Content []byte
}

// MediaCache caches uploaded image URL lists per venue.
type MediaCache interface {
	Post(ctx context.Context, venueID string, urls []string) error
	Get(ctx context.Context, venueID string) ([]string, error)
}

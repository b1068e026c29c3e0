package storage

import "context"

// StorageService stores uploaded media and serves back permanent URLs.
type StorageService interface {
	// UploadImage uploads a local image file into the given folder and
	// returns its public URL and identifier.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error)
	// DeleteImage removes a previously uploaded image by its identifier.
	DeleteImage(ctx context.Context, publicID string) error
	// ImageURL resolves the public URL for a stored image.
	ImageURL(publicID string) (string, error)
}

// UploadResult identifies a stored image.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"edubright-backend/internal/shared/utils"
)

// Upload limits
const MaxUploadBytes = 5 << 20 // 5 MiB

var (
	ErrUnsupportedType = errors.New("only jpeg, png, gif and webp images are accepted")
	ErrTooLarge        = errors.New("image exceeds the 5 MB upload limit")
)

// extensions keyed by accepted content type
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedType), errors.Is(err, ErrTooLarge):
		return 400
	default:
		return 500
	}
}

// Storage is the slice of the object store the media service needs.
// Satisfied by infrastructure/storage.MinIOStorage.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// UploadResult - response body of the upload endpoint
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Service stores admin-uploaded images and hands back public URLs.
type Service interface {
	// Upload validates content type and size, then stores the image under
	// a fresh key in the given folder (e.g. "team", "blog"). The original
	// filename is slugified into the key so objects stay recognizable in
	// the bucket browser.
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error)

	// Delete removes a previously uploaded object
	Delete(ctx context.Context, key string) error
}

type mediaService struct {
	storage Storage
}

func NewMediaService(storage Storage) Service {
	return &mediaService{storage: storage}
}

func (s *mediaService) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error) {
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	name := uuid.New().String() + ext
	if slug := utils.GenerateSlug(strings.TrimSuffix(filename, path.Ext(filename))); slug != "" {
		name = slug + "-" + name
	}
	key := path.Join(folder, name)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	return &UploadResult{Key: key, URL: url}, nil
}

func (s *mediaService) Delete(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	uploadFunc func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	deleteFunc func(ctx context.Context, key string) error
	uploads    []string
}

func (m *mockStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.uploads = append(m.uploads, key)
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, key, data, contentType)
	}
	return "http://cdn.local/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

func TestUpload_AcceptsImageTypes(t *testing.T) {
	storage := &mockStorage{}
	svc := NewMediaService(storage)

	for _, ct := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		result, err := svc.Upload(context.Background(), "team", "headshot.bin", ct, []byte("img"))
		require.NoError(t, err, ct)
		assert.True(t, strings.HasPrefix(result.Key, "team/"))
		assert.Contains(t, result.URL, result.Key)
	}
}

func TestUpload_KeyCarriesSlugifiedFilename(t *testing.T) {
	storage := &mockStorage{}
	svc := NewMediaService(storage)

	result, err := svc.Upload(context.Background(), "blog", "Our NEW Campus!.png", "image/png", []byte("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "blog/our-new-campus-"))

	// No filename still yields a usable key
	result, err = svc.Upload(context.Background(), "blog", "", "image/png", []byte("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "blog/"))
	assert.NotContains(t, result.Key, "blog/-")
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	storage := &mockStorage{}
	svc := NewMediaService(storage)

	_, err := svc.Upload(context.Background(), "team", "doc.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, storage.uploads)
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	storage := &mockStorage{}
	svc := NewMediaService(storage)

	big := make([]byte, MaxUploadBytes+1)
	_, err := svc.Upload(context.Background(), "blog", "big.png", "image/png", big)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, storage.uploads)
}

func TestUpload_KeyCarriesExtension(t *testing.T) {
	storage := &mockStorage{}
	svc := NewMediaService(storage)

	result, err := svc.Upload(context.Background(), "blog", "cover.png", "image/png", []byte("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
}

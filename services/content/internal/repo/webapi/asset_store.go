package webapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"

	"github.com/google/uuid"
)

const defaultContentType = "image/jpeg"

var errEmptyImage = errors.New("image has no content")

// ObjectStorage is the subset of the S3 client the asset store relies on.
type ObjectStorage interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type assetStore struct {
	storage ObjectStorage
}

func NewAssetStore(storage ObjectStorage) repo.AssetStore {
	return &assetStore{storage: storage}
}

func (s *assetStore) Upload(ctx context.Context, file entity.ImageFile, namespace string) entity.AssetResult {
	if file.Body == nil {
		return entity.AssetFailure(errEmptyImage)
	}

	key := StorageKey(namespace, file.Name)
	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	url, err := s.storage.UploadFile(ctx, key, file.Body, contentType)
	if err != nil {
		return entity.AssetFailure(fmt.Errorf("upload %s: %w", key, err))
	}
	return entity.AssetSuccess(url, key)
}

func (s *assetStore) Destroy(ctx context.Context, storageKey string) entity.AssetResult {
	if err := s.storage.DeleteFile(ctx, storageKey); err != nil {
		return entity.AssetFailure(fmt.Errorf("destroy %s: %w", storageKey, err))
	}
	return entity.AssetSuccess("", storageKey)
}

// StorageKey places an upload under namespace with a random name that keeps
// the original file extension.
func StorageKey(namespace, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	name := uuid.New().String() + ext
	if namespace == "" {
		return name
	}
	return strings.TrimSuffix(namespace, "/") + "/" + name
}

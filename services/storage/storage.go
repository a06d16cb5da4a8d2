package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for document storage. It backs
// the expert ID-proof upload in the onboarding flow.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns
	// the hosted URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a previously uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{cld: cld, cloudName: cloudName}
}

// UploadFile uploads a file to Cloudinary and returns its secure URL.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for uploaded file")
	}
	return result.SecureURL, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

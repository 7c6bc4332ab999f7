package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadDocument uploads a credential file to Cloudinary into the specified
// folder and returns the delivery URL together with the permanent identifier.
func (s *CloudinaryStorageService) UploadDocument(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned for uploaded document")
	}
	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Filename: filepath.Base(localFilePath),
	}, nil
}

// UploadProtectedDocument encrypts the file before upload. Used for identity
// documents that must never be stored in cleartext.
func (s *CloudinaryStorageService) UploadProtectedDocument(ctx context.Context, localFilePath, destFolder, protectionKey string) (*UploadResult, error) {
	encryptedPath, cleanup, err := encryptFile(localFilePath, protectionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt document: %w", err)
	}
	defer cleanup()

	res, err := s.UploadDocument(ctx, encryptedPath, destFolder)
	if err != nil {
		return nil, err
	}
	res.Filename = filepath.Base(localFilePath)
	return res, nil
}

// DeleteDocument removes a stored document given its public ID.
func (s *CloudinaryStorageService) DeleteDocument(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// GetSecureDownloadURL generates a signed, short-lived URL for an
// authenticated resource. The signature is SHA-1 over "expires_at" and
// "public_id" concatenated with the API secret.
func (s *CloudinaryStorageService) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	secureURL := fmt.Sprintf("https://res.cloudinary.com/%s/%s/authenticated/s--%s--/expires_%d/%s", s.cloudName, resourceType, signature, expiresAt, publicID)
	return secureURL, nil
}

func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

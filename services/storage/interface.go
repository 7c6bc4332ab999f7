package storage

import (
	"context"
	"fmt"
	"time"

	"legalaid/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadResult describes a stored credential document.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Filename string `json:"filename"`
}

// StorageService defines the interface for credential document storage.
type StorageService interface {
	UploadDocument(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error)
	UploadProtectedDocument(ctx context.Context, localFilePath, destFolder, protectionKey string) (*UploadResult, error)
	DeleteDocument(ctx context.Context, publicID string) error
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorageService implements StorageService backed by Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewStorageService builds a Cloudinary-backed StorageService from AppConfig.
func NewStorageService() (StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cfg.CloudinaryCloudName,
		apiSecret: cfg.CloudinaryAPISecret,
	}, nil
}

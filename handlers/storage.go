package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"legalaid/config"
	"legalaid/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles credential document uploads and secure downloads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for credential documents. Aadhaar
// proofs are encrypted before upload; certificates are stored as-is.
var allowedBuckets = map[string]bool{
	"aadhaar-proofs":   true,
	"bar-certificates": true,
	"ngo-certificates": true,
}

// protectedBuckets holds identity documents that must be encrypted at rest.
var protectedBuckets = map[string]bool{
	"aadhaar-proofs": true,
}

// UploadDocumentHandler handles POST /storage/:bucket with a multipart "file"
// field. It returns the delivery URL and permanent identifier.
func (h *StorageHandler) UploadDocumentHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := "credentials/" + bucket

	var result *storage.UploadResult
	if protectedBuckets[bucket] {
		result, err = h.StorageSvc.UploadProtectedDocument(c, tempFilePath, destFolder, config.AppConfig.AdminToken)
	} else {
		result, err = h.StorageSvc.UploadDocument(c, tempFilePath, destFolder)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload document", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SecureDownloadURLHandler handles GET /admin/storage/:bucket/url and returns
// a signed, short-lived URL for the document named by the publicId query param.
func (h *StorageHandler) SecureDownloadURLHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket"})
		return
	}
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing public ID"})
		return
	}

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil {
			expiry = exp
		}
	}

	url, err := h.StorageSvc.GetSecureDownloadURL(c, "image", publicID, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate secure download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

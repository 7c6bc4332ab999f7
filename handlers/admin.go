// File: handlers/admin.go
package handlers

import (
	"net/http"

	"legalaid/services/admin"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations: approval queues,
// registry imports, and manual directory uploads.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// GetPendingLawyersHandler returns lawyers awaiting approval.
func (ah *AdminHandler) GetPendingLawyersHandler(c *gin.Context) {
	lawyers, err := ah.Service.GetPendingLawyers()
	if err != nil {
		zap.L().Error("Failed to fetch pending lawyers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending lawyers"})
		return
	}
	c.JSON(http.StatusOK, lawyers)
}

// GetPendingNGOsHandler returns NGOs awaiting approval.
func (ah *AdminHandler) GetPendingNGOsHandler(c *gin.Context) {
	ngos, err := ah.Service.GetPendingNGOs()
	if err != nil {
		zap.L().Error("Failed to fetch pending NGOs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending NGOs"})
		return
	}
	c.JSON(http.StatusOK, ngos)
}

// ApproveLawyerHandler handles PUT /admin/lawyers/:id/approve.
func (ah *AdminHandler) ApproveLawyerHandler(c *gin.Context) {
	id := c.Param("id")
	if err := ah.Service.ApproveLawyer(c.Request.Context(), id); err != nil {
		zap.L().Error("Failed to approve lawyer", zap.String("id", id), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lawyer approved"})
}

// ApproveNGOHandler handles PUT /admin/ngos/:id/approve.
func (ah *AdminHandler) ApproveNGOHandler(c *gin.Context) {
	id := c.Param("id")
	if err := ah.Service.ApproveNGO(c.Request.Context(), id); err != nil {
		zap.L().Error("Failed to approve NGO", zap.String("id", id), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "NGO approved"})
}

// ImportSourceHandler handles POST /admin/imports/:source. With ?async=true
// the import is queued for the background worker instead of running inline.
func (ah *AdminHandler) ImportSourceHandler(c *gin.Context) {
	sourceTag := c.Param("source")

	if c.Query("async") == "true" {
		if err := ah.Service.EnqueueImport(sourceTag); err != nil {
			utils.GetLogger().Error("Failed to enqueue import", zap.String("source", sourceTag), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue import"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message": "Import queued", "source": sourceTag})
		return
	}

	summary, err := ah.Service.ImportSource(c.Request.Context(), sourceTag)
	if err != nil {
		utils.GetLogger().Error("Import failed", zap.String("source", sourceTag), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ImportUploadHandler handles POST /admin/imports/:source/upload with a
// multipart "file" field containing a registry snapshot.
func (ah *AdminHandler) ImportUploadHandler(c *gin.Context) {
	sourceTag := c.Param("source")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file", "detail": err.Error()})
		return
	}
	defer f.Close()

	summary, err := ah.Service.ImportUploaded(c.Request.Context(), sourceTag, f)
	if err != nil {
		utils.GetLogger().Error("Uploaded import failed", zap.String("source", sourceTag), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UploadDirectoryCSVHandler handles POST /admin/directory/upload: manual
// internal entries with no natural key.
func (ah *AdminHandler) UploadDirectoryCSVHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file", "detail": err.Error()})
		return
	}
	defer f.Close()

	summary, err := ah.Service.UploadDirectoryCSV(f)
	if err != nil {
		utils.GetLogger().Error("Directory CSV upload failed", zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

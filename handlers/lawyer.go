// File: handlers/lawyer.go
package handlers

import (
	"net/http"

	"legalaid/services/lawyer"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LawyerHandler exposes lawyer registration, profile, and login endpoints.
type LawyerHandler struct {
	Service lawyer.LawyerService
}

// NewLawyerHandler creates a new LawyerHandler.
func NewLawyerHandler(svc lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{Service: svc}
}

// RegisterHandler handles POST /lawyers/register.
func (h *LawyerHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input lawyer.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	lw, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		logger.Warn("Lawyer registration rejected", zap.String("email", input.Email), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lw)
}

// LoginHandler handles POST /lawyers/login.
func (h *LawyerHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lw, token, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("Lawyer login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lawyer": lw, "token": token})
}

// GetLawyerByIDHandler handles GET /lawyers/:id.
func (h *LawyerHandler) GetLawyerByIDHandler(c *gin.Context) {
	id := c.Param("id")
	lw, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lw)
}

// UpdateLawyerHandler handles PUT /lawyers/:id. The authenticated lawyer may
// only edit their own profile.
func (h *LawyerHandler) UpdateLawyerHandler(c *gin.Context) {
	id := c.Param("id")
	if authID, _ := c.Get("lawyerID"); authID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot edit another lawyer's profile"})
		return
	}

	var input lawyer.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	lw, err := h.Service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lw)
}

// DeleteLawyerHandler handles DELETE /lawyers/:id.
func (h *LawyerHandler) DeleteLawyerHandler(c *gin.Context) {
	id := c.Param("id")
	if authID, _ := c.Get("lawyerID"); authID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another lawyer's profile"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete lawyer", zap.String("id", id), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lawyer deleted"})
}

// File: handlers/ngo.go
package handlers

import (
	"net/http"

	"legalaid/services/ngo"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NGOHandler exposes NGO registration, profile, and login endpoints.
type NGOHandler struct {
	Service ngo.NGOService
}

// NewNGOHandler creates a new NGOHandler.
func NewNGOHandler(svc ngo.NGOService) *NGOHandler {
	return &NGOHandler{Service: svc}
}

// RegisterHandler handles POST /ngos/register.
func (h *NGOHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input ngo.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	org, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		logger.Warn("NGO registration rejected", zap.String("email", input.Email), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// LoginHandler handles POST /ngos/login.
func (h *NGOHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, token, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("NGO login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ngo": org, "token": token})
}

// GetNGOByIDHandler handles GET /ngos/:id.
func (h *NGOHandler) GetNGOByIDHandler(c *gin.Context) {
	id := c.Param("id")
	org, err := h.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// UpdateNGOHandler handles PUT /ngos/:id. The authenticated NGO may only edit
// its own profile.
func (h *NGOHandler) UpdateNGOHandler(c *gin.Context) {
	id := c.Param("id")
	if authID, _ := c.Get("ngoID"); authID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot edit another NGO's profile"})
		return
	}

	var input ngo.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	org, err := h.Service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteNGOHandler handles DELETE /ngos/:id.
func (h *NGOHandler) DeleteNGOHandler(c *gin.Context) {
	id := c.Param("id")
	if authID, _ := c.Get("ngoID"); authID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another NGO's profile"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete NGO", zap.String("id", id), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "NGO deleted"})
}

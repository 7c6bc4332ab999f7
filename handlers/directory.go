// File: handlers/directory.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	directoryRepo "legalaid/database/repository/directory"
	"legalaid/services/directory"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler exposes the public search surface of the directory.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// SearchHandler handles GET /directory/search. All filters are optional;
// only approved listings are ever returned.
func (h *DirectoryHandler) SearchHandler(c *gin.Context) {
	criteria := directoryRepo.DirectorySearchCriteria{
		Kind:           strings.ToUpper(strings.TrimSpace(c.Query("kind"))),
		State:          strings.TrimSpace(c.Query("state")),
		District:       strings.TrimSpace(c.Query("district")),
		Specialization: strings.TrimSpace(c.Query("specialization")),
	}

	if v := c.Query("minExperience"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minExperience must be an integer"})
			return
		}
		criteria.MinExperience = n
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.Page = n
		}
	}
	if v := c.Query("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.PageSize = n
		}
	}

	page, err := h.Service.Search(c.Request.Context(), criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetListingHandler handles GET /directory/:id.
func (h *DirectoryHandler) GetListingHandler(c *gin.Context) {
	entry, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

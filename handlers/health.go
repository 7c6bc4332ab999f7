package handlers

import (
	"net/http"

	"legalaid/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest stored snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

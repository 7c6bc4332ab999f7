package handlers

import (
	"errors"
	"net/http"

	"legalaid/services/directory"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps typed service errors to HTTP statuses. Unknown
// errors become a 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr  directory.ValidationError
		conflictErr    directory.ConflictError
		notFoundErr    directory.NotFoundError
		unavailableErr directory.SourceUnavailableError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", validationErr.Error())
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "Conflict", conflictErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Error())
	case errors.As(err, &unavailableErr):
		utils.JSONError(c, http.StatusBadGateway, "Source unavailable", unavailableErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "An unexpected error occurred")
	}
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"venue-service/internal/domain"
	"venue-service/pkg/response"
)

// handleError maps domain errors onto HTTP statuses. Anything not
// classified is a server fault.
func handleError(c *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		response.BadRequest(c, err.Error())
	case domain.IsNotFoundError(err):
		response.NotFound(c, "NOT_FOUND", err.Error())
	case domain.IsConflictError(err):
		response.Conflict(c, "CONFLICT", err.Error())
	default:
		response.InternalError(c, err)
	}
}

// pathID parses the :id path parameter, writing a 400 on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

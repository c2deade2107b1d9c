package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/just-tech-news/backend/internal/apperror"
	"github.com/just-tech-news/backend/internal/logger"
)

// respondError maps a store error to its HTTP status. Validation and
// authentication failures are the client's fault (400), missing records
// are 404, ownership violations 403. Anything else is logged and answered
// with a generic 500 so internals never reach the wire.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(appErr, apperror.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": appErr.Message})
		case errors.Is(appErr, apperror.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": appErr.Message})
		case errors.Is(appErr, apperror.ErrAuthentication):
			c.JSON(http.StatusBadRequest, gin.H{"message": appErr.Message})
		case errors.Is(appErr, apperror.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": appErr.Message})
		default:
			logger.Sugar.Errorw("request failed", "path", c.FullPath(), "error", appErr.Err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	logger.Sugar.Errorw("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// pathID parses the :id path parameter. A non-numeric id gets a 400 and
// a false return.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}

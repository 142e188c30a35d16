package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "gourmet-graph/backend/pkg/errors"
)

// respondError maps typed errors to status codes. Upstream and unknown failures are logged
// and hidden behind a generic message.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err)})
	default:
		h.logger.Error("Request failed",
			zap.String("operation", op),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

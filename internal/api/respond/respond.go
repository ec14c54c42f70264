// Package respond maps domain errors onto HTTP responses.
package respond

import (
	"errors"
	"net/http"

	"art-catalog/internal/domain/media"
	"art-catalog/internal/domain/tags"
	"art-catalog/internal/domain/validate"
	"art-catalog/internal/domain/works"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Error(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case validate.IsValidation(err), errors.Is(err, works.ErrUnknownReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, works.ErrArtworkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
	case errors.Is(err, media.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
	case errors.Is(err, works.ErrImageNotAttached):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image is not attached to this artwork"})
	case errors.Is(err, tags.ErrCodeConflict), errors.Is(err, works.ErrImageAttached):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// BadRequest is used for bodies gin could not bind.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

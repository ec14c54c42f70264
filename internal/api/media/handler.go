package media

import (
	"context"
	"net/http"
	"strconv"

	"art-catalog/internal/api/respond"
	dm "art-catalog/internal/domain/media"
	"art-catalog/internal/domain/serial"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Store interface {
	CreateImage(ctx context.Context, img *dm.Image) error
	GetImage(ctx context.Context, id uint) (*dm.Image, error)
}

// CreateImageRequest registers an already stored file by path.
type CreateImageRequest struct {
	Path string `json:"path" binding:"required"`
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func NewHandler(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// POST /images
func (h *Handler) CreateImage(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	img, err := dm.NewImage(req.Path)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	if err := h.store.CreateImage(c.Request.Context(), img); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, serial.ToDict(img))
}

// GET /images/:id
func (h *Handler) GetImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	img, err := h.store.GetImage(c.Request.Context(), uint(id))
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, serial.ToDict(img))
}

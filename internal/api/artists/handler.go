package artists

import (
	"context"
	"net/http"

	"art-catalog/internal/api/respond"
	da "art-catalog/internal/domain/artists"
	"art-catalog/internal/domain/serial"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Store interface {
	ListArtists(ctx context.Context) ([]da.Artist, error)
	CreateArtist(ctx context.Context, a *da.Artist) error
}

type CreateArtistRequest struct {
	Name string `json:"name" binding:"required,max=64"`
	Desc string `json:"desc"`
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func NewHandler(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// GET /artists
func (h *Handler) ListArtists(c *gin.Context) {
	list, err := h.store.ListArtists(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": serial.Slice(serial.NewEncoder(), list)})
}

// POST /artists
func (h *Handler) CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	a, err := da.NewArtist(req.Name, req.Desc)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	if err := h.store.CreateArtist(c.Request.Context(), a); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, serial.ToDict(a))
}

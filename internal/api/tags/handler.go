package tags

import (
	"context"
	"net/http"

	"art-catalog/internal/api/respond"
	"art-catalog/internal/domain/serial"
	dt "art-catalog/internal/domain/tags"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Store interface {
	ListMediums(ctx context.Context) ([]dt.ArtMedium, error)
	CreateMedium(ctx context.Context, m *dt.ArtMedium) error
	ListGenres(ctx context.Context) ([]dt.ArtGenre, error)
	CreateGenre(ctx context.Context, g *dt.ArtGenre) error
}

// TagRequest is shared by mediums and genres. Code is derived from the name when empty.
type TagRequest struct {
	Name string `json:"name" binding:"required,max=80"`
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func (r TagRequest) options() []dt.Option {
	opts := []dt.Option{dt.WithDesc(r.Desc)}
	if r.Code != "" {
		opts = append(opts, dt.WithCode(r.Code))
	}
	return opts
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func NewHandler(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// GET /mediums
func (h *Handler) ListMediums(c *gin.Context) {
	mediums, err := h.store.ListMediums(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mediums": serial.Slice(serial.NewEncoder(), mediums)})
}

// POST /mediums
func (h *Handler) CreateMedium(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	m, err := dt.NewArtMedium(req.Name, req.options()...)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	if err := h.store.CreateMedium(c.Request.Context(), m); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	h.log.Info("Medium created", zap.String("code", m.Code))
	c.JSON(http.StatusCreated, serial.ToDict(m))
}

// GET /genres
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.store.ListGenres(c.Request.Context())
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": serial.Slice(serial.NewEncoder(), genres)})
}

// POST /genres
func (h *Handler) CreateGenre(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	g, err := dt.NewArtGenre(req.Name, req.options()...)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	if err := h.store.CreateGenre(c.Request.Context(), g); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	h.log.Info("Genre created", zap.String("code", g.Code))
	c.JSON(http.StatusCreated, serial.ToDict(g))
}

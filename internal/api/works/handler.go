package works

import (
	"context"
	"net/http"
	"strconv"

	"art-catalog/internal/api/respond"
	"art-catalog/internal/domain/serial"
	dw "art-catalog/internal/domain/works"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Store interface {
	GetArtwork(ctx context.Context, id uint, relations []string) (*dw.Artwork, error)
	CreateArtwork(ctx context.Context, a *dw.Artwork, links dw.Links) error
	UpdateArtwork(ctx context.Context, id uint, p dw.Patch) error
	DeleteArtwork(ctx context.Context, id uint) error
	AttachImage(ctx context.Context, ai *dw.ArtworkImage, asMain bool) error
	DetachImage(ctx context.Context, artworkID, imageID uint) error
	AddInfo(ctx context.Context, info *dw.ArtworkInfo) error
	ListInfo(ctx context.Context, artworkID uint) ([]dw.ArtworkInfo, error)
}

type Handler struct {
	store Store
	log   *zap.Logger
}

func NewHandler(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// parseID accepts positive integers that fit a bigint key; anything else is answered like a miss.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 63)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /artwork/:id?load=mediums,genres
// ------------------------------
func (h *Handler) GetArtworkByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	load, present := c.GetQuery("load")
	a, err := h.store.GetArtwork(c.Request.Context(), id, dw.ParseRelations(load, present))
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, serial.ToDict(a))
}

// ------------------------------
// POST /artworks
// ------------------------------
func (h *Handler) CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	opts := []dw.Option{dw.WithDesc(req.Desc)}
	if req.DateCreated != "" {
		d, err := dw.ParseDate(req.DateCreated)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_created must be YYYY-MM-DD"})
			return
		}
		opts = append(opts, dw.WithDateCreated(d))
	}
	if req.MainImageID != nil {
		opts = append(opts, dw.WithMainImage(*req.MainImageID))
	}

	a, err := dw.NewArtwork(req.Title, opts...)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	links := dw.Links{
		MediumCodes: req.MediumCodes,
		GenreCodes:  req.GenreCodes,
		ArtistIDs:   req.ArtistIDs,
	}
	if err := h.store.CreateArtwork(c.Request.Context(), a, links); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	h.log.Info("Artwork created", zap.Uint("artwork_id", a.ID), zap.String("title", a.Title))
	c.JSON(http.StatusCreated, gin.H{"id": a.ID})
}

// ------------------------------
// PUT /artwork/:id
// ------------------------------
func (h *Handler) UpdateArtwork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	patch := dw.Patch{
		Title:          req.Title,
		Desc:           req.Desc,
		MainImageID:    req.MainImageID,
		ClearMainImage: req.ClearMainImage,
		Links: dw.Links{
			MediumCodes: req.MediumCodes,
			GenreCodes:  req.GenreCodes,
			ArtistIDs:   req.ArtistIDs,
		},
	}
	if err := patch.Validate(); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	if err := h.store.UpdateArtwork(c.Request.Context(), id, patch); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /artwork/:id
// ------------------------------
func (h *Handler) DeleteArtwork(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteArtwork(c.Request.Context(), id); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	h.log.Info("Artwork deleted", zap.Uint("artwork_id", id))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /artwork/:id/images
// ------------------------------
func (h *Handler) AttachImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AttachImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	ai, err := dw.NewArtworkImage(id, req.ImageID, dw.WithTitle(req.Title), dw.WithCaption(req.Caption))
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	if err := h.store.AttachImage(c.Request.Context(), ai, req.Main); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, serial.ToDict(ai))
}

// ------------------------------
// DELETE /artwork/:id/images/:imageId
// ------------------------------
func (h *Handler) DetachImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 63)
	if err != nil || imageID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	if err := h.store.DetachImage(c.Request.Context(), id, uint(imageID)); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "detached"})
}

// ------------------------------
// GET /artwork/:id/info
// ------------------------------
func (h *Handler) ListInfo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	infos, err := h.store.ListInfo(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"info": serial.Slice(serial.NewEncoder(), infos)})
}

// ------------------------------
// POST /artwork/:id/info
// ------------------------------
func (h *Handler) AddInfo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AddInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	info, err := dw.NewArtworkInfo(id, req.Name, req.Value)
	if err != nil {
		respond.Error(c, h.log, err)
		return
	}
	if err := h.store.AddInfo(c.Request.Context(), info); err != nil {
		respond.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, serial.ToDict(info))
}

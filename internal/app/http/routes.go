package routes

import (
	"context"
	"net/http"

	artistsapi "art-catalog/internal/api/artists"
	mediaapi "art-catalog/internal/api/media"
	tagsapi "art-catalog/internal/api/tags"
	worksapi "art-catalog/internal/api/works"
	"art-catalog/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handlers struct {
	Works   *worksapi.Handler
	Tags    *tagsapi.Handler
	Artists *artistsapi.Handler
	Media   *mediaapi.Handler
}

// Pinger reports whether the database answers.
type Pinger func(ctx context.Context) error

// NewRouter builds the engine with logging, metrics and recovery in place.
// Extra middleware (CORS) runs before any route.
func NewRouter(log *zap.Logger, h Handlers, ping Pinger, extra ...gin.HandlerFunc) *gin.Engine {
	// unknown JSON fields are a client error, never silently ignored
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Metrics(), gin.Recovery())
	r.Use(extra...)

	RegisterRoutes(r, h, ping)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers, ping Pinger) {
	r.GET("/health", func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Reads
	r.GET("/artwork/:id", h.Works.GetArtworkByID)
	r.GET("/artwork/:id/info", h.Works.ListInfo)
	r.GET("/mediums", h.Tags.ListMediums)
	r.GET("/genres", h.Tags.ListGenres)
	r.GET("/artists", h.Artists.ListArtists)
	r.GET("/images/:id", h.Media.GetImage)

	// ✅ Apply input sanitization to writes
	write := r.Group("/")
	write.Use(middleware.SanitizeAndCleanInputMiddleware())

	write.POST("/artworks", h.Works.CreateArtwork)
	write.PUT("/artwork/:id", h.Works.UpdateArtwork)
	write.DELETE("/artwork/:id", h.Works.DeleteArtwork)

	write.POST("/artwork/:id/images", h.Works.AttachImage)
	write.DELETE("/artwork/:id/images/:imageId", h.Works.DetachImage)
	write.POST("/artwork/:id/info", h.Works.AddInfo)

	write.POST("/mediums", h.Tags.CreateMedium)
	write.POST("/genres", h.Tags.CreateGenre)
	write.POST("/artists", h.Artists.CreateArtist)
	write.POST("/images", h.Media.CreateImage)
}

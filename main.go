package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"art-catalog/config"
	"art-catalog/database"
	artistsapi "art-catalog/internal/api/artists"
	mediaapi "art-catalog/internal/api/media"
	tagsapi "art-catalog/internal/api/tags"
	worksapi "art-catalog/internal/api/works"
	routes "art-catalog/internal/app/http"
	"art-catalog/internal/infra/logging"
	"art-catalog/internal/infra/postgres"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(config.APP_ENV, config.LOG_LEVEL)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(config.DB_URL, config.AUTO_MIGRATE, logger); err != nil {
		logger.Fatal("Database init failed", zap.Error(err))
	}
	sqlDB, err := database.DB.DB()
	if err != nil {
		logger.Fatal("Database handle unavailable", zap.Error(err))
	}

	handlers := routes.Handlers{
		Works:   worksapi.NewHandler(postgres.NewArtworkRepository(database.DB), logger),
		Tags:    tagsapi.NewHandler(postgres.NewTagRepository(database.DB), logger),
		Artists: artistsapi.NewHandler(postgres.NewArtistRepository(database.DB), logger),
		Media:   mediaapi.NewHandler(postgres.NewImageRepository(database.DB), logger),
	}

	// ✅ CORS runs before any route
	r := routes.NewRouter(logger, handlers, sqlDB.PingContext, cors.New(corsConfig(config.CORS_ORIGIN)))

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Listening", zap.String("addr", srv.Addr), zap.String("env", config.APP_ENV))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Closing database failed", zap.Error(err))
	}
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
		cfg.AllowCredentials = true
	}
	return cfg
}

package database

import (
	"fmt"
	"time"

	"art-catalog/internal/domain/artists"
	"art-catalog/internal/domain/media"
	"art-catalog/internal/domain/tags"
	"art-catalog/internal/domain/works"
	"art-catalog/internal/infra/logging"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open connects to Postgres. Duplicate keys come back as gorm.ErrDuplicatedKey.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logging.NewGormLogger(log, 200*time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates the catalog tables. Shared tables come before the ones referencing them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// shared
		&media.Image{},
		&tags.ArtMedium{},
		&tags.ArtGenre{},
		&artists.Artist{},

		// works
		&works.Artwork{},
		&works.ArtworkImage{},
		&works.ArtworkInfo{},
	)
}

func InitDB(dsn string, migrate bool, log *zap.Logger) error {
	db, err := Open(dsn, log)
	if err != nil {
		return err
	}
	DB = db

	if migrate {
		if err := Migrate(DB); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	log.Info("Connected to database", zap.Bool("migrated", migrate))
	return nil
}

package postgres

import (
	"context"

	"art-catalog/internal/domain/artists"

	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) ListArtists(ctx context.Context) ([]artists.Artist, error) {
	out := []artists.Artist{}
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ArtistRepository) CreateArtist(ctx context.Context, a *artists.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

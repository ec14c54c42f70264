package postgres

import (
	"context"
	"errors"

	"art-catalog/internal/domain/media"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) CreateImage(ctx context.Context, img *media.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ImageRepository) GetImage(ctx context.Context, id uint) (*media.Image, error) {
	var img media.Image
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, media.ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

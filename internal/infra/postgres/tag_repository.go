package postgres

import (
	"context"
	"errors"

	"art-catalog/internal/domain/tags"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) ListMediums(ctx context.Context) ([]tags.ArtMedium, error) {
	return listTags[tags.ArtMedium](r.db.WithContext(ctx))
}

func (r *TagRepository) CreateMedium(ctx context.Context, m *tags.ArtMedium) error {
	return createTag(r.db.WithContext(ctx), m, m.Code)
}

func (r *TagRepository) ListGenres(ctx context.Context) ([]tags.ArtGenre, error) {
	return listTags[tags.ArtGenre](r.db.WithContext(ctx))
}

func (r *TagRepository) CreateGenre(ctx context.Context, g *tags.ArtGenre) error {
	return createTag(r.db.WithContext(ctx), g, g.Code)
}

func listTags[T any](db *gorm.DB) ([]T, error) {
	out := []T{}
	if err := db.Order("code ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// createTag refuses to overwrite: a second tag deriving the same code is a conflict.
func createTag[T any](db *gorm.DB, tag *T, code string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Where("code = ?", code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return tags.ErrCodeConflict
		}

		if err := tx.Create(tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return tags.ErrCodeConflict
			}
			return err
		}
		return nil
	})
}

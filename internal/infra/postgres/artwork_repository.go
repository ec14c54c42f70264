package postgres

import (
	"context"
	"errors"
	"fmt"

	"art-catalog/internal/domain/artists"
	"art-catalog/internal/domain/media"
	"art-catalog/internal/domain/tags"
	"art-catalog/internal/domain/works"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// GetArtwork loads one artwork with every declared relation populated.
// The main image is joined into the primary select and the relations named in
// `relations` are preloaded alongside it; the rest are fetched afterwards.
// The result is the same whichever relations were asked for.
func (r *ArtworkRepository) GetArtwork(ctx context.Context, id uint, relations []string) (*works.Artwork, error) {
	eager, deferred := works.PlanRelations(relations)

	q := r.db.WithContext(ctx).Joins("MainImage")
	for _, rel := range eager {
		q = preloadRelation(q, rel)
	}

	var a works.Artwork
	if err := q.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, works.ErrArtworkNotFound
		}
		return nil, err
	}

	db := r.db.WithContext(ctx)
	for _, rel := range deferred {
		if err := loadRelation(db, &a, rel); err != nil {
			return nil, fmt.Errorf("load %s: %w", rel, err)
		}
	}
	return &a, nil
}

func preloadRelation(q *gorm.DB, rel works.Relation) *gorm.DB {
	switch rel {
	case works.RelMediums:
		return q.Preload("Mediums", orderBy("code"))
	case works.RelGenres:
		return q.Preload("Genres", orderBy("code"))
	case works.RelArtists:
		return q.Preload("Artists", orderBy("id"))
	case works.RelImages:
		return q.Preload("Images", orderBy("id")).Preload("Images.Image")
	}
	return q
}

func loadRelation(db *gorm.DB, a *works.Artwork, rel works.Relation) error {
	switch rel {
	case works.RelMediums:
		return db.Model(a).Order("code ASC").Association("Mediums").Find(&a.Mediums)
	case works.RelGenres:
		return db.Model(a).Order("code ASC").Association("Genres").Find(&a.Genres)
	case works.RelArtists:
		return db.Model(a).Order("id ASC").Association("Artists").Find(&a.Artists)
	case works.RelImages:
		return db.Where("artwork_id = ?", a.ID).
			Preload("Image").
			Order("id ASC").
			Find(&a.Images).Error
	}
	return nil
}

func orderBy(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC")
	}
}

func (r *ArtworkRepository) CreateArtwork(ctx context.Context, a *works.Artwork, links works.Links) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if a.MainImageID != nil {
			if err := requireImage(tx, *a.MainImageID); err != nil {
				return err
			}
		}
		if err := resolveLinks(tx, a, links); err != nil {
			return err
		}

		// link to the existing shared rows, never rewrite them
		return tx.Omit("Mediums.*", "Genres.*", "Artists.*").Create(a).Error
	})
}

func (r *ArtworkRepository) UpdateArtwork(ctx context.Context, id uint, p works.Patch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockArtwork(tx, id)
		if err != nil {
			return err
		}
		if p.MainImageID != nil && !p.ClearMainImage {
			if err := requireImage(tx, *p.MainImageID); err != nil {
				return err
			}
		}

		cols := p.Columns()
		cols["date_updated"] = gorm.Expr("now()")
		if err := tx.Model(a).Updates(cols).Error; err != nil {
			return err
		}

		var next works.Artwork
		if err := resolveLinks(tx, &next, p.Links); err != nil {
			return err
		}
		if p.Links.MediumCodes != nil {
			if err := replaceAssociation(tx, a, "Mediums", &next.Mediums, len(next.Mediums)); err != nil {
				return err
			}
		}
		if p.Links.GenreCodes != nil {
			if err := replaceAssociation(tx, a, "Genres", &next.Genres, len(next.Genres)); err != nil {
				return err
			}
		}
		if p.Links.ArtistIDs != nil {
			if err := replaceAssociation(tx, a, "Artists", &next.Artists, len(next.Artists)); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceAssociation(tx *gorm.DB, a *works.Artwork, name string, rows any, n int) error {
	assoc := tx.Model(a).Association(name)
	if n == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(rows)
}

// DeleteArtwork removes the artwork, its join rows and its image/info records.
// Mediums, genres, artists and images survive even when nothing references them any more.
func (r *ArtworkRepository) DeleteArtwork(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockArtwork(tx, id)
		if err != nil {
			return err
		}
		return tx.Select("Mediums", "Genres", "Artists", "Images", "Info").Delete(a).Error
	})
}

func (r *ArtworkRepository) AttachImage(ctx context.Context, ai *works.ArtworkImage, asMain bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockArtwork(tx, ai.ArtworkID)
		if err != nil {
			return err
		}
		if err := requireImage(tx, ai.ImageID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&works.ArtworkImage{}).
			Where("artwork_id = ? AND image_id = ?", ai.ArtworkID, ai.ImageID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return works.ErrImageAttached
		}

		if err := tx.Omit("Artwork", "Image").Create(ai).Error; err != nil {
			return err
		}

		cols := map[string]any{"date_updated": gorm.Expr("now()")}
		if asMain {
			cols["main_img_id"] = ai.ImageID
		}
		return tx.Model(a).Updates(cols).Error
	})
}

func (r *ArtworkRepository) DetachImage(ctx context.Context, artworkID, imageID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockArtwork(tx, artworkID)
		if err != nil {
			return err
		}

		res := tx.Where("artwork_id = ? AND image_id = ?", artworkID, imageID).Delete(&works.ArtworkImage{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return works.ErrImageNotAttached
		}
		return touch(tx, a)
	})
}

func (r *ArtworkRepository) AddInfo(ctx context.Context, info *works.ArtworkInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockArtwork(tx, info.ArtworkID)
		if err != nil {
			return err
		}
		if err := tx.Create(info).Error; err != nil {
			return err
		}
		return touch(tx, a)
	})
}

func (r *ArtworkRepository) ListInfo(ctx context.Context, artworkID uint) ([]works.ArtworkInfo, error) {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&works.Artwork{}).Where("id = ?", artworkID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, works.ErrArtworkNotFound
	}

	infos := []works.ArtworkInfo{}
	if err := db.Where("artwork_id = ?", artworkID).Order("id ASC").Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

// lockArtwork takes a row lock so concurrent writes to one artwork apply in turn.
func lockArtwork(tx *gorm.DB, id uint) (*works.Artwork, error) {
	var a works.Artwork
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, works.ErrArtworkNotFound
		}
		return nil, err
	}
	return &a, nil
}

// touch lets the database stamp date_updated for writes that only hit child tables.
func touch(tx *gorm.DB, a *works.Artwork) error {
	return tx.Model(a).UpdateColumn("date_updated", gorm.Expr("now()")).Error
}

func requireImage(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&media.Image{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: image %d", works.ErrUnknownReference, id)
	}
	return nil
}

// resolveLinks swaps the requested keys for the stored rows. Nil lists are left alone.
func resolveLinks(tx *gorm.DB, a *works.Artwork, links works.Links) error {
	if links.MediumCodes != nil {
		rows, err := findByKeys(tx, "medium", "code", links.MediumCodes, func(m tags.ArtMedium) string { return m.Code })
		if err != nil {
			return err
		}
		a.Mediums = rows
	}
	if links.GenreCodes != nil {
		rows, err := findByKeys(tx, "genre", "code", links.GenreCodes, func(g tags.ArtGenre) string { return g.Code })
		if err != nil {
			return err
		}
		a.Genres = rows
	}
	if links.ArtistIDs != nil {
		rows, err := findByKeys(tx, "artist", "id", links.ArtistIDs, func(p artists.Artist) uint { return p.ID })
		if err != nil {
			return err
		}
		a.Artists = rows
	}
	return nil
}

func findByKeys[T any, K comparable](tx *gorm.DB, kind, column string, keys []K, keyOf func(T) K) ([]T, error) {
	out := []T{}
	if len(keys) == 0 {
		return out, nil
	}
	if err := tx.Where(column+" IN ?", keys).Order(column + " ASC").Find(&out).Error; err != nil {
		return nil, err
	}

	found := make(map[K]bool, len(out))
	for _, row := range out {
		found[keyOf(row)] = true
	}
	for _, k := range keys {
		if !found[k] {
			return nil, fmt.Errorf("%w: %s %v", works.ErrUnknownReference, kind, k)
		}
	}
	return out, nil
}

package works

import (
	"errors"
	"fmt"
	"strings"

	"art-catalog/internal/domain/media"
	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"
)

const imageMetaName = "image"

var (
	ErrImageAttached    = errors.New("image already attached to artwork")
	ErrImageNotAttached = errors.New("image not attached to artwork")
)

// ArtworkMeta is the common header of every keyed record hanging off an artwork.
type ArtworkMeta struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:64;not null" json:"name"`
	ArtworkID uint   `gorm:"not null;index" json:"artwork_id"`
}

func (m ArtworkMeta) meta() serial.Dict {
	return serial.Dict{
		"id":         m.ID,
		"name":       m.Name,
		"artwork_id": m.ArtworkID,
	}
}

// ArtworkInfo is a free-form name/value attribute, e.g. "dimensions" = "73.7 x 92.1 cm".
type ArtworkInfo struct {
	ArtworkMeta
	Value string `gorm:"size:64" json:"value"`
}

func (ArtworkInfo) TableName() string {
	return "artwork_infos"
}

func NewArtworkInfo(artworkID uint, name, value string) (*ArtworkInfo, error) {
	if artworkID == 0 {
		return nil, fmt.Errorf("%w: artwork_id", validate.ErrMissingField)
	}
	name = strings.TrimSpace(name)
	if err := validate.Required("name", name); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("name", name, 64); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("value", value, 64); err != nil {
		return nil, err
	}
	return &ArtworkInfo{
		ArtworkMeta: ArtworkMeta{Name: name, ArtworkID: artworkID},
		Value:       value,
	}, nil
}

func (i ArtworkInfo) SerialKey() string {
	return fmt.Sprintf("artworkinfo:%d", i.ID)
}

func (i ArtworkInfo) Ref() serial.Dict {
	return serial.Dict{"id": i.ID}
}

func (i ArtworkInfo) ToDict(*serial.Encoder) serial.Dict {
	d := i.meta()
	d["value"] = i.Value
	return d
}

// ArtworkImage links one image to one artwork and carries the caption for that pairing.
type ArtworkImage struct {
	ArtworkMeta
	ImageID uint    `gorm:"not null;index" json:"image_id"`
	Title   *string `gorm:"size:80" json:"title"`
	Caption *string `gorm:"type:text" json:"caption"`

	Artwork *Artwork     `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;" json:"-"`
	Image   *media.Image `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE;" json:"image"`
}

func (ArtworkImage) TableName() string {
	return "artworkimages"
}

type ImageOption func(*ArtworkImage)

func WithTitle(title string) ImageOption {
	return func(ai *ArtworkImage) {
		if title != "" {
			ai.Title = &title
		}
	}
}

func WithCaption(caption string) ImageOption {
	return func(ai *ArtworkImage) {
		if caption != "" {
			ai.Caption = &caption
		}
	}
}

func NewArtworkImage(artworkID, imageID uint, opts ...ImageOption) (*ArtworkImage, error) {
	if artworkID == 0 {
		return nil, fmt.Errorf("%w: artwork_id", validate.ErrMissingField)
	}
	if imageID == 0 {
		return nil, fmt.Errorf("%w: image_id", validate.ErrMissingField)
	}
	ai := &ArtworkImage{
		ArtworkMeta: ArtworkMeta{Name: imageMetaName, ArtworkID: artworkID},
		ImageID:     imageID,
	}
	for _, opt := range opts {
		opt(ai)
	}
	if ai.Title != nil {
		if err := validate.MaxLen("title", *ai.Title, 80); err != nil {
			return nil, err
		}
	}
	return ai, nil
}

func (ai ArtworkImage) SerialKey() string {
	return fmt.Sprintf("artworkimage:%d", ai.ID)
}

func (ai ArtworkImage) Ref() serial.Dict {
	return serial.Dict{"id": ai.ID}
}

func (ai ArtworkImage) ToDict(enc *serial.Encoder) serial.Dict {
	d := ai.meta()
	d["image_id"] = ai.ImageID
	d["title"] = serial.String(ai.Title)
	d["caption"] = serial.String(ai.Caption)

	var img any
	if ai.Image != nil {
		img = enc.Encode(ai.Image)
	}
	d["image"] = img

	// only present when the back-reference was loaded
	if ai.Artwork != nil {
		d["artwork"] = enc.Encode(ai.Artwork)
	}
	return d
}

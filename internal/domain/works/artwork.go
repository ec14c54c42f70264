package works

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"art-catalog/internal/domain/artists"
	"art-catalog/internal/domain/media"
	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/tags"
	"art-catalog/internal/domain/validate"
)

const TitleMaxLen = 100

var (
	ErrArtworkNotFound = errors.New("artwork not found")
	// ErrUnknownReference means a medium, genre, artist or image id given for linking does not exist.
	ErrUnknownReference = errors.New("unknown reference")
)

type Artwork struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string  `gorm:"size:100;not null" json:"title"`
	Desc  *string `gorm:"column:description;type:text" json:"desc"`

	DateCreated *time.Time `gorm:"type:date" json:"date_created"`
	DateUpdated time.Time  `gorm:"autoUpdateTime;default:now()" json:"date_updated"`

	MainImageID *uint        `gorm:"column:main_img_id;index" json:"main_img_id"`
	MainImage   *media.Image `gorm:"foreignKey:MainImageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"main_img"`

	Mediums []tags.ArtMedium `gorm:"many2many:artwork_mediums;constraint:OnDelete:CASCADE;" json:"mediums"`
	Genres  []tags.ArtGenre  `gorm:"many2many:artwork_genres;constraint:OnDelete:CASCADE;" json:"genres"`
	Artists []artists.Artist `gorm:"many2many:artwork_artists;constraint:OnDelete:CASCADE;" json:"artists"`

	Images []ArtworkImage `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;" json:"images"`
	Info   []ArtworkInfo  `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;" json:"-"`
}

type Option func(*Artwork)

func WithDesc(desc string) Option {
	return func(a *Artwork) {
		if desc != "" {
			a.Desc = &desc
		}
	}
}

// WithDateCreated records when the work itself was made, not when the row was written.
func WithDateCreated(d time.Time) Option {
	return func(a *Artwork) {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		a.DateCreated = &day
	}
}

func WithMainImage(imageID uint) Option {
	return func(a *Artwork) { a.MainImageID = &imageID }
}

func WithMediums(m ...tags.ArtMedium) Option {
	return func(a *Artwork) { a.Mediums = append(a.Mediums, m...) }
}

func WithGenres(g ...tags.ArtGenre) Option {
	return func(a *Artwork) { a.Genres = append(a.Genres, g...) }
}

func WithArtists(p ...artists.Artist) Option {
	return func(a *Artwork) { a.Artists = append(a.Artists, p...) }
}

func NewArtwork(title string, opts ...Option) (*Artwork, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	a := &Artwork{Title: title}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func validateTitle(title string) error {
	if err := validate.Required("title", title); err != nil {
		return err
	}
	return validate.MaxLen("title", title, TitleMaxLen)
}

func (a Artwork) String() string {
	return a.Title
}

func (a Artwork) SerialKey() string {
	return fmt.Sprintf("artwork:%d", a.ID)
}

func (a Artwork) Ref() serial.Dict {
	return serial.Dict{"id": a.ID}
}

func (a Artwork) ToDict(enc *serial.Encoder) serial.Dict {
	var mainImgID, mainImg any
	if a.MainImageID != nil {
		mainImgID = *a.MainImageID
	}
	if a.MainImage != nil {
		mainImg = enc.Encode(a.MainImage)
	}

	return serial.Dict{
		"id":           a.ID,
		"title":        a.Title,
		"desc":         serial.String(a.Desc),
		"date_created": serial.Date(a.DateCreated),
		"date_updated": serial.Time(a.DateUpdated),
		"main_img_id":  mainImgID,
		"main_img":     mainImg,
		"mediums":      serial.Slice(enc, a.Mediums),
		"genres":       serial.Slice(enc, a.Genres),
		"artists":      serial.Slice(enc, a.Artists),
		"images":       serial.Slice(enc, a.Images),
	}
}

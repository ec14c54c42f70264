package media

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"
)

var ErrImageNotFound = errors.New("image not found")

// Image is a stored file reference. Timestamps belong to the storage layer.
type Image struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Path string `gorm:"not null" json:"path"`

	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	DateUpdated time.Time `gorm:"autoUpdateTime" json:"date_updated"`
}

func NewImage(path string) (*Image, error) {
	path = strings.TrimSpace(path)
	if err := validate.Required("path", path); err != nil {
		return nil, err
	}
	return &Image{Path: path}, nil
}

func (img Image) SerialKey() string {
	return fmt.Sprintf("image:%d", img.ID)
}

func (img Image) Ref() serial.Dict {
	return serial.Dict{"id": img.ID}
}

func (img Image) ToDict(*serial.Encoder) serial.Dict {
	return serial.Dict{
		"id":           img.ID,
		"path":         img.Path,
		"date_created": serial.Time(img.DateCreated),
		"date_updated": serial.Time(img.DateUpdated),
	}
}

package artists

import (
	"fmt"
	"strings"

	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"
)

type Artist struct {
	ID   uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string  `gorm:"size:64;not null" json:"name"`
	Desc *string `gorm:"column:description;type:text" json:"desc"`
}

// NewArtist requires a name; an empty desc is stored as NULL.
func NewArtist(name, desc string) (*Artist, error) {
	name = strings.TrimSpace(name)
	if err := validate.Required("name", name); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("name", name, 64); err != nil {
		return nil, err
	}

	a := &Artist{Name: name}
	if desc != "" {
		a.Desc = &desc
	}
	return a, nil
}

func (a Artist) SerialKey() string {
	return fmt.Sprintf("artist:%d", a.ID)
}

func (a Artist) Ref() serial.Dict {
	return serial.Dict{"id": a.ID}
}

func (a Artist) ToDict(*serial.Encoder) serial.Dict {
	return serial.Dict{
		"id":   a.ID,
		"name": a.Name,
		"desc": serial.String(a.Desc),
	}
}

package tags

import (
	"errors"
	"strings"

	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"
)

const CodeMaxLen = 10

// ErrCodeConflict is returned when a tag code is already taken by another tag of the same kind.
var ErrCodeConflict = errors.New("tag code already exists")

// ArtTag is the shared shape of mediums and genres: a short code keyed lookup row.
type ArtTag struct {
	Code string  `gorm:"primaryKey;size:10" json:"code"`
	Name string  `gorm:"size:80;not null" json:"name"`
	Desc *string `gorm:"column:description;type:text" json:"desc"`
}

type Option func(*ArtTag)

func WithCode(code string) Option {
	return func(t *ArtTag) { t.Code = strings.TrimSpace(code) }
}

func WithDesc(desc string) Option {
	return func(t *ArtTag) {
		if desc != "" {
			t.Desc = &desc
		}
	}
}

// DeriveCode cuts name to CodeMaxLen runes and swaps spaces for hyphens.
// "oil paint" -> "oil-paint"
func DeriveCode(name string) string {
	r := []rune(strings.TrimSpace(name))
	if len(r) > CodeMaxLen {
		r = r[:CodeMaxLen]
	}
	return strings.ReplaceAll(string(r), " ", "-")
}

func newTag(name string, opts []Option) (ArtTag, error) {
	t := ArtTag{Name: strings.TrimSpace(name)}
	if err := validate.Required("name", t.Name); err != nil {
		return ArtTag{}, err
	}
	if err := validate.MaxLen("name", t.Name, 80); err != nil {
		return ArtTag{}, err
	}
	for _, opt := range opts {
		opt(&t)
	}
	if t.Code == "" {
		t.Code = DeriveCode(t.Name)
	}
	if err := validate.MaxLen("code", t.Code, CodeMaxLen); err != nil {
		return ArtTag{}, err
	}
	return t, nil
}

func (t ArtTag) String() string {
	return t.Name
}

func (t ArtTag) Ref() serial.Dict {
	return serial.Dict{"code": t.Code}
}

func (t ArtTag) ToDict(*serial.Encoder) serial.Dict {
	return serial.Dict{
		"code": t.Code,
		"name": t.Name,
		"desc": serial.String(t.Desc),
	}
}

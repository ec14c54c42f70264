package tags

import (
	"fmt"
	"testing"

	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCode(t *testing.T) {
	cases := map[string]string{
		"oil paint":              "oil-paint",
		"pastels":                "pastels",
		"watercolour on paper":   "watercolou",
		"  charcoal  ":           "charcoal",
		"ink and wash drawing":   "ink-and-wa",
		"gouache ét aquarelle":   "gouache-ét",
		"mixed media collage 01": "mixed-medi",
	}
	for name, want := range cases {
		assert.Equal(t, want, DeriveCode(name), name)
	}
}

func TestNewArtMedium_DerivesCode(t *testing.T) {
	m, err := NewArtMedium("oil paint")
	require.NoError(t, err)

	assert.Equal(t, "oil-paint", m.Code)
	assert.Equal(t, "oil paint", m.Name)
	assert.Nil(t, m.Desc)
}

func TestNewArtMedium_ExplicitCodeWins(t *testing.T) {
	m, err := NewArtMedium("pastels", WithCode("past"))
	require.NoError(t, err)
	assert.Equal(t, "past", m.Code)
}

func TestNewArtGenre_Desc(t *testing.T) {
	g, err := NewArtGenre("still life", WithDesc("arrangements of objects"))
	require.NoError(t, err)

	assert.Equal(t, "still-life", g.Code)
	require.NotNil(t, g.Desc)
	assert.Equal(t, "arrangements of objects", *g.Desc)
}

func TestNewTag_Validation(t *testing.T) {
	_, err := NewArtMedium("")
	assert.ErrorIs(t, err, validate.ErrMissingField)

	_, err = NewArtGenre("impressionism", WithCode("impressionism"))
	assert.ErrorIs(t, err, validate.ErrTooLong)
}

func TestTag_String(t *testing.T) {
	m, err := NewArtMedium("oil paint")
	require.NoError(t, err)
	assert.Equal(t, "oil paint", fmt.Sprint(m))
}

func TestTag_ToDict(t *testing.T) {
	m, err := NewArtMedium("tempera", WithDesc("egg based"))
	require.NoError(t, err)

	out := serial.ToDict(m)
	assert.Equal(t, serial.Dict{"code": "tempera", "name": "tempera", "desc": "egg based"}, out)
}

func TestTag_SerialKeysDifferByKind(t *testing.T) {
	m, _ := NewArtMedium("portrait")
	g, _ := NewArtGenre("portrait")
	assert.NotEqual(t, m.SerialKey(), g.SerialKey())
}

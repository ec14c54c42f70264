package artists

import (
	"testing"

	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtist(t *testing.T) {
	a, err := NewArtist("Berthe Morisot", "")
	require.NoError(t, err)
	assert.Equal(t, "Berthe Morisot", a.Name)
	assert.Nil(t, a.Desc)

	_, err = NewArtist(" ", "bio")
	assert.ErrorIs(t, err, validate.ErrMissingField)
}

func TestArtist_ToDict(t *testing.T) {
	a, err := NewArtist("Hilma af Klint", "Swedish painter")
	require.NoError(t, err)
	a.ID = 7

	assert.Equal(t, serial.Dict{
		"id":   uint(7),
		"name": "Hilma af Klint",
		"desc": "Swedish painter",
	}, serial.ToDict(a))
}

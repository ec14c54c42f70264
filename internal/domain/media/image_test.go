package media

import (
	"testing"
	"time"

	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage(t *testing.T) {
	img, err := NewImage(" uploads/starry-night.jpg ")
	require.NoError(t, err)
	assert.Equal(t, "uploads/starry-night.jpg", img.Path)

	_, err = NewImage("")
	assert.ErrorIs(t, err, validate.ErrMissingField)
}

func TestImage_ToDict(t *testing.T) {
	created := time.Date(2023, 11, 2, 8, 30, 0, 0, time.UTC)
	img := Image{ID: 3, Path: "a.png", DateCreated: created}

	out := serial.ToDict(img)

	assert.Equal(t, uint(3), out["id"])
	assert.Equal(t, "a.png", out["path"])
	assert.Equal(t, "2023-11-02T08:30:00Z", out["date_created"])
	assert.Nil(t, out["date_updated"])
}

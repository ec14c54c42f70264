package works

import (
	"encoding/json"
	"testing"
	"time"

	"art-catalog/internal/domain/artists"
	"art-catalog/internal/domain/media"
	"art-catalog/internal/domain/serial"
	"art-catalog/internal/domain/tags"
	"art-catalog/internal/domain/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMedium(t *testing.T, name string) tags.ArtMedium {
	t.Helper()
	m, err := tags.NewArtMedium(name)
	require.NoError(t, err)
	return *m
}

func sampleArtwork(t *testing.T) *Artwork {
	t.Helper()

	a, err := NewArtwork("Starry Night",
		WithDesc("View from the asylum window"),
		WithDateCreated(time.Date(1889, 6, 18, 15, 0, 0, 0, time.UTC)),
		WithMainImage(5),
		WithMediums(mustMedium(t, "oil paint"), mustMedium(t, "canvas")),
		WithArtists(artists.Artist{ID: 9, Name: "Vincent van Gogh"}),
	)
	require.NoError(t, err)

	a.ID = 42
	a.DateUpdated = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a.MainImage = &media.Image{ID: 5, Path: "img/starry.jpg"}
	return a
}

func TestNewArtwork(t *testing.T) {
	a, err := NewArtwork("  Untitled ")
	require.NoError(t, err)

	assert.Equal(t, "Untitled", a.Title)
	assert.Nil(t, a.Desc)
	assert.Nil(t, a.DateCreated)
	assert.Nil(t, a.MainImageID)
	assert.Equal(t, "Untitled", a.String())
}

func TestNewArtwork_RequiresTitle(t *testing.T) {
	_, err := NewArtwork("")
	assert.ErrorIs(t, err, validate.ErrMissingField)

	long := make([]byte, TitleMaxLen+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = NewArtwork(string(long))
	assert.ErrorIs(t, err, validate.ErrTooLong)
}

func TestWithDateCreated_TruncatesToDay(t *testing.T) {
	a, err := NewArtwork("Water Lilies", WithDateCreated(time.Date(1906, 5, 1, 23, 59, 0, 0, time.FixedZone("CET", 3600))))
	require.NoError(t, err)
	assert.Equal(t, "1906-05-01", a.DateCreated.Format(time.DateOnly))
}

func TestArtwork_ToDict_NestsRelations(t *testing.T) {
	out := serial.ToDict(sampleArtwork(t))

	assert.Equal(t, uint(42), out["id"])
	assert.Equal(t, "Starry Night", out["title"])
	assert.Equal(t, "1889-06-18", out["date_created"])
	assert.Equal(t, "2024-01-02T03:04:05Z", out["date_updated"])
	assert.Equal(t, uint(5), out["main_img_id"])

	mainImg, ok := out["main_img"].(serial.Dict)
	require.True(t, ok, "main_img should be a nested mapping")
	assert.Equal(t, "img/starry.jpg", mainImg["path"])

	mediums, ok := out["mediums"].([]serial.Dict)
	require.True(t, ok)
	require.Len(t, mediums, 2)
	assert.Equal(t, "oil-paint", mediums[0]["code"])
	assert.Equal(t, "canvas", mediums[1]["code"])

	assert.Equal(t, []serial.Dict{}, out["genres"])
	assert.Equal(t, []serial.Dict{}, out["images"])
}

func TestArtwork_ToDict_NoMainImage(t *testing.T) {
	a, err := NewArtwork("Sketch")
	require.NoError(t, err)

	out := serial.ToDict(a)
	assert.Nil(t, out["main_img"])
	assert.Nil(t, out["main_img_id"])
	assert.Nil(t, out["desc"])
	assert.Nil(t, out["date_created"])
}

func TestArtwork_ToDict_BreaksImageCycle(t *testing.T) {
	a := sampleArtwork(t)
	link, err := NewArtworkImage(a.ID, 5, WithCaption("detail"))
	require.NoError(t, err)
	link.ID = 11
	link.Image = a.MainImage
	link.Artwork = a
	a.Images = []ArtworkImage{*link}

	out := serial.ToDict(a)

	images := out["images"].([]serial.Dict)
	require.Len(t, images, 1)
	assert.Equal(t, "detail", images[0]["caption"])
	assert.Equal(t, serial.Dict{"id": uint(42)}, images[0]["artwork"])

	_, err = json.Marshal(out)
	assert.NoError(t, err)
}

func TestArtwork_JSONRoundTrip(t *testing.T) {
	a := sampleArtwork(t)
	a.Genres = []tags.ArtGenre{{ArtTag: tags.ArtTag{Code: "landscape", Name: "landscape"}}}

	raw, err := json.Marshal(serial.ToDict(a))
	require.NoError(t, err)

	var back struct {
		ID      uint    `json:"id"`
		Title   string  `json:"title"`
		Desc    *string `json:"desc"`
		MainImg struct {
			ID uint `json:"id"`
		} `json:"main_img"`
		Mediums []struct {
			Code string `json:"code"`
		} `json:"mediums"`
		Genres []struct {
			Code string `json:"code"`
		} `json:"genres"`
		Artists []struct {
			ID uint `json:"id"`
		} `json:"artists"`
	}
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.Equal(t, a.ID, back.ID)
	assert.Equal(t, a.Title, back.Title)
	require.NotNil(t, back.Desc)
	assert.Equal(t, *a.Desc, *back.Desc)
	assert.Equal(t, a.MainImage.ID, back.MainImg.ID)
	require.Len(t, back.Mediums, 2)
	assert.Equal(t, a.Mediums[0].Code, back.Mediums[0].Code)
	assert.Equal(t, a.Mediums[1].Code, back.Mediums[1].Code)
	require.Len(t, back.Genres, 1)
	assert.Equal(t, "landscape", back.Genres[0].Code)
	require.Len(t, back.Artists, 1)
	assert.Equal(t, uint(9), back.Artists[0].ID)
}

func TestArtworkImage_Validation(t *testing.T) {
	_, err := NewArtworkImage(0, 1)
	assert.ErrorIs(t, err, validate.ErrMissingField)

	_, err = NewArtworkImage(1, 0)
	assert.ErrorIs(t, err, validate.ErrMissingField)

	ai, err := NewArtworkImage(1, 2, WithTitle("Recto"))
	require.NoError(t, err)
	assert.Equal(t, "image", ai.Name)
	assert.Nil(t, ai.Caption)
	require.NotNil(t, ai.Title)
	assert.Equal(t, "Recto", *ai.Title)
}

func TestArtworkInfo(t *testing.T) {
	info, err := NewArtworkInfo(4, "dimensions", "73.7 x 92.1 cm")
	require.NoError(t, err)
	info.ID = 1

	assert.Equal(t, serial.Dict{
		"id":         uint(1),
		"name":       "dimensions",
		"artwork_id": uint(4),
		"value":      "73.7 x 92.1 cm",
	}, serial.ToDict(info))

	_, err = NewArtworkInfo(4, "", "x")
	assert.ErrorIs(t, err, validate.ErrMissingField)
	_, err = NewArtworkInfo(0, "dimensions", "x")
	assert.ErrorIs(t, err, validate.ErrMissingField)
}

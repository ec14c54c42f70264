package artists

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	da "art-catalog/internal/domain/artists"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	list []da.Artist
}

func (m *memStore) ListArtists(context.Context) ([]da.Artist, error) { return m.list, nil }

func (m *memStore) CreateArtist(_ context.Context, a *da.Artist) error {
	a.ID = uint(len(m.list) + 1)
	m.list = append(m.list, *a)
	return nil
}

func TestArtistRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&memStore{}, zap.NewNop())
	r := gin.New()
	r.GET("/artists", h.ListArtists)
	r.POST("/artists", h.CreateArtist)

	req := httptest.NewRequest(http.MethodPost, "/artists", strings.NewReader(`{"name": "Vincent van Gogh"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id": 1, "name": "Vincent van Gogh", "desc": null}`, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/artists", strings.NewReader(`{"name": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/artists", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"artists": [{"id": 1, "name": "Vincent van Gogh", "desc": null}]}`, w.Body.String())
}

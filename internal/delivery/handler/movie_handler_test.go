package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdodolh14141/Website-Movies/internal/catalog"
)

const catalogListBody = `{
  "status": "ok",
  "data": {
    "movie_count": 1,
    "limit": 20,
    "page_number": 1,
    "movies": [{"id": 10, "title": "First", "year": 2001, "rating": 7.5}]
  }
}`

const catalogDetailsBody = `{
  "status": "ok",
  "data": {"movie": {"id": 10, "title": "First", "year": 2001, "rating": 7.5}}
}`

func newMovieHandler(upstream http.HandlerFunc) (*MovieHandler, *httptest.Server) {
	server := httptest.NewServer(upstream)
	client := catalog.NewClient(server.URL, time.Second)
	return NewMovieHandler(client, catalog.NewRotator(time.Minute)), server
}

func TestMovieList(t *testing.T) {
	h, server := newMovieHandler(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogListBody))
	})
	defer server.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/movies?page=1&limit=20", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Len(t, data["movies"], 1)

	// The rotator picks up the freshly fetched window.
	assert.Len(t, h.rotator.Featured(1), 1)
}

func TestMovieList_UpstreamDown(t *testing.T) {
	h, server := newMovieHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["success"])
}

func TestMovieDetail(t *testing.T) {
	h, server := newMovieHandler(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogDetailsBody))
	})
	defer server.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues("10")
	require.NoError(t, h.Detail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "First", data["title"])
}

func TestMovieDetail_InvalidId(t *testing.T) {
	h, server := newMovieHandler(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for an invalid id")
	})
	defer server.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/movies/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Detail(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

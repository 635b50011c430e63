package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{
  "status": "ok",
  "status_message": "Query was successful",
  "data": {
    "movie_count": 2,
    "limit": 20,
    "page_number": 1,
    "movies": [
      {"id": 10, "title": "First", "year": 2001, "rating": 7.5, "medium_cover_image": "http://img/1.jpg"},
      {"id": 11, "title": "Second", "year": 2002, "rating": 6.1, "medium_cover_image": "http://img/2.jpg"}
    ]
  }
}`

const detailsBody = `{
  "status": "ok",
  "status_message": "Query was successful",
  "data": {
    "movie": {
      "id": 10, "title": "First", "year": 2001, "rating": 7.5,
      "runtime": 120, "genres": ["Action"], "description_full": "A movie.",
      "large_cover_image": "http://img/1-large.jpg"
    }
  }
}`

func TestClient_ListMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list_movies.json", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(listBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	list, err := client.ListMovies(context.Background(), 3, 20)
	require.NoError(t, err)

	assert.Equal(t, 2, list.MovieCount)
	require.Len(t, list.Movies, 2)
	assert.Equal(t, "First", list.Movies[0].Title)
	assert.Equal(t, 7.5, list.Movies[0].Rating)
}

func TestClient_ListMovies_ClampsPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(listBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.ListMovies(context.Background(), 0, 500)
	require.NoError(t, err)
}

func TestClient_MovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie_details.json", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("movie_id"))
		w.Write([]byte(detailsBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	movie, err := client.MovieDetails(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "First", movie.Title)
	assert.Equal(t, []string{"Action"}, movie.Genres)
	assert.Equal(t, 120, movie.Runtime)
}

func TestClient_MovieDetails_UnknownId(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// YTS answers "ok" with an empty movie for unknown ids.
		w.Write([]byte(`{"status": "ok", "data": {"movie": {"id": 0}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.MovieDetails(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_UpstreamFailures(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).ListMovies(context.Background(), 1, 20)
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("error status in body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "error", "status_message": "bad request"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).ListMovies(context.Background(), 1, 20)
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := NewClient(server.URL, time.Second).ListMovies(context.Background(), 1, 20)
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

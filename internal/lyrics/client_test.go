package lyrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.baseURL = srv.URL
	return c, srv
}

func TestClient_Get(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "Radiohead", r.URL.Query().Get("artist_name"))
		assert.Equal(t, "Karma Police", r.URL.Query().Get("track_name"))
		assert.Equal(t, "262", r.URL.Query().Get("duration"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 1,
			"trackName": "Karma Police",
			"artistName": "Radiohead",
			"albumName": "OK Computer",
			"duration": 262.0,
			"instrumental": false,
			"plainLyrics": "Karma police\narrest this man"
		}`))
	})
	defer srv.Close()

	result, err := c.Get(context.Background(), "Radiohead", "Karma Police", 262*time.Second)
	assert.NilError(t, err)
	assert.Equal(t, "Karma Police", result.TrackName)
	assert.Assert(t, result.HasLyrics())
}

func TestClient_GetNotFound(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := c.Get(context.Background(), "Nobody", "Nothing", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_GetServerError(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := c.Get(context.Background(), "a", "b", 0)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestClient_Search(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "karma", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "trackName": "Karma Police"}, {"id": 2, "trackName": "Karma Chameleon"}]`))
	})
	defer srv.Close()

	results, err := c.Search(context.Background(), "karma")
	assert.NilError(t, err)
	assert.Equal(t, 2, len(results))
}

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "line one\r\nline two\r\n", "line one\nline two"},
		{"trailing spaces", "line one  \nline two\t", "line one\nline two"},
		{"collapses blank runs", "verse\n\n\n\nchorus", "verse\n\nchorus"},
		{"strips outer blanks", "\n\nverse\n\n", "verse"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clean(tc.in))
		})
	}
}

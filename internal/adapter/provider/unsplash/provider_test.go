package unsplash

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const photoJSON = `{
	"id": "abc123",
	"urls": {"regular": "https://images.unsplash.com/abc123?w=1080", "full": "https://images.unsplash.com/abc123"},
	"alt_description": "a cat on a laptop",
	"user": {"name": "Ann Author", "username": "ann", "links": {"html": "https://unsplash.com/@ann"}},
	"links": {"html": "https://unsplash.com/photos/abc123"}
}`

func TestProvider_RandomPhoto(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/random", r.URL.Path)
		assert.Equal(t, "cats", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		w.Write([]byte(photoJSON))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", testLogger())

	photo, err := p.RandomPhoto(context.Background(), "cats")
	require.NoError(t, err)

	assert.Equal(t, "abc123", photo.ID)
	assert.Equal(t, "https://images.unsplash.com/abc123?w=1080", photo.URL)
	assert.Equal(t, "Ann Author", photo.AuthorName)
	assert.Equal(t, "ann", photo.AuthorUsername)
	assert.Equal(t, "https://unsplash.com/@ann", photo.AuthorURL)
	assert.Equal(t, "https://unsplash.com/photos/abc123", photo.PhotoURL)
}

func TestProvider_RandomPhoto_NotConfigured(t *testing.T) {
	t.Parallel()

	p := NewProviderWithURL("http://unused", "", testLogger())

	_, err := p.RandomPhoto(context.Background(), "cats")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestProvider_RandomPhoto_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", testLogger())

	_, err := p.RandomPhoto(context.Background(), "cats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestProvider_RandomPhoto_IncompleteRecord(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id": "abc123"}`))
	}))
	defer srv.Close()

	p := NewProviderWithURL(srv.URL, "test-key", testLogger())

	_, err := p.RandomPhoto(context.Background(), "cats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

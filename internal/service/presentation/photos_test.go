package presentation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/karaoke-backend/internal/adapter/provider/unsplash"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/provider"
)

// sequencePhotos returns the given results in order, then keeps returning
// the last one.
func sequencePhotos(results ...*provider.Photo) *photoMock {
	i := 0
	return &photoMock{
		RandomPhotoFunc: func(_ context.Context, _ string) (*provider.Photo, error) {
			r := results[i]
			if i < len(results)-1 {
				i++
			}
			return r, nil
		},
	}
}

func TestResolvePhoto_DuplicateIDRetries(t *testing.T) {
	t.Parallel()

	photos := sequencePhotos(
		&provider.Photo{ID: "dup", URL: "u1"},
		&provider.Photo{ID: "fresh", URL: "u2"},
	)
	svc := NewService(testLogger(), &llmMock{}, photos, &storeMock{}, Options{})

	got := svc.resolvePhoto(context.Background(), "cats", []string{"dup"})
	assert.Equal(t, "fresh", got.ID)
}

func TestResolvePhoto_ExhaustedFallsBack(t *testing.T) {
	t.Parallel()

	calls := 0
	photos := &photoMock{
		RandomPhotoFunc: func(_ context.Context, _ string) (*provider.Photo, error) {
			calls++
			return nil, errors.New("rate limited")
		},
	}
	svc := NewService(testLogger(), &llmMock{}, photos, &storeMock{}, Options{PhotoMaxRetries: 3})

	got := svc.resolvePhoto(context.Background(), "cats", nil)
	require.NotNil(t, got)
	assert.Equal(t, 3, calls)
	assert.True(t, strings.HasPrefix(got.ID, "fallback-"), "got ID %q", got.ID)
	assert.NotEmpty(t, got.URL)
	assert.NotEmpty(t, got.AuthorName)
}

func TestResolvePhoto_NotConfiguredSkipsRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	photos := &photoMock{
		RandomPhotoFunc: func(_ context.Context, _ string) (*provider.Photo, error) {
			calls++
			return nil, unsplash.ErrNotConfigured
		},
	}
	svc := NewService(testLogger(), &llmMock{}, photos, &storeMock{}, Options{PhotoMaxRetries: 5})

	got := svc.resolvePhoto(context.Background(), "cats", nil)
	require.NotNil(t, got)
	assert.Equal(t, 1, calls)
	assert.True(t, strings.HasPrefix(got.ID, "fallback-"))
}

func TestResolvePhoto_FallbackIDsAreUnique(t *testing.T) {
	t.Parallel()

	photos := &photoMock{
		RandomPhotoFunc: func(_ context.Context, _ string) (*provider.Photo, error) {
			return nil, errors.New("down")
		},
	}
	svc := NewService(testLogger(), &llmMock{}, photos, &storeMock{}, Options{PhotoMaxRetries: 1})

	a := svc.resolvePhoto(context.Background(), "x", nil)
	b := svc.resolvePhoto(context.Background(), "y", []string{a.ID})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestResolveSpecs_DeduplicatesAcrossRequest(t *testing.T) {
	t.Parallel()

	photos := sequencePhotos(
		&provider.Photo{ID: "p1"},
		&provider.Photo{ID: "p1"}, // collision with the first slide
		&provider.Photo{ID: "p2"},
	)
	svc := NewService(testLogger(), &llmMock{}, photos, &storeMock{}, Options{})

	specs := []domain.SlideSpec{
		{Type: domain.SlideTypePhoto, PhotoSearchTerm: "a"},
		{Type: domain.SlideTypeText, Text: "interlude"},
		{Type: domain.SlideTypePhoto, PhotoSearchTerm: "b"},
	}

	resolved := svc.resolveSpecs(context.Background(), specs)
	require.Len(t, resolved, 3)

	assert.Equal(t, "p1", resolved[0].photo.ID)
	assert.Nil(t, resolved[1].photo)
	assert.Equal(t, "p2", resolved[2].photo.ID)
}

package presentation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/adapter/provider/unsplash"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/provider"
)

// fallbackPhotos are provider-independent stock landscapes served when the
// photo provider is unavailable or exhausted. IDs are stamped fresh on every
// use so the de-duplication contract holds even for fallbacks.
var fallbackPhotos = []provider.Photo{
	{
		URL:            "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1920&h=1080&fit=crop",
		AuthorName:     "Unsplash",
		AuthorUsername: "unsplash",
		AuthorURL:      "https://unsplash.com/@unsplash",
		PhotoURL:       "https://unsplash.com/photos/mountain-range",
	},
	{
		URL:            "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=1920&h=1080&fit=crop",
		AuthorName:     "Unsplash",
		AuthorUsername: "unsplash",
		AuthorURL:      "https://unsplash.com/@unsplash",
		PhotoURL:       "https://unsplash.com/photos/forest",
	},
	{
		URL:            "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=1920&h=1080&fit=crop",
		AuthorName:     "Unsplash",
		AuthorUsername: "unsplash",
		AuthorURL:      "https://unsplash.com/@unsplash",
		PhotoURL:       "https://unsplash.com/photos/nature",
	},
	{
		URL:            "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?w=1920&h=1080&fit=crop",
		AuthorName:     "Unsplash",
		AuthorUsername: "unsplash",
		AuthorURL:      "https://unsplash.com/@unsplash",
		PhotoURL:       "https://unsplash.com/photos/landscape",
	},
	{
		URL:            "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?w=1920&h=1080&fit=crop",
		AuthorName:     "Unsplash",
		AuthorUsername: "unsplash",
		AuthorURL:      "https://unsplash.com/@unsplash",
		PhotoURL:       "https://unsplash.com/photos/sunset",
	},
}

// resolvedSpec pairs a valid slide spec with its resolved photo (nil for
// non-photo specs).
type resolvedSpec struct {
	spec  domain.SlideSpec
	photo *provider.Photo
}

// resolveSpecs resolves every photo spec to a concrete image. Resolutions
// run sequentially on purpose: each one must see the photo IDs consumed by
// the ones before it, otherwise de-duplication only holds pairwise.
func (s *Service) resolveSpecs(ctx context.Context, specs []domain.SlideSpec) []resolvedSpec {
	resolved := make([]resolvedSpec, 0, len(specs))
	var usedIDs []string

	for _, spec := range specs {
		if spec.Type != domain.SlideTypePhoto {
			resolved = append(resolved, resolvedSpec{spec: spec})
			continue
		}
		photo := s.resolvePhoto(ctx, spec.PhotoSearchTerm, usedIDs)
		usedIDs = append(usedIDs, photo.ID)
		resolved = append(resolved, resolvedSpec{spec: spec, photo: photo})
	}

	return resolved
}

// resolvePhoto resolves one search term against the provider. It never
// fails: one missing photo must not abort the whole generation.
//
//   - unconfigured provider → immediate synthetic fallback
//   - duplicate photo ID → collision, consumes an attempt, retries
//   - other errors → consume attempts; exhausted budget falls back
func (s *Service) resolvePhoto(ctx context.Context, searchTerm string, usedIDs []string) *provider.Photo {
	var lastErr error

	for attempt := 0; attempt < s.opts.PhotoMaxRetries; attempt++ {
		photo, err := s.photos.RandomPhoto(ctx, searchTerm)
		if err != nil {
			if errors.Is(err, unsplash.ErrNotConfigured) {
				return s.fallbackPhoto()
			}
			lastErr = err
			continue
		}

		if slices.Contains(usedIDs, photo.ID) {
			s.log.DebugContext(ctx, "duplicate photo, retrying",
				slog.String("photo_id", photo.ID),
				slog.Int("attempt", attempt+1),
			)
			continue
		}

		return photo
	}

	if lastErr != nil {
		s.log.WarnContext(ctx, "photo resolution exhausted, using fallback",
			slog.String("search_term", searchTerm),
			slog.String("error", lastErr.Error()),
		)
	}
	return s.fallbackPhoto()
}

// fallbackPhoto returns a random entry from the static set with a freshly
// stamped synthetic ID, so fallbacks never collide with each other or with
// real provider IDs.
func (s *Service) fallbackPhoto() *provider.Photo {
	photo := fallbackPhotos[s.intn(len(fallbackPhotos))]
	photo.ID = syntheticPhotoID()
	return &photo
}

func syntheticPhotoID() string {
	return fmt.Sprintf("fallback-%d-%s", time.Now().UnixNano(), uuid.NewString()[:8])
}

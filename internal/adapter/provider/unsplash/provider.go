// Package unsplash fetches random photos from the Unsplash API.
// A missing access key is a first-class degraded mode, reported via
// ErrNotConfigured so callers can fall back to local images.
package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/karaoke-backend/internal/provider"
)

const defaultBaseURL = "https://api.unsplash.com"

// ErrNotConfigured is returned when no access key is set. Callers treat it
// as "provider permanently unavailable" and switch to fallback photos
// without consuming retry attempts.
var ErrNotConfigured = errors.New("unsplash: access key not configured")

// Provider fetches photos from the Unsplash random-photo endpoint.
type Provider struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Unsplash API URL.
// An empty accessKey is allowed; every call will then return ErrNotConfigured.
func NewProvider(accessKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    defaultBaseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "unsplash"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, accessKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "unsplash"),
	}
}

// RandomPhoto fetches one random landscape photo matching the query.
// It performs a single attempt; retry and de-duplication policy belong to
// the caller, which knows which photo IDs are already in use.
func (p *Provider) RandomPhoto(ctx context.Context, query string) (*provider.Photo, error) {
	if p.accessKey == "" {
		return nil, ErrNotConfigured
	}

	reqURL := fmt.Sprintf("%s/photos/random?query=%s&orientation=landscape", p.baseURL, url.QueryEscape(query))

	p.log.DebugContext(ctx, "unsplash request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash: create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.WarnContext(ctx, "unsplash request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("unsplash: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unsplash: read body: %w", err)
	}

	var photo apiPhoto
	if err := json.Unmarshal(body, &photo); err != nil {
		return nil, fmt.Errorf("unsplash: decode json: %w", err)
	}
	if photo.ID == "" || photo.URLs.Regular == "" {
		return nil, fmt.Errorf("unsplash: incomplete photo record")
	}

	p.log.DebugContext(ctx, "unsplash response",
		slog.String("query", query),
		slog.String("photo_id", photo.ID),
		slog.String("author", photo.User.Username),
	)

	return mapAPIPhoto(photo), nil
}

func mapAPIPhoto(ph apiPhoto) *provider.Photo {
	return &provider.Photo{
		ID:             ph.ID,
		URL:            ph.URLs.Regular,
		AuthorName:     ph.User.Name,
		AuthorUsername: ph.User.Username,
		AuthorURL:      ph.User.Links.HTML,
		PhotoURL:       ph.Links.HTML,
	}
}

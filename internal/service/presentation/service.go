// Package presentation orchestrates the generation pipeline: moderation,
// title/bio/structure generation, photo resolution, slide assembly, and
// persistence, plus read access to stored presentations.
package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/provider"
)

type llmClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteJSON(ctx context.Context, system, user string, out any) error
}

type photoProvider interface {
	RandomPhoto(ctx context.Context, query string) (*provider.Photo, error)
}

type presentationStore interface {
	Create(ctx context.Context, draft domain.PresentationDraft) (*domain.Presentation, error)
	GetByID(ctx context.Context, id string) (*domain.Presentation, error)
}

// Options tunes pipeline behavior.
type Options struct {
	// PhotoMaxRetries bounds attempts per photo slide (both hard failures
	// and duplicate-ID collisions consume attempts).
	PhotoMaxRetries int
	// ShuffleSlides randomizes the order of content slides. Boundary slides
	// (title, bio, thank-you) never move.
	ShuffleSlides bool
	// CacheTTL controls how long fetched presentations are served from
	// memory. Zero disables the cache.
	CacheTTL time.Duration
	// Rand seeds fallback-photo selection and shuffling. Nil gets a
	// time-seeded source.
	Rand *rand.Rand
}

// Service runs the presentation pipeline.
type Service struct {
	llm    llmClient
	photos photoProvider
	store  presentationStore
	opts   Options
	log    *slog.Logger

	cache *gocache.Cache

	// randMu serializes access to the injected rand source; photo
	// resolutions within one request are already sequential, but requests
	// are not.
	randMu sync.Mutex
	rand   *rand.Rand
}

// NewService creates the presentation Service.
func NewService(log *slog.Logger, llm llmClient, photos photoProvider, store presentationStore, opts Options) *Service {
	if opts.PhotoMaxRetries <= 0 {
		opts.PhotoMaxRetries = 5
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var cache *gocache.Cache
	if opts.CacheTTL > 0 {
		cache = gocache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	return &Service{
		llm:    llm,
		photos: photos,
		store:  store,
		opts:   opts,
		log:    log.With("service", "presentation"),
		cache:  cache,
		rand:   rng,
	}
}

// Generate runs the whole pipeline for one validated request and returns the
// persisted presentation. Only moderation rejection and title-generation
// failure abort the request; bio, structure and photo failures degrade to
// fallbacks.
func (s *Service) Generate(ctx context.Context, req *domain.KeywordRequest) (*domain.Presentation, error) {
	if err := s.moderate(ctx, req.Keywords, req.PresenterName); err != nil {
		return nil, err
	}

	// Title, bio and structure are independent; run them concurrently.
	// Title failure cancels the group; without a title there is nothing
	// worth assembling.
	var (
		title   string
		bioData bioResult
		specs   []domain.SlideSpec
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		title, err = s.generateTitle(gctx, req)
		return err
	})
	g.Go(func() error {
		bioData = s.generateBio(gctx, req)
		return nil
	})
	g.Go(func() error {
		specs = s.generateStructure(gctx, req)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Photo resolution is strictly sequential: each resolution must see the
	// IDs consumed by the ones before it, or de-duplication only holds
	// pairwise.
	resolved := s.resolveSpecs(ctx, specs)

	slides := s.assembleSlides(title, bioData, req.PresenterName, resolved)

	created, err := s.store.Create(ctx, domain.PresentationDraft{
		Title:         title,
		Keywords:      req.Keywords,
		PresenterName: req.PresenterName,
		Difficulty:    req.Difficulty,
		Language:      req.Language,
		Slides:        slides,
	})
	if err != nil {
		return nil, fmt.Errorf("store presentation: %w", err)
	}

	s.log.InfoContext(ctx, "presentation generated",
		slog.String("id", created.ID),
		slog.Int("slides", len(created.Slides)),
		slog.String("difficulty", req.Difficulty.String()),
	)

	return created, nil
}

// Get returns a stored presentation by its public ID. Reads are immutable
// replay, so results may be served from a short-TTL cache.
func (s *Service) Get(ctx context.Context, id string) (*domain.Presentation, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(id); ok {
			return v.(*domain.Presentation), nil
		}
	}

	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetDefault(id, p)
	}
	return p, nil
}

// intn returns a random int in [0, n) from the injected source.
func (s *Service) intn(n int) int {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rand.Intn(n)
}

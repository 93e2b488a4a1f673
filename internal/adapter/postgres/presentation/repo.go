// Package presentation implements the presentation store on PostgreSQL.
// Each presentation is one row; the ordered slide list is a single JSONB
// document, so reads replay exactly what was written at creation time.
package presentation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lithammer/shortuuid/v4"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Querier is the minimal pgx surface the repo needs. Satisfied by
// *pgxpool.Pool in production and pgxmock in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo provides presentation persistence backed by PostgreSQL.
type Repo struct {
	db Querier

	// newID and now are injectable for deterministic tests.
	newID func() string
	now   func() time.Time
}

// New creates a presentation repository.
func New(db Querier) *Repo {
	return &Repo{
		db:    db,
		newID: shortuuid.New,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Create persists a new presentation, assigning its ID and creation time
// exactly once. The returned aggregate is what GetByID will replay.
func (r *Repo) Create(ctx context.Context, params domain.PresentationDraft) (*domain.Presentation, error) {
	p := &domain.Presentation{
		ID:            r.newID(),
		Title:         params.Title,
		Keywords:      params.Keywords,
		PresenterName: params.PresenterName,
		Difficulty:    params.Difficulty,
		Language:      params.Language,
		Slides:        params.Slides,
		CreatedAt:     r.now(),
	}

	slidesJSON, err := json.Marshal(p.Slides)
	if err != nil {
		return nil, fmt.Errorf("create presentation: marshal slides: %w", err)
	}

	query, args, err := psql.Insert("presentations").
		Columns("id", "title", "keywords", "presenter_name", "difficulty", "language", "slides", "created_at").
		Values(p.ID, p.Title, p.Keywords, p.PresenterName, p.Difficulty.String(), p.Language.String(), slidesJSON, p.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create presentation: build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	return p, nil
}

// GetByID returns the presentation with the given public ID.
// Returns domain.ErrNotFound for unknown IDs; any other error is a
// storage-level failure.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	query, args, err := psql.Select("id", "title", "keywords", "presenter_name", "difficulty", "language", "slides", "created_at").
		From("presentations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get presentation: build query: %w", err)
	}

	var (
		p          domain.Presentation
		difficulty string
		language   string
		slidesJSON []byte
	)
	row := r.db.QueryRow(ctx, query, args...)
	if err := row.Scan(&p.ID, &p.Title, &p.Keywords, &p.PresenterName, &difficulty, &language, &slidesJSON, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("presentation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get presentation %s: %w", id, err)
	}

	if err := json.Unmarshal(slidesJSON, &p.Slides); err != nil {
		return nil, fmt.Errorf("get presentation %s: unmarshal slides: %w", id, err)
	}
	p.Difficulty = domain.Difficulty(difficulty)
	p.Language = domain.Language(language)

	return &p, nil
}

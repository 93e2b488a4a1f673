package presentation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBio_EmptyBioFallsBackAndWarns(t *testing.T) {
	t.Parallel()

	llm := &llmMock{
		CompleteJSONFunc: func(_ context.Context, system, _ string, out any) error {
			require.Equal(t, bioSystem, system)
			mustJSON(t, `{"bio": "", "facts": ["orphaned fact"]}`, out)
			return nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := NewService(logger, llm, &photoMock{}, &storeMock{}, Options{})

	got := svc.generateBio(context.Background(), testRequest())

	assert.Equal(t, "Alex Doe, Expert", got.Bio)
	assert.Empty(t, got.Facts)
	assert.Contains(t, buf.String(), "empty bio")
}

func TestGenerateBio_NilFactsBecomeEmptySlice(t *testing.T) {
	t.Parallel()

	llm := &llmMock{
		CompleteJSONFunc: func(_ context.Context, _, _ string, out any) error {
			mustJSON(t, `{"bio": "A fine career."}`, out)
			return nil
		},
	}
	svc := NewService(testLogger(), llm, &photoMock{}, &storeMock{}, Options{})

	got := svc.generateBio(context.Background(), testRequest())

	assert.Equal(t, "A fine career.", got.Bio)
	require.NotNil(t, got.Facts)
	assert.Empty(t, got.Facts)
}

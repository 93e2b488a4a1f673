package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// presentationService defines the minimal interface needed by PresentationHandler.
type presentationService interface {
	Generate(ctx context.Context, req *domain.KeywordRequest) (*domain.Presentation, error)
	Get(ctx context.Context, id string) (*domain.Presentation, error)
}

// PresentationHandler serves presentation REST endpoints.
type PresentationHandler struct {
	svc presentationService
	log *slog.Logger
}

// NewPresentationHandler creates a PresentationHandler.
func NewPresentationHandler(svc presentationService, logger *slog.Logger) *PresentationHandler {
	return &PresentationHandler{svc: svc, log: logger.With("handler", "presentation")}
}

type presentationResponse struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Keywords []string       `json:"keywords"`
	Slides   []domain.Slide `json:"slides"`
}

// Generate handles POST /api/generate-presentation.
func (h *PresentationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var in domain.KeywordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := domain.ParseKeywordRequest(in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	created, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPresentationResponse(created))
}

// Get handles GET /api/presentations/{id}.
func (h *PresentationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing presentation id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPresentationResponse(p))
}

func (h *PresentationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrModerated):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "presentation not found")
	case errors.Is(err, domain.ErrGeneration):
		h.log.ErrorContext(r.Context(), "generation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to generate presentation")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toPresentationResponse(p *domain.Presentation) presentationResponse {
	return presentationResponse{
		ID:       p.ID,
		Title:    p.Title,
		Keywords: p.Keywords,
		Slides:   p.Slides,
	}
}

package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const bioSystem = `You are writing a fictional expert biography for a comedy presentation. Invent an impressive-sounding but entirely made-up career for the presenter, loosely connected to the keywords. Respond ONLY with a JSON object: {"bio": "<one or two sentences>", "facts": ["<fun fact>", ...]}`

// bioResult is the parsed bio generation output.
type bioResult struct {
	Bio   string   `json:"bio"`
	Facts []string `json:"facts"`
}

// generateBio produces the presenter biography. A failed or malformed call
// degrades to a minimal deterministic stub instead of failing the pipeline;
// a missing bio is cosmetic.
func (s *Service) generateBio(ctx context.Context, req *domain.KeywordRequest) bioResult {
	user := fmt.Sprintf("Presenter: %s. Keywords: %s. Provide exactly %d fun facts. %s",
		req.PresenterName, strings.Join(req.Keywords, ", "), req.Difficulty.FactTarget(), promptContext(req))

	var out bioResult
	if err := s.llm.CompleteJSON(ctx, bioSystem, user, &out); err != nil || out.Bio == "" {
		if err != nil {
			s.log.WarnContext(ctx, "bio generation failed, using stub", slog.String("error", err.Error()))
		} else {
			s.log.WarnContext(ctx, "bio generation returned empty bio, using stub")
		}
		return bioResult{
			Bio:   fmt.Sprintf("%s, Expert", req.PresenterName),
			Facts: []string{},
		}
	}

	if out.Facts == nil {
		out.Facts = []string{}
	}
	return out
}

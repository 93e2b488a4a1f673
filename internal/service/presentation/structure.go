package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const structureSystem = `You are planning a comedy presentation ("presentation karaoke"). Produce a narrative arc of slides — an opening, an escalating middle, and a punchline before the end — NOT a random bag of slides.

Each slide is one of four types with these required fields:
- {"type": "photo", "photoSearchTerm": "<short stock-photo search phrase>"}
- {"type": "text", "text": "<punchy statement, at most 15 words>"}
- {"type": "quote", "quote": "<fake quote>", "quoteAuthor": "<invented name>", "quoteTitle": "<invented job title>"}
- {"type": "graph", "graphTitle": "<absurd metric>", "graphData": [{"label": "<short label>", "value": <number 10-100>}, ...]} with 5 to 7 data points

Mix the types. Respond ONLY with a JSON object: {"slides": [ ... ]}`

// structureResult is the parsed structure generation output.
type structureResult struct {
	Slides []domain.SlideSpec `json:"slides"`
}

// generateStructure produces the abstract slide plan. Any transport or parse
// failure degrades to an empty plan; the assembler still yields a minimal
// title/bio/thank-you presentation. Individually invalid specs are dropped;
// partial success beats total failure.
func (s *Service) generateStructure(ctx context.Context, req *domain.KeywordRequest) []domain.SlideSpec {
	user := fmt.Sprintf("Create exactly %d content slides about: %s. %s",
		req.SlideCount, strings.Join(req.Keywords, ", "), promptContext(req))

	var out structureResult
	if err := s.llm.CompleteJSON(ctx, structureSystem, user, &out); err != nil {
		s.log.WarnContext(ctx, "structure generation failed, continuing without content slides",
			slog.String("error", err.Error()),
		)
		return nil
	}

	valid := domain.FilterValidSpecs(out.Slides)
	if dropped := len(out.Slides) - len(valid); dropped > 0 {
		s.log.WarnContext(ctx, "dropped invalid slide specs", slog.Int("dropped", dropped))
	}

	// Never hand more specs downstream than were requested.
	if len(valid) > req.SlideCount {
		valid = valid[:req.SlideCount]
	}
	return valid
}

package presentation

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const titleSystem = `You are a creative presentation title generator. Create humorous, professional-sounding presentation titles that combine the given keywords in unexpected ways. The titles should sound like they could be from a corporate presentation or TED talk, but with a comedic twist. Respond with the title only, no quotes, no explanations.`

// generateTitle produces the presentation title. Failure here is fatal to
// the request (mapped to ErrGeneration): an untitled presentation is a
// visible defect, not a degraded one.
func (s *Service) generateTitle(ctx context.Context, req *domain.KeywordRequest) (string, error) {
	user := fmt.Sprintf("Create a presentation title using all of these keywords: %s. %s",
		strings.Join(req.Keywords, ", "), promptContext(req))

	title, err := s.llm.Complete(ctx, titleSystem, user)
	if err != nil {
		return "", fmt.Errorf("%w: title: %s", domain.ErrGeneration, err)
	}

	return strings.Trim(title, `"`), nil
}

package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const moderationSystem = `You are a content safety classifier for a comedy presentation generator.
Given keywords and a presenter name, decide whether they are acceptable input.
Reject hate speech, harassment of real people, sexual content, and calls to violence.
Absurd, silly or corporate-nonsense input is acceptable.
Respond ONLY with a JSON object: {"allowed": true|false, "reason": "<short neutral reason if rejected, else empty>"}`

type moderationVerdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// moderate submits keywords and presenter name to the content check. It runs
// exactly once per request, before any generation call, so rejected input
// never consumes generation quota.
//
// Policy on moderation transport failure: fail closed. The request is
// rejected with a generic reason; skipping the check silently would let
// unreviewed content through on every provider hiccup.
func (s *Service) moderate(ctx context.Context, keywords []string, presenterName string) error {
	user := fmt.Sprintf("Keywords: %s\nPresenter name: %s", strings.Join(keywords, ", "), presenterName)

	var verdict moderationVerdict
	if err := s.llm.CompleteJSON(ctx, moderationSystem, user, &verdict); err != nil {
		s.log.WarnContext(ctx, "moderation call failed, rejecting request",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: content check unavailable", domain.ErrModerated)
	}

	if !verdict.Allowed {
		s.log.InfoContext(ctx, "moderation rejected input")
		// The verdict reason stays in the logs; the user gets a generic
		// message so moderation signals are not leaked.
		return fmt.Errorf("%w: keywords or presenter name were not accepted", domain.ErrModerated)
	}

	return nil
}

package presentation

import (
	"fmt"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// toneInstruction maps difficulty to the absurdity register every generator
// shares. Language selects output wording only; it never changes what gets
// generated.
func toneInstruction(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return "Keep it plausible and professional with only a subtle comedic undertone."
	case domain.DifficultyMedium:
		return "Make it mildly absurd: it should sound almost like a real corporate presentation, but something is clearly off."
	default:
		return "Make it maximally absurd while keeping a straight corporate face. The weirder the better."
	}
}

func languageInstruction(l domain.Language) string {
	if l == domain.LanguageGerman {
		return "Write all output in German."
	}
	return "Write all output in English."
}

func promptContext(req *domain.KeywordRequest) string {
	return fmt.Sprintf("%s %s", toneInstruction(req.Difficulty), languageInstruction(req.Language))
}

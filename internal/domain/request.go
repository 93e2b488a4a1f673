package domain

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultSlideCount is used when the submission omits slideCount.
	DefaultSlideCount = 15
	// MaxSlideCount bounds runaway requests; generation cost scales linearly.
	MaxSlideCount = 30
)

// KeywordInput is the raw, untrusted generation submission.
type KeywordInput struct {
	Keyword1      string `json:"keyword1"`
	Keyword2      string `json:"keyword2"`
	Keyword3      string `json:"keyword3"`
	PresenterName string `json:"presenterName"`
	Difficulty    string `json:"difficulty"`
	Language      string `json:"language"`
	SlideCount    int    `json:"slideCount"`
}

// KeywordRequest is the canonical, validated generation input. Blank optional
// keywords are already dropped; the struct is immutable once built.
type KeywordRequest struct {
	Keywords      []string
	PresenterName string
	Difficulty    Difficulty
	Language      Language
	SlideCount    int
}

// ParseKeywordRequest normalizes and validates raw input. It returns a
// *ValidationError listing every violated constraint, never just the first.
func ParseKeywordRequest(in KeywordInput) (*KeywordRequest, error) {
	in.Keyword1 = strings.TrimSpace(in.Keyword1)
	in.Keyword2 = strings.TrimSpace(in.Keyword2)
	in.Keyword3 = strings.TrimSpace(in.Keyword3)
	in.PresenterName = strings.TrimSpace(in.PresenterName)

	if in.Language == "" {
		in.Language = LanguageEnglish.String()
	}
	if in.SlideCount == 0 {
		in.SlideCount = DefaultSlideCount
	}

	err := validation.ValidateStruct(&in,
		validation.Field(&in.Keyword1, validation.Required.Error("at least one keyword is required")),
		validation.Field(&in.PresenterName, validation.Required.Error("presenter name is required")),
		validation.Field(&in.Difficulty, validation.Required,
			validation.In(DifficultyEasy.String(), DifficultyMedium.String(), DifficultyHard.String()).
				Error("must be one of: easy, medium, hard")),
		validation.Field(&in.Language,
			validation.In(LanguageEnglish.String(), LanguageGerman.String()).
				Error("must be one of: english, german")),
		validation.Field(&in.SlideCount,
			validation.Min(1).Error("must be positive"),
			validation.Max(MaxSlideCount)),
	)
	if err != nil {
		return nil, toValidationError(err)
	}

	keywords := []string{in.Keyword1}
	for _, k := range []string{in.Keyword2, in.Keyword3} {
		if k != "" {
			keywords = append(keywords, k)
		}
	}

	return &KeywordRequest{
		Keywords:      keywords,
		PresenterName: in.PresenterName,
		Difficulty:    Difficulty(in.Difficulty),
		Language:      Language(in.Language),
		SlideCount:    in.SlideCount,
	}, nil
}

// toValidationError converts ozzo's field error map into a ValidationError,
// with fields sorted for stable messages.
func toValidationError(err error) error {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return NewValidationError("input", err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for f := range verrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldError{Field: jsonField(f), Message: verrs[f].Error()})
	}
	return NewValidationErrors(out)
}

// jsonField maps Go field names from ozzo back to their JSON form.
func jsonField(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

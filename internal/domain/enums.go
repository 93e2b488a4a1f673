package domain

// Difficulty controls how absurd the generated content is allowed to get.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// FactTarget returns how many presenter fun facts should be requested
// from the model for this difficulty.
func (d Difficulty) FactTarget() int {
	if d == DifficultyEasy {
		return 2
	}
	return 3
}

// Language selects the output language of generated content.
// It never changes what gets generated, only how it is worded.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageGerman  Language = "german"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageGerman:
		return true
	}
	return false
}

// SlideType discriminates the slide union. Title, bio and the closing
// text slide are assembled locally; photo, text, quote and graph slides
// originate from model-authored slide specs.
type SlideType string

const (
	SlideTypeTitle SlideType = "title"
	SlideTypeBio   SlideType = "bio"
	SlideTypePhoto SlideType = "photo"
	SlideTypeText  SlideType = "text"
	SlideTypeQuote SlideType = "quote"
	SlideTypeGraph SlideType = "graph"
)

func (s SlideType) String() string { return string(s) }

func (s SlideType) IsValid() bool {
	switch s {
	case SlideTypeTitle, SlideTypeBio, SlideTypePhoto, SlideTypeText, SlideTypeQuote, SlideTypeGraph:
		return true
	}
	return false
}

// IsContent reports whether the type may appear in a model-authored slide spec.
func (s SlideType) IsContent() bool {
	switch s {
	case SlideTypePhoto, SlideTypeText, SlideTypeQuote, SlideTypeGraph:
		return true
	}
	return false
}

package domain

import "time"

// ThankYouText is the content of the fixed closing slide.
const ThankYouText = "Thank You!"

// GraphPoint is one bar of a generated nonsense chart.
type GraphPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Slide is one renderable unit of a presentation. The Type field
// discriminates which of the optional fields are populated; Content always
// carries a human-readable summary (title text, search term, quote, ...).
type Slide struct {
	Type    SlideType `json:"type"`
	Content string    `json:"content"`

	// photo
	ImageURL            string `json:"imageUrl,omitempty"`
	PhotoAuthorName     string `json:"photoAuthorName,omitempty"`
	PhotoAuthorUsername string `json:"photoAuthorUsername,omitempty"`
	PhotoAuthorURL      string `json:"photoAuthorUrl,omitempty"`
	PhotoURL            string `json:"photoUrl,omitempty"`

	// bio
	Bio   string   `json:"bio,omitempty"`
	Facts []string `json:"facts,omitempty"`

	// graph
	GraphTitle string       `json:"graphTitle,omitempty"`
	GraphData  []GraphPoint `json:"graphData,omitempty"`

	// quote
	Quote       string `json:"quote,omitempty"`
	Author      string `json:"author,omitempty"`
	AuthorTitle string `json:"authorTitle,omitempty"`
}

// PresentationDraft holds the fields of a fully assembled presentation
// before the store assigns its identity.
type PresentationDraft struct {
	Title         string
	Keywords      []string
	PresenterName string
	Difficulty    Difficulty
	Language      Language
	Slides        []Slide
}

// Presentation is the persisted aggregate. ID is assigned exactly once at
// creation; Slides are never mutated afterwards (read-only replay).
type Presentation struct {
	ID            string
	Title         string
	Keywords      []string
	PresenterName string
	Difficulty    Difficulty
	Language      Language
	Slides        []Slide
	CreatedAt     time.Time
}

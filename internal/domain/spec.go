package domain

// SlideSpec is a model-authored instruction for one content slide. It is
// transient: specs are validated once at the generation boundary, converted
// into Slides, and never persisted.
type SlideSpec struct {
	Type SlideType `json:"type"`

	// photo
	PhotoSearchTerm string `json:"photoSearchTerm,omitempty"`

	// text
	Text string `json:"text,omitempty"`

	// quote
	Quote       string `json:"quote,omitempty"`
	QuoteAuthor string `json:"quoteAuthor,omitempty"`
	QuoteTitle  string `json:"quoteTitle,omitempty"`

	// graph
	GraphTitle string       `json:"graphTitle,omitempty"`
	GraphData  []GraphPoint `json:"graphData,omitempty"`
}

const (
	graphMinPoints = 5
	graphMaxPoints = 7
	graphMinValue  = 10
	graphMaxValue  = 100
)

// IsValid reports whether all fields required by the spec's type are present.
// Invalid specs are dropped individually by the caller; one malformed spec
// must not discard the whole batch.
func (s SlideSpec) IsValid() bool {
	switch s.Type {
	case SlideTypePhoto:
		return s.PhotoSearchTerm != ""
	case SlideTypeText:
		return s.Text != ""
	case SlideTypeQuote:
		return s.Quote != "" && s.QuoteAuthor != "" && s.QuoteTitle != ""
	case SlideTypeGraph:
		return s.GraphTitle != "" && validGraphData(s.GraphData)
	}
	return false
}

func validGraphData(points []GraphPoint) bool {
	if len(points) < graphMinPoints || len(points) > graphMaxPoints {
		return false
	}
	for _, p := range points {
		if p.Label == "" || p.Value < graphMinValue || p.Value > graphMaxValue {
			return false
		}
	}
	return true
}

// FilterValidSpecs drops specs that fail their per-type field contract.
func FilterValidSpecs(specs []SlideSpec) []SlideSpec {
	valid := make([]SlideSpec, 0, len(specs))
	for _, s := range specs {
		if s.IsValid() {
			valid = append(valid, s)
		}
	}
	return valid
}

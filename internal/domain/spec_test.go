package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGraphPoints(n int) []GraphPoint {
	points := make([]GraphPoint, n)
	for i := range points {
		points[i] = GraphPoint{Label: "Q", Value: 50}
	}
	return points
}

func TestSlideSpec_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec SlideSpec
		want bool
	}{
		{"photo with term", SlideSpec{Type: SlideTypePhoto, PhotoSearchTerm: "cats"}, true},
		{"photo without term", SlideSpec{Type: SlideTypePhoto}, false},
		{"text with text", SlideSpec{Type: SlideTypeText, Text: "hi"}, true},
		{"text empty", SlideSpec{Type: SlideTypeText}, false},
		{"quote complete", SlideSpec{Type: SlideTypeQuote, Quote: "q", QuoteAuthor: "a", QuoteTitle: "t"}, true},
		{"quote missing author", SlideSpec{Type: SlideTypeQuote, Quote: "q", QuoteTitle: "t"}, false},
		{"quote missing title", SlideSpec{Type: SlideTypeQuote, Quote: "q", QuoteAuthor: "a"}, false},
		{"graph valid", SlideSpec{Type: SlideTypeGraph, GraphTitle: "g", GraphData: validGraphPoints(5)}, true},
		{"graph seven points", SlideSpec{Type: SlideTypeGraph, GraphTitle: "g", GraphData: validGraphPoints(7)}, true},
		{"graph too few points", SlideSpec{Type: SlideTypeGraph, GraphTitle: "g", GraphData: validGraphPoints(4)}, false},
		{"graph too many points", SlideSpec{Type: SlideTypeGraph, GraphTitle: "g", GraphData: validGraphPoints(8)}, false},
		{"graph no title", SlideSpec{Type: SlideTypeGraph, GraphData: validGraphPoints(5)}, false},
		{"unknown type", SlideSpec{Type: SlideType("banner")}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.spec.IsValid())
		})
	}
}

func TestSlideSpec_IsValid_GraphValueBounds(t *testing.T) {
	t.Parallel()

	points := validGraphPoints(5)
	points[2].Value = 9
	spec := SlideSpec{Type: SlideTypeGraph, GraphTitle: "g", GraphData: points}
	assert.False(t, spec.IsValid())

	points[2].Value = 101
	assert.False(t, spec.IsValid())

	points[2].Value = 10
	assert.True(t, spec.IsValid())

	points[2].Value = 100
	assert.True(t, spec.IsValid())

	points[2].Label = ""
	assert.False(t, spec.IsValid())
}

func TestFilterValidSpecs(t *testing.T) {
	t.Parallel()

	specs := []SlideSpec{
		{Type: SlideTypeText, Text: "keep"},
		{Type: SlideTypePhoto},
		{Type: SlideTypePhoto, PhotoSearchTerm: "keep too"},
	}

	valid := FilterValidSpecs(specs)
	assert.Len(t, valid, 2)
	assert.Equal(t, "keep", valid[0].Text)
	assert.Equal(t, "keep too", valid[1].PhotoSearchTerm)
}

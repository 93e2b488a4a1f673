package presentation

import "github.com/heartmarshall/karaoke-backend/internal/domain"

// assembleSlides merges the generated parts into the final ordered slide
// sequence: title first, bio second, resolved content slides, and the fixed
// closing slide last. With zero content slides the result is still a valid
// 3-slide presentation.
func (s *Service) assembleSlides(title string, bio bioResult, presenterName string, resolved []resolvedSpec) []domain.Slide {
	slides := make([]domain.Slide, 0, len(resolved)+3)

	slides = append(slides, domain.Slide{
		Type:    domain.SlideTypeTitle,
		Content: title,
	})
	slides = append(slides, domain.Slide{
		Type:    domain.SlideTypeBio,
		Content: presenterName,
		Bio:     bio.Bio,
		Facts:   bio.Facts,
	})

	content := make([]domain.Slide, 0, len(resolved))
	for _, r := range resolved {
		content = append(content, contentSlide(r))
	}
	if s.opts.ShuffleSlides {
		s.shuffle(content)
	}
	slides = append(slides, content...)

	slides = append(slides, domain.Slide{
		Type:    domain.SlideTypeText,
		Content: domain.ThankYouText,
	})

	return slides
}

// contentSlide converts one resolved spec into its persisted slide. Content
// always carries the human-readable summary for the slide type.
func contentSlide(r resolvedSpec) domain.Slide {
	switch r.spec.Type {
	case domain.SlideTypePhoto:
		return domain.Slide{
			Type:                domain.SlideTypePhoto,
			Content:             r.spec.PhotoSearchTerm,
			ImageURL:            r.photo.URL,
			PhotoAuthorName:     r.photo.AuthorName,
			PhotoAuthorUsername: r.photo.AuthorUsername,
			PhotoAuthorURL:      r.photo.AuthorURL,
			PhotoURL:            r.photo.PhotoURL,
		}
	case domain.SlideTypeQuote:
		return domain.Slide{
			Type:        domain.SlideTypeQuote,
			Content:     r.spec.Quote,
			Quote:       r.spec.Quote,
			Author:      r.spec.QuoteAuthor,
			AuthorTitle: r.spec.QuoteTitle,
		}
	case domain.SlideTypeGraph:
		return domain.Slide{
			Type:       domain.SlideTypeGraph,
			Content:    r.spec.GraphTitle,
			GraphTitle: r.spec.GraphTitle,
			GraphData:  r.spec.GraphData,
		}
	default:
		return domain.Slide{
			Type:    domain.SlideTypeText,
			Content: r.spec.Text,
		}
	}
}

// shuffle permutes content slides in place using the injected rand source.
func (s *Service) shuffle(slides []domain.Slide) {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	s.rand.Shuffle(len(slides), func(i, j int) {
		slides[i], slides[j] = slides[j], slides[i]
	})
}

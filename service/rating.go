package services

import "fmt"

// MAX_STARS is the fixed length of a star display.
const MAX_STARS = 5

// StarState is the visual state of one star.
type StarState int

const (
	StarEmpty StarState = iota
	StarFull
)

func (s StarState) String() string {
	if s == StarFull {
		return "full"
	}
	return "empty"
}

// RenderStars converts a rating into exactly MAX_STARS star states. A star
// that is only half covered (i-0.5 <= rating) renders full: there is no half
// star state.
func RenderStars(rating float64) []StarState {
	stars := make([]StarState, MAX_STARS)
	for i := 1; i <= MAX_STARS; i++ {
		pos := float64(i)
		switch {
		case pos <= rating:
			stars[i-1] = StarFull
		case pos-0.5 <= rating:
			stars[i-1] = StarFull
		default:
			stars[i-1] = StarEmpty
		}
	}
	return stars
}

// RatingLabel formats the text shown next to the stars, e.g. "4.5 (120 reviews)".
func RatingLabel(rating float64, reviews int) string {
	return fmt.Sprintf("%.1f (%d reviews)", rating, reviews)
}

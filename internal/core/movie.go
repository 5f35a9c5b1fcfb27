package core

import (
	"fmt"
	"strconv"
)

// DefaultCount is the number of entries returned by ranked queries when the
// caller does not ask for a specific count.
const DefaultCount = 5

// Movie is one rated movie observation. The same title may appear several
// times with different sources or years; each line is its own record.
type Movie struct {
	Title      string  `json:"title"`
	Genre      string  `json:"genre"`
	Rating     float64 `json:"rating"`
	Source     string  `json:"source"`
	Year       int     `json:"year"`
	ReviewDate string  `json:"review_date"`
}

// String renders the movie for listings:
// "{title} ({year}) - {genre} - Rating: {rating} ({source})".
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d) - %s - Rating: %s (%s)",
		m.Title, m.Year, m.Genre, FormatRating(m.Rating), m.Source)
}

// FormatRating formats a rating in its shortest exact decimal form (9 not 9.0, 8.8 not 8.80).
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

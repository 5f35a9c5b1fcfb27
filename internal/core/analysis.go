package core

import (
	"math"
	"sort"
	"strings"
)

// YearAverage is one entry of a ranked year listing.
type YearAverage struct {
	Year    int     `json:"year"`
	Average float64 `json:"average"`
}

// TopRated returns up to count movies ordered by rating, highest first.
// Movies with equal ratings keep their input order.
func TopRated(movies []Movie, count int) []Movie {
	sorted := sortedByRating(movies, func(a, b float64) bool { return a > b })
	return truncate(sorted, count)
}

// WorstRated returns up to count movies ordered by rating, lowest first.
// Movies with equal ratings keep their input order. Ratings that defaulted
// to 0 while parsing come first.
func WorstRated(movies []Movie, count int) []Movie {
	sorted := sortedByRating(movies, func(a, b float64) bool { return a < b })
	return truncate(sorted, count)
}

// SortByRatingDesc returns a copy of movies ordered by rating, highest first.
func SortByRatingDesc(movies []Movie) []Movie {
	return sortedByRating(movies, func(a, b float64) bool { return a > b })
}

// FilterByGenre returns the movies whose genre equals genre, ignoring case.
// The result keeps input order.
func FilterByGenre(movies []Movie, genre string) []Movie {
	out := make([]Movie, 0)
	for _, m := range movies {
		if strings.EqualFold(m.Genre, genre) {
			out = append(out, m)
		}
	}
	return out
}

// AverageRatingByYear groups movies by year and returns the mean rating of
// each group rounded to two decimals (half to even).
func AverageRatingByYear(movies []Movie) map[int]float64 {
	type acc struct {
		sum float64
		n   int
	}

	groups := make(map[int]*acc)
	for _, m := range movies {
		a, ok := groups[m.Year]
		if !ok {
			a = &acc{}
			groups[m.Year] = a
		}
		a.sum += m.Rating
		a.n++
	}

	out := make(map[int]float64, len(groups))
	for year, a := range groups {
		out[year] = roundTo2(a.sum / float64(a.n))
	}
	return out
}

// BestYears orders a year->average mapping by average, highest first, and
// returns up to count entries. Equal averages are ordered by year.
func BestYears(averages map[int]float64, count int) []YearAverage {
	out := make([]YearAverage, 0, len(averages))
	for year, avg := range averages {
		out = append(out, YearAverage{Year: year, Average: avg})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Year < out[j].Year
	})

	if count < 0 {
		count = 0
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// Genres returns the distinct genres in ascending byte order.
func Genres(movies []Movie) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range movies {
		if _, ok := seen[m.Genre]; ok {
			continue
		}
		seen[m.Genre] = struct{}{}
		out = append(out, m.Genre)
	}
	sort.Strings(out)
	return out
}

func sortedByRating(movies []Movie, less func(a, b float64) bool) []Movie {
	out := make([]Movie, len(movies))
	copy(out, movies)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Rating, out[j].Rating)
	})
	return out
}

func truncate(movies []Movie, count int) []Movie {
	if count <= 0 {
		return movies[:0]
	}
	if len(movies) > count {
		return movies[:count]
	}
	return movies
}

// roundLimit is the magnitude from which a float64 has no fractional digits
// left to round.
const roundLimit = 1e16

// roundTo2 rounds to two decimal places, ties to even. Values at or beyond
// roundLimit are returned unchanged so scaling cannot overflow.
func roundTo2(v float64) float64 {
	if math.IsNaN(v) || math.Abs(v) >= roundLimit {
		return v
	}
	return math.RoundToEven(v*100) / 100
}

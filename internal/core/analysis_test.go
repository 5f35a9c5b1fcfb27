package core

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMovies() []Movie {
	return []Movie{
		{Title: "A", Genre: "Drama", Rating: 7.0, Year: 2001},
		{Title: "B", Genre: "Comedy", Rating: 9.1, Year: 2001},
		{Title: "C", Genre: "drama", Rating: 7.0, Year: 2002},
		{Title: "D", Genre: "Horror", Rating: 0, Year: 0},
		{Title: "E", Genre: "DRAMA", Rating: 8.4, Year: 2002},
		{Title: "F", Genre: "Comedy", Rating: 7.0, Year: 2003},
	}
}

func titles(movies []Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestTopRated(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{name: "default count", count: DefaultCount, want: []string{"B", "E", "A", "C", "F"}},
		{name: "ties keep input order", count: 6, want: []string{"B", "E", "A", "C", "F", "D"}},
		{name: "count larger than input", count: 100, want: []string{"B", "E", "A", "C", "F", "D"}},
		{name: "single", count: 1, want: []string{"B"}},
		{name: "zero count", count: 0, want: []string{}},
		{name: "negative count", count: -3, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(TopRated(sampleMovies(), tt.count)))
		})
	}
}

func TestWorstRated(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{name: "zero rating sorts first", count: DefaultCount, want: []string{"D", "A", "C", "F", "E"}},
		{name: "single", count: 1, want: []string{"D"}},
		{name: "zero count", count: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(WorstRated(sampleMovies(), tt.count)))
		})
	}
}

func TestRankedQueries_Properties(t *testing.T) {
	movies := sampleMovies()

	for k := 0; k <= len(movies)+2; k++ {
		top := TopRated(movies, k)
		worst := WorstRated(movies, k)

		assert.Len(t, top, min(k, len(movies)), "top k=%d", k)
		assert.Len(t, worst, min(k, len(movies)), "worst k=%d", k)

		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].Rating, top[i].Rating)
		}
		for i := 1; i < len(worst); i++ {
			assert.LessOrEqual(t, worst[i-1].Rating, worst[i].Rating)
		}
	}

	full := TopRated(movies, len(movies))
	for i := range full {
		assert.Equal(t, SortByRatingDesc(movies)[i], full[i])
	}
}

func TestRankedQueries_DoNotMutateInput(t *testing.T) {
	movies := sampleMovies()
	before := titles(movies)

	TopRated(movies, 3)
	WorstRated(movies, 3)
	SortByRatingDesc(movies)
	FilterByGenre(movies, "drama")
	AverageRatingByYear(movies)

	assert.Equal(t, before, titles(movies))
}

func TestFilterByGenre(t *testing.T) {
	movies := sampleMovies()

	upper := FilterByGenre(movies, "Drama")
	lower := FilterByGenre(movies, "drama")

	assert.Equal(t, []string{"A", "C", "E"}, titles(upper))
	assert.Equal(t, upper, lower)

	absent := FilterByGenre(movies, "Western")
	assert.NotNil(t, absent)
	assert.Empty(t, absent)

	assert.Empty(t, FilterByGenre(movies, "Dram"), "substring must not match")
}

func TestAverageRatingByYear(t *testing.T) {
	t.Run("mean of single year", func(t *testing.T) {
		movies := []Movie{
			{Year: 1999, Rating: 8.0},
			{Year: 1999, Rating: 6.0},
			{Year: 1999, Rating: 7.0},
		}
		assert.Equal(t, map[int]float64{1999: 7.0}, AverageRatingByYear(movies))
	})

	t.Run("empty input", func(t *testing.T) {
		got := AverageRatingByYear(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("groups by year", func(t *testing.T) {
		got := AverageRatingByYear(sampleMovies())
		assert.Equal(t, map[int]float64{
			0:    0,
			2001: 8.05,
			2002: 7.7,
			2003: 7.0,
		}, got)
	})

	t.Run("values have at most two decimals", func(t *testing.T) {
		movies := []Movie{
			{Year: 2000, Rating: 1},
			{Year: 2000, Rating: 2},
			{Year: 2000, Rating: 2},
			{Year: 2001, Rating: 9.999},
			{Year: 2002, Rating: 3.14159},
		}
		for year, v := range AverageRatingByYear(movies) {
			scaled := v * 100
			assert.InDelta(t, math.Round(scaled), scaled, 1e-9, "year %d value %v", year, v)
		}
	})
}

func TestRoundTo2_HalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.125, want: 0.12},
		{in: 0.375, want: 0.38},
		{in: 2.0 / 3.0, want: 0.67},
		{in: 7, want: 7},
		{in: 8.8, want: 8.8},
		{in: 1e16 + 2, want: 1e16 + 2},
		{in: -1e300, want: -1e300},
		{in: math.MaxFloat64, want: math.MaxFloat64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTo2(tt.in), "roundTo2(%v)", tt.in)
	}
}

func TestAverageRatingByYear_HugeRatings(t *testing.T) {
	movies, err := Parse(strings.NewReader("Title,Genre,Rating,Source,Year,ReviewDate\n" +
		"Big,Drama,1e307,IMDB,2000,2020-01-01\n" +
		"Bigger,Drama,-1.5e308,IMDB,2001,2020-01-01\n"))
	require.NoError(t, err)

	got := AverageRatingByYear(movies)
	assert.Equal(t, map[int]float64{2000: 1e307, 2001: -1.5e308}, got)
	for _, v := range got {
		assert.False(t, math.IsInf(v, 0))
	}
}

func TestBestYears(t *testing.T) {
	averages := map[int]float64{2001: 8.05, 2002: 7.7, 2003: 7.0, 2004: 7.7, 0: 0}

	got := BestYears(averages, 3)
	assert.Equal(t, []YearAverage{
		{Year: 2001, Average: 8.05},
		{Year: 2002, Average: 7.7},
		{Year: 2004, Average: 7.7},
	}, got)

	assert.Len(t, BestYears(averages, 50), 5)
	assert.Empty(t, BestYears(averages, 0))
	assert.Empty(t, BestYears(nil, 5))
}

func TestGenres(t *testing.T) {
	assert.Equal(t, []string{"Comedy", "DRAMA", "Drama", "Horror", "drama"}, Genres(sampleMovies()))
	assert.Empty(t, Genres(nil))
}

func TestEndToEndScenario(t *testing.T) {
	content := "Title,Genre,Rating,Source,Year,ReviewDate\n" +
		"Inception,Sci-Fi,8.8,IMDB,2010,2020-01-01\n" +
		"Cats,Comedy,2.1,IMDB,2019,2020-01-01"

	movies, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, []string{"Inception"}, titles(TopRated(movies, 1)))
	assert.Equal(t, []string{"Cats"}, titles(WorstRated(movies, 1)))
	assert.Equal(t, map[int]float64{2010: 8.8, 2019: 2.1}, AverageRatingByYear(movies))
}

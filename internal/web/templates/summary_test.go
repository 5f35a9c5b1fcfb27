package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/JonMunkholm/movieratings/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, data SummaryData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, SummaryPage(data).Render(context.Background(), &buf))
	return buf.String()
}

func TestSummaryPage_Sections(t *testing.T) {
	movies := []core.Movie{
		{Title: "Tom & <Jerry>", Genre: "Animation", Rating: 9, Source: "IMDB", Year: 1940},
		{Title: "Dune", Genre: "Sci-Fi", Rating: 8.05, Source: "IMDB", Year: 2021},
	}
	out := render(t, SummaryData{
		Source:    "Data/movies.csv",
		Count:     2,
		Top:       movies,
		Worst:     movies[1:],
		BestYears: []core.YearAverage{{Year: 1940, Average: 9}},
		Genres:    []string{"Animation", "Sci/Fi"},
	})

	assert.Contains(t, out, "<p>2 movies loaded from <code>Data/movies.csv</code></p>")
	assert.Contains(t, out, "<h2>Top 2 Highest Rated Movies</h2>")
	assert.Contains(t, out, "<h2>Worst 1 Movies</h2>")
	assert.Contains(t, out, "<td>Tom &amp; &lt;Jerry&gt;</td>")
	assert.Contains(t, out, "<td>8.05</td>")
	assert.Contains(t, out, "<li>1940: 9/10.0</li>")
	assert.Contains(t, out, `<a href="/api/genres/Sci%2FFi">Sci/Fi</a>`)
	assert.NotContains(t, out, "No movies loaded.")
}

func TestSummaryPage_Empty(t *testing.T) {
	out := render(t, SummaryData{Source: "missing.csv"})

	assert.Contains(t, out, "<p>No movies loaded.</p>")
	assert.NotContains(t, out, "<table>")
}

func TestSummaryPage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := SummaryPage(SummaryData{}).Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestGenreHref(t *testing.T) {
	assert.Equal(t, "/api/genres/Sci%20Fi", string(GenreHref("Sci Fi")))
	assert.Equal(t, "/api/genres/Sci%2541", string(GenreHref("Sci%41")))
}

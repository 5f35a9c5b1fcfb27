package core

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset_CopiesInput(t *testing.T) {
	movies := sampleMovies()
	ds := NewDataset("movies.csv", movies)

	movies[0].Title = "changed"
	assert.Equal(t, "A", ds.Movies()[0].Title)

	out := ds.Movies()
	out[1].Title = "changed"
	assert.Equal(t, "B", ds.Movies()[1].Title)

	assert.NotEqual(t, uuid.Nil, ds.ID)
	assert.Equal(t, "movies.csv", ds.Source)
	assert.Equal(t, len(movies), ds.Len())
	assert.False(t, ds.Empty())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(dir, "movies.csv")
		require.NoError(t, os.WriteFile(path, []byte(header+"\nUp,Animation,8.3,IMDB,2009,2020-01-01\n"), 0o644))

		ds, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, 1, ds.Len())
		assert.Equal(t, path, ds.Source)
	})

	t.Run("missing file yields empty dataset and error", func(t *testing.T) {
		ds, err := Open(filepath.Join(dir, "nope.csv"))
		require.ErrorIs(t, err, ErrNotFound)
		require.NotNil(t, ds)
		assert.True(t, ds.Empty())
	})
}

func TestService_Queries(t *testing.T) {
	svc := NewService(NewDataset("mem", sampleMovies()), 3)

	assert.Equal(t, 3, svc.DefaultCount())
	assert.Equal(t, []string{"B", "E", "A"}, titles(svc.TopRated(svc.DefaultCount())))
	assert.Equal(t, []string{"D", "A"}, titles(svc.WorstRated(2)))
	assert.Equal(t, []string{"A", "C", "E"}, titles(svc.FilterByGenre("dRaMa")))
	assert.Equal(t, 8.05, svc.AverageRatingByYear()[2001])
	assert.Equal(t, 2001, svc.BestYears(1)[0].Year)
	assert.Contains(t, svc.Genres(), "Horror")
}

func TestService_EmptyDatasetDegradesToEmptyResults(t *testing.T) {
	svc := NewService(EmptyDataset("missing.csv"), 0)

	assert.Equal(t, DefaultCount, svc.DefaultCount())
	assert.Empty(t, svc.TopRated(5))
	assert.Empty(t, svc.WorstRated(5))
	assert.Empty(t, svc.FilterByGenre("Drama"))
	assert.Empty(t, svc.AverageRatingByYear())
	assert.Empty(t, svc.BestYears(5))
	assert.Empty(t, svc.Genres())
}

func TestService_NilDataset(t *testing.T) {
	svc := NewService(nil, 5)
	require.NotNil(t, svc.Dataset())
	assert.Empty(t, svc.TopRated(5))
}

func TestService_ConcurrentReaders(t *testing.T) {
	svc := NewService(NewDataset("mem", sampleMovies()), 5)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, svc.TopRated(5), 5)
			assert.Len(t, svc.FilterByGenre("comedy"), 2)
			assert.Len(t, svc.AverageRatingByYear(), 4)
		}()
	}
	wg.Wait()
}

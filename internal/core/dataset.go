package core

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Dataset is the collection produced by a single load. It is never modified
// after construction and may be read from any number of goroutines.
type Dataset struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time

	movies []Movie
}

// NewDataset takes a private copy of movies.
func NewDataset(source string, movies []Movie) *Dataset {
	owned := make([]Movie, len(movies))
	copy(owned, movies)

	return &Dataset{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		movies:   owned,
	}
}

// EmptyDataset is the dataset a session continues with after a failed load.
func EmptyDataset(source string) *Dataset {
	return NewDataset(source, nil)
}

// Open performs the one-time load of the file at path.
//
// It always returns a usable Dataset. When the load fails the dataset is
// empty and the error (ErrNotFound or ErrEmptyDataset, wrapped) is returned
// alongside it for the caller to report.
func Open(path string) (*Dataset, error) {
	movies, err := LoadFile(path)
	if err != nil {
		slog.Warn("movie data not loaded", "path", path, "error", err)
		return EmptyDataset(path), err
	}

	ds := NewDataset(path, movies)
	slog.Info("movie data loaded",
		"path", path,
		"movies", ds.Len(),
		"dataset_id", ds.ID.String(),
	)
	return ds, nil
}

// Movies returns a copy of the records in file order.
func (d *Dataset) Movies() []Movie {
	out := make([]Movie, len(d.movies))
	copy(out, d.movies)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.movies)
}

// Empty reports whether the dataset holds no records.
func (d *Dataset) Empty() bool {
	return len(d.movies) == 0
}

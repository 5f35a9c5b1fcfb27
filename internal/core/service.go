package core

// Service answers queries over one loaded Dataset.
//
// It holds no mutable state, so a single instance may be shared by the
// console menu and concurrent HTTP handlers.
type Service struct {
	dataset      *Dataset
	defaultCount int
}

// NewService creates a Service over ds. A non-positive defaultCount falls
// back to DefaultCount.
func NewService(ds *Dataset, defaultCount int) *Service {
	if ds == nil {
		ds = EmptyDataset("")
	}
	if defaultCount <= 0 {
		defaultCount = DefaultCount
	}
	return &Service{dataset: ds, defaultCount: defaultCount}
}

// Dataset returns the dataset the service reads from.
func (s *Service) Dataset() *Dataset {
	return s.dataset
}

// DefaultCount returns the count used by ranked queries when none is given.
func (s *Service) DefaultCount() int {
	return s.defaultCount
}

// TopRated returns the count highest rated movies.
func (s *Service) TopRated(count int) []Movie {
	return TopRated(s.dataset.movies, count)
}

// WorstRated returns the count lowest rated movies.
func (s *Service) WorstRated(count int) []Movie {
	return WorstRated(s.dataset.movies, count)
}

// FilterByGenre returns the movies of genre in file order.
func (s *Service) FilterByGenre(genre string) []Movie {
	return FilterByGenre(s.dataset.movies, genre)
}

// AverageRatingByYear returns the mean rating per year.
func (s *Service) AverageRatingByYear() map[int]float64 {
	return AverageRatingByYear(s.dataset.movies)
}

// BestYears returns the count years with the highest average rating.
func (s *Service) BestYears(count int) []YearAverage {
	return BestYears(s.AverageRatingByYear(), count)
}

// Genres returns the distinct genres in the dataset.
func (s *Service) Genres() []string {
	return Genres(s.dataset.movies)
}

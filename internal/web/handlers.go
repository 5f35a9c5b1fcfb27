package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/JonMunkholm/movieratings/internal/core"
	"github.com/JonMunkholm/movieratings/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// DatasetInfo describes the loaded dataset.
type DatasetInfo struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
	Count    int       `json:"count"`
}

// MovieList is the response body of every movie listing endpoint.
type MovieList struct {
	Count  int          `json:"count"`
	Movies []core.Movie `json:"movies"`
}

// handleHealth reports liveness and the number of loaded movies.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]any{
		"status": "ok",
		"movies": s.service.Dataset().Len(),
	})
}

// handleDataset returns metadata about the loaded dataset.
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	ds := s.service.Dataset()
	s.writeJSON(w, r, DatasetInfo{
		ID:       ds.ID.String(),
		Source:   ds.Source,
		LoadedAt: ds.LoadedAt,
		Count:    ds.Len(),
	})
}

// handleTopRated returns the highest rated movies.
func (s *Server) handleTopRated(w http.ResponseWriter, r *http.Request) {
	count, err := s.countParam(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	metrics.ObserveQuery(metrics.SurfaceHTTP, "top_rated")
	s.writeJSON(w, r, movieList(s.service.TopRated(count)))
}

// handleWorstRated returns the lowest rated movies.
func (s *Server) handleWorstRated(w http.ResponseWriter, r *http.Request) {
	count, err := s.countParam(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	metrics.ObserveQuery(metrics.SurfaceHTTP, "worst_rated")
	s.writeJSON(w, r, movieList(s.service.WorstRated(count)))
}

// handleAverageByYear returns the average rating keyed by year.
func (s *Server) handleAverageByYear(w http.ResponseWriter, r *http.Request) {
	metrics.ObserveQuery(metrics.SurfaceHTTP, "average_by_year")
	s.writeJSON(w, r, s.service.AverageRatingByYear())
}

// handleBestYears returns the years with the highest average rating.
func (s *Server) handleBestYears(w http.ResponseWriter, r *http.Request) {
	count, err := s.countParam(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	metrics.ObserveQuery(metrics.SurfaceHTTP, "best_years")
	s.writeJSON(w, r, s.service.BestYears(count))
}

// handleGenres lists the distinct genres.
func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.service.Genres())
}

// handleFilterByGenre returns the movies of one genre, best rated first.
func (s *Server) handleFilterByGenre(w http.ResponseWriter, r *http.Request) {
	genre := chi.URLParam(r, "genre")
	// chi matches on RawPath when the path holds escaped reserved
	// characters such as %2F; the parameter is still encoded then.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(genre); err == nil {
			genre = unescaped
		}
	}

	metrics.ObserveQuery(metrics.SurfaceHTTP, "filter_by_genre")
	s.writeJSON(w, r, movieList(core.SortByRatingDesc(s.service.FilterByGenre(genre))))
}

// countParam reads ?count=, falling back to the service default.
func (s *Server) countParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return s.service.DefaultCount(), nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidCount, raw)
	}
	return n, nil
}

func movieList(movies []core.Movie) MovieList {
	return MovieList{Count: len(movies), Movies: movies}
}

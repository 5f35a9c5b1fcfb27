package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/JonMunkholm/movieratings/internal/metrics"
	"github.com/JonMunkholm/movieratings/internal/web/templates"
)

// handleSummaryPage renders the HTML overview of the dataset.
func (s *Server) handleSummaryPage(w http.ResponseWriter, r *http.Request) {
	n := s.service.DefaultCount()
	ds := s.service.Dataset()

	data := templates.SummaryData{
		Source:    ds.Source,
		Count:     ds.Len(),
		Top:       s.service.TopRated(n),
		Worst:     s.service.WorstRated(n),
		BestYears: s.service.BestYears(n),
		Genres:    s.service.Genres(),
	}

	metrics.ObserveQuery(metrics.SurfaceHTTP, "summary_page")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.SummaryPage(data).Render(r.Context(), w); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		s.respondError(w, r, err, status)
	}
}

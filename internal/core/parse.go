package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// movieFieldCount is the number of leading columns a data line must have.
const movieFieldCount = 6

var (
	// ErrNotFound is returned when the input path does not resolve to a readable file.
	ErrNotFound = errors.New("movie file not found")

	// ErrEmptyDataset is returned when the input has no data lines after the header.
	ErrEmptyDataset = errors.New("csv file is empty or contains only headers")
)

// LoadFile reads and parses the movie CSV at path.
func LoadFile(path string) ([]Movie, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	defer f.Close()

	movies, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return movies, nil
}

// Parse reads CSV content and returns one Movie per accepted data line, in
// file order. The first line is treated as a header and discarded.
//
// Lines with fewer than six comma-separated fields are skipped. Ratings and
// years that fail to parse are set to 0. Neither case is reported as an error.
func Parse(r io.Reader) ([]Movie, error) {
	sc := newLineScanner(r)

	movies := make([]Movie, 0)
	lines, skipped := 0, 0

	for sc.Scan() {
		lines++
		if lines == 1 {
			continue
		}

		m, ok := parseLine(sanitizeLine(sc.Text()))
		if !ok {
			skipped++
			continue
		}
		movies = append(movies, m)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("invalid csv at line %d: %w", lines+1, err)
	}

	if lines <= 1 {
		return nil, ErrEmptyDataset
	}

	if skipped > 0 {
		slog.Debug("skipped malformed csv lines", "skipped", skipped, "accepted", len(movies))
	}

	return movies, nil
}

// parseLine converts one data line to a Movie. It reports false when the
// line has too few fields.
func parseLine(line string) (Movie, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < movieFieldCount {
		return Movie{}, false
	}

	return Movie{
		Title:      strings.TrimSpace(parts[0]),
		Genre:      strings.TrimSpace(parts[1]),
		Rating:     parseRating(parts[2]),
		Source:     strings.TrimSpace(parts[3]),
		Year:       parseYear(parts[4]),
		ReviewDate: strings.TrimSpace(parts[5]),
	}, true
}

// parseRating returns 0 for anything that is not a finite number.
func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseYear returns 0 for anything that is not a base-10 integer.
func parseYear(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

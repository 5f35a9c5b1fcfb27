// Package core provides the business logic for movie rating analysis.
//
// This package holds all domain logic independent of any UI or transport
// layer. The console menu and the HTTP API both sit on top of it without
// modification.
//
// # Architecture
//
//   - Movie: one rated observation parsed from a CSV line.
//   - Parse / LoadFile / Open: the one-time load step.
//   - Dataset: the immutable, insertion-ordered collection produced by a load.
//   - Service: read-only query entry point over a Dataset.
//
// # Loading
//
// The input is a comma-separated file with a header line followed by data
// lines in the fixed column order title, genre, rating, source, year,
// reviewDate. Fields are split on every comma; quoting is not supported.
//
// Parsing is lenient:
//
//   - lines with fewer than six fields are dropped without an error
//   - fields beyond the sixth are ignored
//   - a rating or year that does not parse becomes 0
//
// Only two load failures exist, [ErrNotFound] and [ErrEmptyDataset]. Callers
// report them and continue with [EmptyDataset].
//
// # Queries
//
// [TopRated], [WorstRated], [FilterByGenre] and [AverageRatingByYear] are pure
// functions of their arguments. They never modify the slice they are given and
// never fail; an empty input yields an empty result.
//
// WorstRated is a plain ascending sort, so records whose rating defaulted to 0
// during parsing sort to the front.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
package core

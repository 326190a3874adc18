package movie

import (
	"time"

	"moviecatalog/errs"
)

var (
	ErrMoviesNotFound = errs.Errorf(errs.ENOTFOUND, "No movies found.")
	ErrMovieNotFound  = errs.Errorf(errs.ENOTFOUND, "Movie with the given ID was not found.")
	// ErrInvalidPage guards direct callers of List. The HTTP facade rejects
	// bad paging with a field-level ValidationError before List runs.
	ErrInvalidPage = errs.Errorf(errs.EINVALID, "invalid page or per_page")
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 20
)

// Movie is a single catalog record. Name and Date together identify a movie.
type Movie struct {
	ID        int64
	Name      string
	Date      time.Time
	Score     float64
	Genre     string
	Overview  string
	Crew      string
	OrigTitle string
	Status    string
	OrigLang  string
	Budget    float64
	Revenue   float64
	Country   string
}

// Page is one slice of the catalog ordered by ID.
type Page struct {
	Movies     []Movie
	PrevPage   *string
	NextPage   *string
	TotalPages int
	TotalItems int64
}

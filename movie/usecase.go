package movie

import (
	"context"
	"fmt"
)

// linkPrefix is the API-version-relative path used in pagination links.
const linkPrefix = "/theater/movies/"

type Service interface {
	List(ctx context.Context, page, perPage int) (Page, error)
	Get(ctx context.Context, id int64) (Movie, error)
}

type Repository interface {
	CountMovies(ctx context.Context) (int64, error)
	ListMovies(ctx context.Context, offset, limit int) ([]Movie, error)
	MovieByID(ctx context.Context, id int64) (Movie, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// List returns the requested page. An empty page, whether the catalog is
// empty or page is past the last one, is reported as ErrMoviesNotFound.
func (uc *Usecase) List(ctx context.Context, page, perPage int) (Page, error) {
	if page < 1 || perPage < 1 || perPage > MaxPerPage {
		return Page{}, ErrInvalidPage
	}

	total, err := uc.r.CountMovies(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("count movies: %w", err)
	}

	// checked before Offset so a huge page cannot overflow into page 1
	totalPages := TotalPages(total, perPage)
	if page > totalPages {
		return Page{}, ErrMoviesNotFound
	}

	movies, err := uc.r.ListMovies(ctx, Offset(page, perPage), perPage)
	if err != nil {
		return Page{}, fmt.Errorf("list movies: %w", err)
	}
	if len(movies) == 0 {
		return Page{}, ErrMoviesNotFound
	}

	result := Page{
		Movies:     movies,
		TotalPages: totalPages,
		TotalItems: total,
	}
	if page > 1 {
		result.PrevPage = pageLink(page-1, perPage)
	}
	if page < totalPages {
		result.NextPage = pageLink(page+1, perPage)
	}
	return result, nil
}

func (uc *Usecase) Get(ctx context.Context, id int64) (Movie, error) {
	return uc.r.MovieByID(ctx, id)
}

// Offset is the number of records preceding page.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}

// TotalPages is ceil(total / perPage).
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func pageLink(page, perPage int) *string {
	link := fmt.Sprintf("%s?page=%d&per_page=%d", linkPrefix, page, perPage)
	return &link
}

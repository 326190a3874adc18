package httpserver

import (
	"moviecatalog/movie"

	"github.com/labstack/echo/v4"
)

type ListMoviesRequest struct {
	Page    int `query:"page" validate:"min=1"`
	PerPage int `query:"per_page" validate:"min=1,max=20"`
}

func bindListMoviesRequest(c echo.Context) (ListMoviesRequest, error) {
	req := ListMoviesRequest{Page: 1, PerPage: movie.DefaultPerPage}

	bindErrs := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("per_page", &req.PerPage).
		BindErrors()
	if len(bindErrs) > 0 {
		return req, bindingError("query", bindErrs)
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

type GetMovieRequest struct {
	ID int64 `param:"id" validate:"min=1"`
}

func bindGetMovieRequest(c echo.Context) (GetMovieRequest, error) {
	var req GetMovieRequest

	bindErrs := echo.PathParamsBinder(c).Int64("id", &req.ID).BindErrors()
	if len(bindErrs) > 0 {
		return req, bindingError("path", bindErrs)
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

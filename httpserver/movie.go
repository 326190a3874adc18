package httpserver

import (
	"net/http"

	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/movies/", s.handleListMovies)
	g.GET("/movies/:id", s.handleGetMovie)
	g.GET("/movies/:id/", s.handleGetMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Paginated list of movies ordered by id
// @Tags movies
// @Produce json
// @Param page query int false "Page number (>=1)" default(1) minimum(1)
// @Param per_page query int false "Number of movies per page" default(10) minimum(1) maximum(20)
// @Success 200 {object} MovieListResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationError
// @Router /api/v1/theater/movies/ [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	req, err := bindListMoviesRequest(c)
	if err != nil {
		return err
	}

	page, err := s.MovieService.List(c.Request().Context(), req.Page, req.PerPage)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieListResponse(page))
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Full details of a single movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} MovieResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationError
// @Router /api/v1/theater/movies/{id}/ [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	req, err := bindGetMovieRequest(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.Get(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newMovieResponse(m))
}

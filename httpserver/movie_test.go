// nolint: funlen
package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviecatalog/httpserver"
	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context, page, perPage int) (movie.Page, error) {
	args := m.Called(ctx, page, perPage)
	return args.Get(0).(movie.Page), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func newMovieServer(svc movie.Service) *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.MovieService = svc
	return server
}

func get(server *httpserver.Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func strPtr(s string) *string { return &s }

var creed = movie.Movie{
	ID:        1,
	Name:      "Creed III",
	Date:      time.Date(2023, time.March, 2, 0, 0, 0, 0, time.UTC),
	Score:     73,
	Genre:     "Drama,Action",
	Overview:  "After dominating the boxing world...",
	Crew:      "Michael B. Jordan, Adonis Creed",
	OrigTitle: "Creed III",
	Status:    "Released",
	OrigLang:  "English",
	Budget:    75000000.25,
	Revenue:   271616668.9,
	Country:   "AU",
}

func TestListMovies(t *testing.T) {
	t.Run("should use default paging", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)
		svc.On("List", mock.Anything, 1, 10).Return(movie.Page{
			Movies:     []movie.Movie{creed},
			NextPage:   strPtr("/theater/movies/?page=2&per_page=10"),
			TotalPages: 3,
			TotalItems: 23,
		}, nil).Once()

		rec := get(server, "/api/v1/theater/movies/")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp httpserver.MovieListResponse
		decodeJSON(t, rec, &resp)
		require.Len(t, resp.Movies, 1)
		assert.Nil(t, resp.PrevPage)
		assert.Equal(t, "/theater/movies/?page=2&per_page=10", *resp.NextPage)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, int64(23), resp.TotalItems)
		svc.AssertExpectations(t)
	})

	t.Run("should render links as null and keep numbers intact", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)
		svc.On("List", mock.Anything, 2, 5).Return(movie.Page{
			Movies:     []movie.Movie{creed},
			TotalPages: 1,
			TotalItems: 1,
		}, nil).Once()

		rec := get(server, "/api/v1/theater/movies?page=2&per_page=5")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"movies": [{
				"id": 1,
				"name": "Creed III",
				"date": "2023-03-02",
				"score": 73,
				"genre": "Drama,Action",
				"overview": "After dominating the boxing world...",
				"crew": "Michael B. Jordan, Adonis Creed",
				"orig_title": "Creed III",
				"status": "Released",
				"orig_lang": "English",
				"budget": 75000000.25,
				"revenue": 271616668.9,
				"country": "AU"
			}],
			"prev_page": null,
			"next_page": null,
			"total_pages": 1,
			"total_items": 1
		}`, rec.Body.String())
	})

	t.Run("should return 404 when no movies are found", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)
		svc.On("List", mock.Anything, 1, 10).Return(movie.Page{}, movie.ErrMoviesNotFound).Once()

		rec := get(server, "/api/v1/theater/movies/")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"No movies found."}`, rec.Body.String())
	})

	t.Run("should return 500 on service failure", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)
		svc.On("List", mock.Anything, 1, 10).Return(movie.Page{}, errors.New("database is locked")).Once()

		rec := get(server, "/api/v1/theater/movies/")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", decodeErrorResponse(t, rec).Detail)
	})

	t.Run("should return 501 without a movie service", func(t *testing.T) {
		server := httpserver.Default(testConfig())

		rec := get(server, "/api/v1/theater/movies/")

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})
}

func TestListMovies_Validation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		loc     []string
		msg     string
		errType string
	}{
		{
			name:    "page below minimum",
			query:   "page=0",
			loc:     []string{"query", "page"},
			msg:     "Input should be greater than or equal to 1",
			errType: "greater_than_equal",
		},
		{
			name:    "negative page",
			query:   "page=-3&per_page=10",
			loc:     []string{"query", "page"},
			msg:     "Input should be greater than or equal to 1",
			errType: "greater_than_equal",
		},
		{
			name:    "per_page below minimum",
			query:   "per_page=0",
			loc:     []string{"query", "per_page"},
			msg:     "Input should be greater than or equal to 1",
			errType: "greater_than_equal",
		},
		{
			name:    "per_page above maximum",
			query:   "per_page=21",
			loc:     []string{"query", "per_page"},
			msg:     "Input should be less than or equal to 20",
			errType: "less_than_equal",
		},
		{
			name:    "page is not an integer",
			query:   "page=abc",
			loc:     []string{"query", "page"},
			msg:     "Input should be a valid integer, unable to parse string as an integer",
			errType: "int_parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockMovieService)
			server := newMovieServer(svc)

			rec := get(server, "/api/v1/theater/movies/?"+tt.query)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decodeValidationError(t, rec)
			require.Len(t, resp.Detail, 1)
			assert.Equal(t, tt.loc, resp.Detail[0].Loc)
			assert.Equal(t, tt.msg, resp.Detail[0].Msg)
			assert.Equal(t, tt.errType, resp.Detail[0].Type)
			svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("reports every failing field", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)

		rec := get(server, "/api/v1/theater/movies/?page=0&per_page=50")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeValidationError(t, rec)
		assert.Len(t, resp.Detail, 2)
	})
}

func TestGetMovie(t *testing.T) {
	t.Run("should return the movie", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)
		svc.On("Get", mock.Anything, int64(1)).Return(creed, nil).Twice()

		for _, target := range []string{"/api/v1/theater/movies/1/", "/api/v1/theater/movies/1"} {
			rec := get(server, target)

			assert.Equal(t, http.StatusOK, rec.Code, target)
			var resp httpserver.MovieResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, int64(1), resp.ID)
			assert.Equal(t, "2023-03-02", resp.Date)
			assert.Equal(t, 75000000.25, resp.Budget)
			assert.Equal(t, 271616668.9, resp.Revenue)
		}
		svc.AssertExpectations(t)
	})

	t.Run("should return 404 when movie is missing", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)
		svc.On("Get", mock.Anything, int64(999)).Return(movie.Movie{}, movie.ErrMovieNotFound).Once()

		rec := get(server, "/api/v1/theater/movies/999/")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Movie with the given ID was not found."}`, rec.Body.String())
	})

	t.Run("should return 422 for a non-integer id", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)

		rec := get(server, "/api/v1/theater/movies/abc/")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeValidationError(t, rec)
		require.Len(t, resp.Detail, 1)
		assert.Equal(t, []string{"path", "id"}, resp.Detail[0].Loc)
		assert.Equal(t, "int_parsing", resp.Detail[0].Type)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should return 422 for a non-positive id", func(t *testing.T) {
		svc := new(MockMovieService)
		server := newMovieServer(svc)

		rec := get(server, "/api/v1/theater/movies/0/")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeValidationError(t, rec)
		require.Len(t, resp.Detail, 1)
		assert.Equal(t, "Input should be greater than or equal to 1", resp.Detail[0].Msg)
	})
}

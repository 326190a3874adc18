package httpserver

import (
	"time"

	"moviecatalog/movie"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MovieResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date" example:"2023-03-02"`
	Score     float64 `json:"score"`
	Genre     string  `json:"genre"`
	Overview  string  `json:"overview"`
	Crew      string  `json:"crew"`
	OrigTitle string  `json:"orig_title"`
	Status    string  `json:"status"`
	OrigLang  string  `json:"orig_lang"`
	Budget    float64 `json:"budget"`
	Revenue   float64 `json:"revenue"`
	Country   string  `json:"country"`
}

type MovieListResponse struct {
	Movies     []MovieResponse `json:"movies"`
	PrevPage   *string         `json:"prev_page"`
	NextPage   *string         `json:"next_page"`
	TotalPages int             `json:"total_pages"`
	TotalItems int64           `json:"total_items"`
}

func newMovieResponse(m movie.Movie) MovieResponse {
	return MovieResponse{
		ID:        m.ID,
		Name:      m.Name,
		Date:      m.Date.Format(time.DateOnly),
		Score:     m.Score,
		Genre:     m.Genre,
		Overview:  m.Overview,
		Crew:      m.Crew,
		OrigTitle: m.OrigTitle,
		Status:    m.Status,
		OrigLang:  m.OrigLang,
		Budget:    m.Budget,
		Revenue:   m.Revenue,
		Country:   m.Country,
	}
}

func newMovieListResponse(p movie.Page) MovieListResponse {
	movies := make([]MovieResponse, len(p.Movies))
	for i, m := range p.Movies {
		movies[i] = newMovieResponse(m)
	}
	return MovieListResponse{
		Movies:     movies,
		PrevPage:   p.PrevPage,
		NextPage:   p.NextPage,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
	}
}

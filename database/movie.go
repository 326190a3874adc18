package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviecatalog/errs"
	"moviecatalog/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:unique_movie_constraint"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:unique_movie_constraint"`
	Score     float64   `gorm:"not null"`
	Genre     string    `gorm:"size:255;not null"`
	Overview  string    `gorm:"type:text;not null"`
	Crew      string    `gorm:"type:text;not null"`
	OrigTitle string    `gorm:"column:orig_title;size:255;not null"`
	Status    string    `gorm:"size:50;not null"`
	OrigLang  string    `gorm:"column:orig_lang;size:50;not null"`
	Budget    float64   `gorm:"type:decimal(14,2);not null"`
	Revenue   float64   `gorm:"not null"`
	Country   string    `gorm:"size:3;not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func newMovieModel(m movie.Movie) MovieModel {
	return MovieModel{
		Name:      m.Name,
		Date:      m.Date,
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

func (model MovieModel) toMovie() movie.Movie {
	d := model.Date.UTC()
	return movie.Movie{
		ID:        model.ID,
		Name:      model.Name,
		Date:      time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Score:     model.Score,
		Genre:     model.Genre,
		Overview:  model.Overview,
		Crew:      model.Crew,
		OrigTitle: model.OrigTitle,
		Status:    model.Status,
		OrigLang:  model.OrigLang,
		Budget:    model.Budget,
		Revenue:   model.Revenue,
		Country:   model.Country,
	}
}

// MovieRepository implements movie.Repository and the seeder's write side.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) CountMovies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&MovieModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MovieRepository) ListMovies(ctx context.Context, offset, limit int) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) MovieByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	if err != nil {
		return movie.Movie{}, err
	}
	return model.toMovie(), nil
}

// CreateMovies inserts every movie inside a single transaction. Any failure
// rolls the whole batch back. progress, when set, is called after each
// successful insert with the running total.
func (r *MovieRepository) CreateMovies(ctx context.Context, movies []movie.Movie, progress func(inserted int)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, m := range movies {
			model := newMovieModel(m)
			err := tx.Create(&model).Error
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errs.Errorf(errs.ECONFLICT, "movie %q released %s already exists", m.Name, m.Date.Format(time.DateOnly))
			}
			if err != nil {
				return fmt.Errorf("insert movie %q: %w", m.Name, err)
			}
			if progress != nil {
				progress(i + 1)
			}
		}
		return nil
	})
}

package database_test

import (
	"fmt"
	"testing"
	"time"

	"moviecatalog/database"
	"moviecatalog/movie"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateMemoryConnection opens a migrated in-memory SQLite store.
func CreateMemoryConnection(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(database.Options{
		Driver: database.DriverSQLite,
		Path:   database.MemoryPath,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	_, err = database.Migrate(db, database.DriverSQLite)
	require.NoError(t, err)

	return db
}

func makeMovies(n int) []movie.Movie {
	movies := make([]movie.Movie, n)
	for i := range movies {
		movies[i] = movie.Movie{
			Name:      fmt.Sprintf("Movie %02d", i+1),
			Date:      time.Date(2021, time.March, 1+i, 0, 0, 0, 0, time.UTC),
			Score:     float64(50 + i),
			Genre:     "Drama",
			Overview:  "An overview.",
			Crew:      "Someone, Director",
			OrigTitle: fmt.Sprintf("Movie %02d", i+1),
			Status:    "Released",
			OrigLang:  "English",
			Budget:    1234567.89,
			Revenue:   98765432.5,
			Country:   "US",
		}
	}
	return movies
}

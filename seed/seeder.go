package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"moviecatalog/movie"
	"moviecatalog/pkg/checksum"
	"moviecatalog/pkg/metrics"
)

// progressEvery is how many inserted rows pass between progress log lines.
const progressEvery = 1000

type Repository interface {
	CountMovies(ctx context.Context) (int64, error)
	CreateMovies(ctx context.Context, movies []movie.Movie, progress func(inserted int)) error
}

// Report summarizes one seeding run.
type Report struct {
	Read         int
	Duplicates   int
	InvalidDates int
	Inserted     int
	Checksum     string
	Duration     time.Duration
}

// Seeder loads the movie CSV into an empty store.
type Seeder struct {
	csvPath string
	r       Repository
	logger  *slog.Logger
}

func NewSeeder(csvPath string, r Repository, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{csvPath: csvPath, r: r, logger: logger}
}

// IsPopulated reports whether the store already holds at least one movie.
func (s *Seeder) IsPopulated(ctx context.Context) (bool, error) {
	count, err := s.r.CountMovies(ctx)
	if err != nil {
		return false, fmt.Errorf("count movies: %w", err)
	}
	return count > 0, nil
}

// Seed reads, cleans and inserts the whole CSV in one transaction. It does
// not check IsPopulated itself; callers must.
func (s *Seeder) Seed(ctx context.Context) (Report, error) {
	start := time.Now()

	report, err := s.seed(ctx)
	report.Duration = time.Since(start)
	metrics.RecordSeed(report.Inserted, report.Duplicates, report.InvalidDates, err)

	if err != nil {
		s.logger.Error("seeding failed, transaction rolled back", "csv", s.csvPath, "error", err)
		return report, err
	}

	s.logger.Info("seeding completed",
		"csv", s.csvPath,
		"checksum", report.Checksum,
		"read", report.Read,
		"duplicates", report.Duplicates,
		"invalid_dates", report.InvalidDates,
		"inserted", report.Inserted,
		"duration", report.Duration,
	)
	return report, nil
}

func (s *Seeder) seed(ctx context.Context) (Report, error) {
	file, err := os.Open(s.csvPath)
	if err != nil {
		return Report{}, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	s.logger.Info("preprocessing csv file", "csv", s.csvPath)
	src := checksum.NewReader(file)
	movies, report, err := readMovies(src)
	report.Checksum = src.Sum()
	if err != nil {
		return report, err
	}
	if report.InvalidDates > 0 {
		s.logger.Warn("dropped rows with unparseable dates", "rows", report.InvalidDates)
	}

	total := len(movies)
	err = s.r.CreateMovies(ctx, movies, func(inserted int) {
		if inserted%progressEvery == 0 {
			s.logger.Info("seeding database", "inserted", inserted, "total", total)
		}
	})
	if err != nil {
		return report, fmt.Errorf("insert movies: %w", err)
	}

	report.Inserted = total
	return report, nil
}

// SeedIfEmpty seeds only when the store holds no movies. The returned bool
// is false when seeding was skipped.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (Report, bool, error) {
	populated, err := s.IsPopulated(ctx)
	if err != nil {
		return Report{}, false, err
	}
	if populated {
		s.logger.Info("database is already populated, skipping seeding")
		return Report{}, false, nil
	}

	report, err := s.Seed(ctx)
	return report, true, err
}

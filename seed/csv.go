package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"moviecatalog/errs"
	"moviecatalog/movie"
)

// DateLayout is the month/day/year format of the date_x column.
const DateLayout = "1/2/2006"

const unknown = "Unknown"

var requiredColumns = []string{
	"names", "date_x", "score", "genre", "overview", "crew",
	"orig_title", "status", "orig_lang", "budget_x", "revenue", "country",
}

type columns map[string]int

func (c columns) get(record []string, name string) string {
	idx := c[name]
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errs.Errorf(errs.EINVALID, "missing required columns in csv header: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// readMovies loads and cleans the dataset. Rows repeating an earlier
// (names, date_x) pair are skipped, blank crew and genre become "Unknown",
// non-breaking spaces are stripped from genre, and rows whose date does not
// parse are dropped. Malformed numbers fail the whole read.
func readMovies(r io.Reader) ([]movie.Movie, Report, error) {
	var report Report

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, report, errs.Errorf(errs.EINVALID, "csv file is empty")
	}
	if err != nil {
		return nil, report, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := parseHeader(header)
	if err != nil {
		return nil, report, err
	}

	seen := make(map[string]struct{})
	var movies []movie.Movie
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("read csv record: %w", err)
		}
		report.Read++
		line, _ := reader.FieldPos(0)

		date, err := time.Parse(DateLayout, strings.TrimSpace(cols.get(record, "date_x")))
		if err != nil {
			report.InvalidDates++
			continue
		}

		// keyed on the parsed date so 1/2/2022 and 01/02/2022 collide
		key := cols.get(record, "names") + "\x00" + date.Format(time.DateOnly)
		if _, dup := seen[key]; dup {
			report.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		m, err := parseRecord(cols, record)
		if err != nil {
			return nil, report, errs.Errorf(errs.EINVALID, "line %d: %s", line, err.Error())
		}
		m.Date = date
		movies = append(movies, m)
	}

	return movies, report, nil
}

func parseRecord(cols columns, record []string) (movie.Movie, error) {
	score, err := parseNumber(cols, record, "score")
	if err != nil {
		return movie.Movie{}, err
	}
	budget, err := parseNumber(cols, record, "budget_x")
	if err != nil {
		return movie.Movie{}, err
	}
	revenue, err := parseNumber(cols, record, "revenue")
	if err != nil {
		return movie.Movie{}, err
	}

	genre := strings.ReplaceAll(cols.get(record, "genre"), "\u00a0", "")

	return movie.Movie{
		Name:      cols.get(record, "names"),
		Score:     score,
		Genre:     orUnknown(genre),
		Overview:  cols.get(record, "overview"),
		Crew:      orUnknown(cols.get(record, "crew")),
		OrigTitle: cols.get(record, "orig_title"),
		Status:    strings.TrimSpace(cols.get(record, "status")),
		OrigLang:  strings.TrimSpace(cols.get(record, "orig_lang")),
		Budget:    math.Round(budget*100) / 100,
		Revenue:   revenue,
		Country:   strings.TrimSpace(cols.get(record, "country")),
	}, nil
}

func parseNumber(cols columns, record []string, name string) (float64, error) {
	raw := strings.TrimSpace(cols.get(record, name))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknown
	}
	return s
}

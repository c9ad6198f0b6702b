// ReelRank - Personalized Movie Recommendations
// Copyright 2026 ReelRank contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelrank/reelrank

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/reelrank/reelrank/internal/config"
	"github.com/reelrank/reelrank/internal/logging"
	"github.com/reelrank/reelrank/internal/models"
)

// genreSeparator joins the genre list into the single text column the
// term search runs over. It matches the actor separator so a search
// term behaves the same across both fields.
const genreSeparator = ", "

// Catalog is the DuckDB-backed movie catalog store.
//
// Catalog order is the insertion order of movies, tracked by an
// explicit seq column. FetchAll and FetchFiltered always return rows in
// that order, which the ranking engine's stable-sort guarantees depend
// on.
type Catalog struct {
	conn    *sql.DB
	breaker *gobreaker.CircuitBreaker[any]
}

// NewCatalog opens (or creates) the catalog database and initializes
// the schema.
func NewCatalog(cfg *config.DatabaseConfig) (*Catalog, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	connStr := cfg.Path
	if cfg.Path != ":memory:" {
		// Ensure the parent directory exists before DuckDB opens the file.
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("create database directory %s: %w", dbDir, err)
			}
		}
		connStr = fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
			cfg.Path, numThreads, cfg.MaxMemory)
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	c := &Catalog{
		conn: conn,
		breaker: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:    "catalog",
			Timeout: 10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// A missing movie is a lookup miss, not a store failure;
			// it must never open the breaker.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrNotFound)
			},
		}),
	}

	if err := c.initSchema(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return c, nil
}

// initSchema creates the movies table and its insertion-order sequence.
func (c *Catalog) initSchema() error {
	stmts := []string{
		`CREATE SEQUENCE IF NOT EXISTS movies_seq START 1`,
		`CREATE TABLE IF NOT EXISTS movies (
			id         INTEGER PRIMARY KEY,
			seq        BIGINT  NOT NULL,
			title      TEXT    NOT NULL,
			year       TEXT    NOT NULL DEFAULT '',
			runtime    TEXT    NOT NULL DEFAULT '',
			genres     TEXT    NOT NULL DEFAULT '',
			director   TEXT    NOT NULL DEFAULT '',
			actors     TEXT    NOT NULL DEFAULT '',
			plot       TEXT    NOT NULL DEFAULT '',
			poster_url TEXT    NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := c.conn.Exec(stmt); err != nil {
			return fmt.Errorf("init catalog schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (c *Catalog) Close() error {
	return c.conn.Close()
}

const movieColumns = `id, title, year, runtime, genres, director, actors, plot, poster_url`

// scanMovie scans one movies row.
func scanMovie(scanner interface{ Scan(...any) error }) (models.Movie, error) {
	var m models.Movie
	var genres string
	err := scanner.Scan(&m.ID, &m.Title, &m.Year, &m.Runtime, &genres,
		&m.Director, &m.Actors, &m.Plot, &m.PosterURL)
	if err != nil {
		return models.Movie{}, err
	}
	if genres != "" {
		m.Genres = strings.Split(genres, genreSeparator)
	}
	return m, nil
}

// execRead runs fn behind the circuit breaker and maps an open breaker
// to ErrUnavailable.
func (c *Catalog) execRead(fn func() (any, error)) (any, error) {
	result, err := c.breaker.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("catalog store: %w", ErrUnavailable)
		}
		return nil, err
	}
	return result, nil
}

// FetchAll returns every catalog movie in catalog (insertion) order.
func (c *Catalog) FetchAll(ctx context.Context) ([]models.Movie, error) {
	result, err := c.execRead(func() (any, error) {
		return c.queryMovies(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY seq`)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Movie), nil
}

// FetchByIDs returns the movies with the given identifiers, keyed by
// ID. IDs that do not resolve are simply absent from the result; the
// caller decides whether that is an error.
func (c *Catalog) FetchByIDs(ctx context.Context, ids []int) (map[int]models.Movie, error) {
	if len(ids) == 0 {
		return map[int]models.Movie{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id IN (` +
		strings.Join(placeholders, ",") + `)`

	result, err := c.execRead(func() (any, error) {
		return c.queryMovies(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}

	movies := result.([]models.Movie)
	byID := make(map[int]models.Movie, len(movies))
	for _, m := range movies {
		byID[m.ID] = m
	}
	return byID, nil
}

// FetchFiltered returns movies where at least one of the seven
// searchable fields contains term as a case-insensitive substring, in
// catalog order. An empty term matches every movie.
func (c *Catalog) FetchFiltered(ctx context.Context, term string) ([]models.Movie, error) {
	if term == "" {
		return c.FetchAll(ctx)
	}

	query := `SELECT ` + movieColumns + ` FROM movies WHERE
		contains(lower(title), ?) OR
		contains(lower(year), ?) OR
		contains(lower(runtime), ?) OR
		contains(lower(genres), ?) OR
		contains(lower(director), ?) OR
		contains(lower(actors), ?) OR
		contains(lower(plot), ?)
		ORDER BY seq`

	needle := strings.ToLower(term)
	args := []any{needle, needle, needle, needle, needle, needle, needle}

	result, err := c.execRead(func() (any, error) {
		return c.queryMovies(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.([]models.Movie), nil
}

// GetByID returns a single movie or ErrNotFound.
func (c *Catalog) GetByID(ctx context.Context, id int) (models.Movie, error) {
	result, err := c.execRead(func() (any, error) {
		row := c.conn.QueryRowContext(ctx,
			`SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
		m, err := scanMovie(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("get movie %d: %w", id, err)
		}
		return m, nil
	})
	if err != nil {
		return models.Movie{}, err
	}
	return result.(models.Movie), nil
}

// Upsert inserts or updates a catalog movie. An update keeps the
// movie's original catalog position.
func (c *Catalog) Upsert(ctx context.Context, m models.Movie) error {
	_, err := c.conn.ExecContext(ctx, `
		INSERT INTO movies (id, seq, title, year, runtime, genres, director, actors, plot, poster_url)
		VALUES (?, nextval('movies_seq'), ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			year = excluded.year,
			runtime = excluded.runtime,
			genres = excluded.genres,
			director = excluded.director,
			actors = excluded.actors,
			plot = excluded.plot,
			poster_url = excluded.poster_url`,
		m.ID, m.Title, m.Year, m.Runtime, strings.Join(m.Genres, genreSeparator),
		m.Director, m.Actors, m.Plot, m.PosterURL)
	if err != nil {
		return fmt.Errorf("upsert movie %d: %w", m.ID, err)
	}
	return nil
}

// Delete removes a movie from the catalog. Returns ErrNotFound if the
// ID does not resolve.
func (c *Catalog) Delete(ctx context.Context, id int) error {
	result, err := c.conn.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of catalog movies.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.conn.QueryRowContext(ctx, `SELECT count(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// SeedFromJSON loads a JSON movie catalog into an empty catalog table.
// A non-empty table is left untouched so restarts do not clobber
// catalog edits made through the API.
func (c *Catalog) SeedFromJSON(ctx context.Context, path string) (int, error) {
	count, err := c.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logging.Debug().Int("movies", count).Msg("catalog already populated, skipping seed")
		return 0, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return 0, fmt.Errorf("read catalog seed %s: %w", path, err)
	}

	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return 0, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}

	for _, m := range movies {
		if err := c.Upsert(ctx, m); err != nil {
			return 0, fmt.Errorf("seed catalog: %w", err)
		}
	}

	logging.Info().Int("movies", len(movies)).Str("path", path).Msg("catalog seeded")
	return len(movies), nil
}

// queryMovies runs a query returning movie rows.
func (c *Catalog) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []models.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

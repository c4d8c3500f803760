// Package catalog holds the compiled-in game knowledge base behind an
// in-memory SQLite store. The data never leaves the binary: every Store
// opens a private in-memory database and seeds it from the fact tables,
// so eligibility lookups are plain indexed queries and each caller
// (including each test) gets its own isolated catalog instance.
package catalog

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/virxdxk/gamerec/internal/model"
)

// Store is the read-only catalog. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though the session loop is strictly sequential.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a catalog store backed by a fresh in-memory database and
// seeds it from the compiled-in fact tables. No file is ever written.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	// A :memory: database lives on a single connection; more than one
	// would each see an empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping catalog database: %w", err)
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE games (
		name TEXT PRIMARY KEY,
		genre TEXT,
		age_rating INTEGER,
		difficulty TEXT,
		popularity TEXT
	);

	CREATE INDEX idx_games_genre ON games(genre);
	CREATE INDEX idx_games_age ON games(age_rating);
	CREATE INDEX idx_games_difficulty ON games(difficulty);
	CREATE INDEX idx_games_popularity ON games(popularity);

	CREATE TABLE platforms (
		game TEXT NOT NULL,
		platform TEXT NOT NULL,
		PRIMARY KEY (game, platform)
	);

	CREATE INDEX idx_platforms_game ON platforms(game);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// seed loads the five fact tables. The games table is the union of every
// name mentioned anywhere; columns stay NULL for facts a table does not
// carry, so lookup fallbacks and set membership behave per contract.
func (s *Store) seed() error {
	type row struct {
		genre      sql.NullString
		age        sql.NullInt64
		difficulty sql.NullString
		popularity sql.NullString
	}
	rows := make(map[string]*row)
	get := func(name string) *row {
		r, ok := rows[name]
		if !ok {
			r = &row{}
			rows[name] = r
		}
		return r
	}

	for genre, games := range genreTable {
		for _, name := range games {
			get(name).genre = sql.NullString{String: string(genre), Valid: true}
		}
	}
	for name, age := range ageTable {
		get(name).age = sql.NullInt64{Int64: int64(age), Valid: true}
	}
	for tier, games := range difficultyTable {
		for _, name := range games {
			get(name).difficulty = sql.NullString{String: string(tier), Valid: true}
		}
	}
	for tier, games := range popularityTable {
		for _, name := range games {
			get(name).popularity = sql.NullString{String: string(tier), Valid: true}
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO games (name, genre, age_rating, difficulty, popularity)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for name, r := range rows {
		if _, err := stmt.Exec(name, r.genre, r.age, r.difficulty, r.popularity); err != nil {
			return fmt.Errorf("insert game %q: %w", name, err)
		}
	}

	pstmt, err := tx.Prepare(`INSERT INTO platforms (game, platform) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer pstmt.Close()

	for platform, games := range platformTable {
		for _, name := range games {
			if _, err := pstmt.Exec(name, platform); err != nil {
				return fmt.Errorf("insert platform %q/%q: %w", platform, name, err)
			}
		}
	}

	return tx.Commit()
}

// Close closes the database and discards the in-memory catalog.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// queryNames runs a query whose single column is a game name.
func (s *Store) queryNames(query string, args ...any) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GamesByGenre returns the games of a genre, name-ordered.
// Unknown genres yield an empty set, not an error.
func (s *Store) GamesByGenre(genre model.Genre) ([]string, error) {
	return s.queryNames(`SELECT name FROM games WHERE genre = ? ORDER BY name`, string(genre))
}

// GamesByMaxAge returns every game whose minimum age rating is <= age.
// Games without an age-rating fact are excluded: membership in the
// age-eligible set requires a recorded rating.
func (s *Store) GamesByMaxAge(age int) ([]string, error) {
	return s.queryNames(`SELECT name FROM games WHERE age_rating IS NOT NULL AND age_rating <= ? ORDER BY name`, age)
}

// GamesByDifficulty returns the games of a difficulty tier, name-ordered.
func (s *Store) GamesByDifficulty(tier model.Difficulty) ([]string, error) {
	return s.queryNames(`SELECT name FROM games WHERE difficulty = ? ORDER BY name`, string(tier))
}

// GamesByPopularity returns the games of a popularity tier, name-ordered.
func (s *Store) GamesByPopularity(tier model.Popularity) ([]string, error) {
	return s.queryNames(`SELECT name FROM games WHERE popularity = ? ORDER BY name`, string(tier))
}

// GameGenre returns a game's genre, or GenreUnknown when the catalog has
// no genre fact for it.
func (s *Store) GameGenre(name string) (model.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var genre sql.NullString
	err := s.db.QueryRow(`SELECT genre FROM games WHERE name = ?`, name).Scan(&genre)
	if err == sql.ErrNoRows {
		return model.GenreUnknown, nil
	}
	if err != nil {
		return model.GenreUnknown, err
	}
	if !genre.Valid {
		return model.GenreUnknown, nil
	}
	return model.Genre(genre.String), nil
}

// GameAgeRating returns a game's minimum age rating, or the conservative
// default when the catalog has no rating fact for it.
func (s *Store) GameAgeRating(name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var age sql.NullInt64
	err := s.db.QueryRow(`SELECT age_rating FROM games WHERE name = ?`, name).Scan(&age)
	if err == sql.ErrNoRows {
		return model.DefaultAgeRating, nil
	}
	if err != nil {
		return model.DefaultAgeRating, err
	}
	if !age.Valid {
		return model.DefaultAgeRating, nil
	}
	return int(age.Int64), nil
}

// GamePlatforms returns the platforms a game is available on, ordered.
func (s *Store) GamePlatforms(name string) ([]string, error) {
	return s.queryNames(`SELECT platform FROM platforms WHERE game = ? ORDER BY platform`, name)
}

// Game returns the full record for a name. The bool reports whether the
// catalog mentions the game at all; fallback defaults are already applied
// to the returned record.
func (s *Store) Game(name string) (model.Game, bool, error) {
	s.mu.RLock()
	var genre, difficulty, popularity sql.NullString
	var age sql.NullInt64
	err := s.db.QueryRow(
		`SELECT genre, age_rating, difficulty, popularity FROM games WHERE name = ?`, name,
	).Scan(&genre, &age, &difficulty, &popularity)
	s.mu.RUnlock()

	if err == sql.ErrNoRows {
		return model.Game{}, false, nil
	}
	if err != nil {
		return model.Game{}, false, err
	}

	g := model.Game{
		Name:       name,
		Genre:      model.GenreUnknown,
		AgeRating:  model.DefaultAgeRating,
		Difficulty: model.Difficulty(difficulty.String),
		Popularity: model.Popularity(popularity.String),
	}
	if genre.Valid {
		g.Genre = model.Genre(genre.String)
	}
	if age.Valid {
		g.AgeRating = int(age.Int64)
	}

	platforms, err := s.GamePlatforms(name)
	if err != nil {
		return model.Game{}, false, err
	}
	g.Platforms = platforms

	return g, true, nil
}

// AllGenres returns the closed genre enumeration. Genres are a property
// of the domain model, not of what happens to be seeded.
func (s *Store) AllGenres() []model.Genre {
	return model.AllGenres()
}

// AllGames returns every game that has a genre fact, name-ordered.
// Tier-only entries are reachable through their tier queries but are not
// part of the displayable catalog.
func (s *Store) AllGames() ([]string, error) {
	return s.queryNames(`SELECT name FROM games WHERE genre IS NOT NULL ORDER BY name`)
}

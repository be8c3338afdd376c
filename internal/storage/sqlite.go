package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tracknote/internal/model"
)

// Store is the SQLite-backed track cache.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the track cache at the given database path.
func New(path string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys and set pragmas for performance
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *Store) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS tracks (
			track_id TEXT PRIMARY KEY NOT NULL,
			track_name TEXT NOT NULL,
			artist_name TEXT NOT NULL,
			album_name TEXT NOT NULL,
			release_date TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			popularity INTEGER NOT NULL DEFAULT 0,
			genres TEXT NOT NULL DEFAULT '',
			lyrics TEXT,
			producers TEXT NOT NULL DEFAULT '',
			writers TEXT NOT NULL DEFAULT '',
			cached_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_artist_name ON tracks(artist_name);
		CREATE INDEX IF NOT EXISTS idx_tracks_cached_at ON tracks(cached_at);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

const trackColumns = `track_id, track_name, artist_name, album_name, release_date,
	duration_ms, popularity, genres, lyrics, producers, writers, cached_at`

// All returns every cached track ordered by artist then title.
func (s *Store) All() ([]model.Track, error) {
	rows, err := s.db.Query(`
		SELECT ` + trackColumns + `
		FROM tracks
		ORDER BY artist_name COLLATE NOCASE, track_name COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTracks(rows)
}

// Search returns cached tracks whose title, artist or album contains the
// query, ordered like All. An empty query behaves exactly like All.
func (s *Store) Search(query string) ([]model.Track, error) {
	if query == "" {
		return s.All()
	}

	pattern := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT `+trackColumns+`
		FROM tracks
		WHERE track_name LIKE ? COLLATE NOCASE
		   OR artist_name LIKE ? COLLATE NOCASE
		   OR album_name LIKE ? COLLATE NOCASE
		ORDER BY artist_name COLLATE NOCASE, track_name COLLATE NOCASE
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTracks(rows)
}

// Recent returns the n most recently cached tracks, newest first.
func (s *Store) Recent(n int) ([]model.Track, error) {
	rows, err := s.db.Query(`
		SELECT `+trackColumns+`
		FROM tracks
		ORDER BY cached_at DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTracks(rows)
}

// Get returns the cached track with the given ID, or nil if absent.
func (s *Store) Get(id string) (*model.Track, error) {
	row := s.db.QueryRow(`
		SELECT `+trackColumns+`
		FROM tracks
		WHERE track_id = ?
	`, id)

	t, err := scanTrack(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Put inserts or replaces a track and stamps cached_at.
func (s *Store) Put(t model.Track) error {
	cachedAt := t.CachedAt
	if cachedAt.IsZero() {
		cachedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO tracks
			(track_id, track_name, artist_name, album_name, release_date,
			 duration_ms, popularity, genres, lyrics, producers, writers, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Title, t.Artist, t.Album, t.ReleaseDate,
		t.DurationMS, t.Popularity, t.Genres, t.Lyrics, t.Producers, t.Writers,
		cachedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Count returns the number of cached tracks.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrack(row scanner) (model.Track, error) {
	var t model.Track
	var lyrics sql.NullString
	var cachedAt string

	err := row.Scan(
		&t.ID, &t.Title, &t.Artist, &t.Album, &t.ReleaseDate,
		&t.DurationMS, &t.Popularity, &t.Genres, &lyrics, &t.Producers, &t.Writers,
		&cachedAt,
	)
	if err != nil {
		return model.Track{}, err
	}

	if lyrics.Valid {
		t.Lyrics = &lyrics.String
	}
	t.CachedAt, _ = time.Parse(time.RFC3339, cachedAt)

	return t, nil
}

func scanTracks(rows *sql.Rows) ([]model.Track, error) {
	tracks := []model.Track{}
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tracks, nil
}

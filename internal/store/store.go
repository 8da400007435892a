package store

import (
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Driver names a registered database/sql SQLite driver.
type Driver string

const (
	// DriverCGO is github.com/mattn/go-sqlite3.
	DriverCGO Driver = "sqlite3"
	// DriverPure is modernc.org/sqlite, for builds without cgo.
	DriverPure Driver = "sqlite"
)

// Store is the SQLite data access layer for the catalog's six tables.
type Store struct {
	db      *sql.DB
	driver  Driver
	queries atomic.Int64
}

// StoreOption configures NewStore.
type StoreOption func(*Store)

// WithDriver selects the SQLite driver. The default is DriverCGO.
func WithDriver(d Driver) StoreOption {
	return func(s *Store) {
		s.driver = d
	}
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string, opts ...StoreOption) (*Store, error) {
	s := &Store{driver: DriverCGO}
	for _, opt := range opts {
		opt(s)
	}

	dsn, err := s.dsn(dbPath)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(string(s.driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s.db = db
	return s, nil
}

// dsn builds the driver-specific connection string. Both drivers get the
// same pragmas; only the query syntax differs.
func (s *Store) dsn(dbPath string) (string, error) {
	switch s.driver {
	case DriverCGO:
		return dbPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000", nil
	case DriverPure:
		return "file:" + dbPath +
			"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(30000)", nil
	default:
		return "", fmt.Errorf("unknown sqlite driver %q", s.driver)
	}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *Store) DB() *sql.DB {
	return s.db
}

// QueryCount returns how many read statements the store has issued.
func (s *Store) QueryCount() int64 {
	return s.queries.Load()
}

func (s *Store) query(query string, args ...any) (*sql.Rows, error) {
	s.queries.Add(1)
	return s.db.Query(query, args...)
}

func (s *Store) queryRow(query string, args ...any) *sql.Row {
	s.queries.Add(1)
	return s.db.QueryRow(query, args...)
}

// Migrate creates all tables and indexes. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Reset drops every catalog table and recreates the schema. Only the offline
// loader calls this, before any read traffic.
func (s *Store) Reset() error {
	// Junctions first so foreign keys never dangle mid-drop.
	for _, table := range []string{
		"casino_payment_methods", "casino_software",
		"slots", "payment_methods", "software_providers", "casinos",
	} {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("reset: drop %s: %w", table, err)
		}
	}
	return s.Migrate()
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS casinos (
  id                   TEXT PRIMARY KEY,
  name                 TEXT NOT NULL,
  website_url          TEXT,
  established          INTEGER,
  license              TEXT,
  owner                TEXT,
  payout_speed_minutes INTEGER,
  payout_ratio         REAL,
  theme_color          TEXT,
  logo_url             TEXT,
  thumbnail_url        TEXT,
  bonus_offer          TEXT,
  bonus_spins          INTEGER
);

CREATE TABLE IF NOT EXISTS software_providers (
  id        TEXT PRIMARY KEY,
  name      TEXT NOT NULL,
  logo_url  TEXT
);

CREATE TABLE IF NOT EXISTS slots (
  slug          TEXT PRIMARY KEY,
  title         TEXT NOT NULL,
  provider_id   TEXT REFERENCES software_providers(id),
  rtp           REAL,
  volatility    TEXT,
  max_win       TEXT,
  paylines      TEXT,
  release_date  TEXT,
  description   TEXT,
  image_url     TEXT,
  featured      BOOLEAN NOT NULL DEFAULT FALSE,
  min_bet       REAL,
  max_bet       REAL,
  layout        TEXT,
  features      TEXT
);

CREATE TABLE IF NOT EXISTS payment_methods (
  id              TEXT PRIMARY KEY,
  name            TEXT NOT NULL,
  logo_url        TEXT,
  description     TEXT,
  type            TEXT,
  avg_speed       TEXT,
  fees            TEXT,
  min_deposit     REAL,
  max_withdrawal  REAL,
  pros            TEXT,
  cons            TEXT
);

CREATE TABLE IF NOT EXISTS casino_software (
  casino_id    TEXT NOT NULL REFERENCES casinos(id),
  provider_id  TEXT NOT NULL REFERENCES software_providers(id),
  PRIMARY KEY (casino_id, provider_id)
);

CREATE TABLE IF NOT EXISTS casino_payment_methods (
  casino_id  TEXT NOT NULL REFERENCES casinos(id),
  method_id  TEXT NOT NULL REFERENCES payment_methods(id),
  PRIMARY KEY (casino_id, method_id)
);

CREATE INDEX IF NOT EXISTS idx_casinos_name ON casinos(name);
CREATE INDEX IF NOT EXISTS idx_casinos_payout_ratio ON casinos(payout_ratio);
CREATE INDEX IF NOT EXISTS idx_slots_provider ON slots(provider_id);
CREATE INDEX IF NOT EXISTS idx_slots_title ON slots(title);
CREATE INDEX IF NOT EXISTS idx_casino_software_provider ON casino_software(provider_id);
CREATE INDEX IF NOT EXISTS idx_casino_payment_methods_method ON casino_payment_methods(method_id);
`

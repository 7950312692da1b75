package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"github.com/arloliu/rota/types"
)

// DefaultTable is the profile table read by SQL.
const DefaultTable = "profiles"

const (
	sqliteDriver   = "sqlite"
	postgresDriver = "pgx"
)

// SQL reads profiles from a relational table.
//
// The table layout is portable across SQLite and PostgreSQL:
//
//	CREATE TABLE profiles (
//	    id    TEXT PRIMARY KEY,
//	    name  TEXT NOT NULL,
//	    age   INTEGER NOT NULL,
//	    roles TEXT NOT NULL DEFAULT '[]'  -- JSON array of role names
//	)
//
// Rows are returned ordered by name, then id.
type SQL struct {
	db    *sql.DB
	table string
}

var _ types.ProfileSource = (*SQL)(nil)

// SQLOption configures an SQL source.
type SQLOption func(*SQL)

// WithTable overrides the table name.
//
// The name must be a plain identifier (letters, digits, underscore); other
// values are ignored.
func WithTable(name string) SQLOption {
	return func(s *SQL) {
		if isIdentifier(name) {
			s.table = name
		}
	}
}

// NewSQL creates a profile source over an open database handle.
//
// The caller owns db and is responsible for closing it.
//
// Example:
//
//	db, err := source.OpenSQLite(ctx, "rota.db")
//	if err != nil { /* handle */ }
//	defer db.Close()
//	src := source.NewSQL(db)
func NewSQL(db *sql.DB, opts ...SQLOption) *SQL {
	s := &SQL{db: db, table: DefaultTable}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListProfiles queries the profile table.
//
// Returns:
//   - []types.Profile: Profiles ordered by name, then id
//   - error: Query failure, or types.ErrInvalidProfile for undecodable or invalid rows
func (s *SQL) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, age, roles FROM "+s.table+" ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	profiles := []types.Profile{}
	for rows.Next() {
		var (
			p     types.Profile
			roles string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &roles); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		if roles != "" {
			if err := json.Unmarshal([]byte(roles), &p.Roles); err != nil {
				return nil, fmt.Errorf("%w: roles of %q: %w", types.ErrInvalidProfile, p.ID, err)
			}
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	if err := validateProfiles(profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// EnsureSchema creates the profile table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	if table == "" {
		table = DefaultTable
	}
	if !isIdentifier(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		roles TEXT NOT NULL DEFAULT '[]'
	)`); err != nil {
		return fmt.Errorf("create %s table: %w", table, err)
	}

	return nil
}

// OpenSQLite opens (creating if needed) a SQLite database at path and ensures
// the default profile table exists.
//
// Parameters:
//   - ctx: Context for schema creation
//   - path: Database file path (directories are created)
//
// Returns:
//   - *sql.DB: Open handle owned by the caller
//   - error: Open or schema error
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = "rota.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := EnsureSchema(ctx, db, DefaultTable); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenPostgres connects to PostgreSQL through pgx and ensures the default
// profile table exists.
//
// Parameters:
//   - ctx: Context for ping and schema creation
//   - dsn: Connection string (e.g., "postgres://localhost/rota?sslmode=disable")
//
// Returns:
//   - *sql.DB: Open handle owned by the caller
//   - error: Open, ping or schema error
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(postgresDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := EnsureSchema(ctx, db, DefaultTable); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

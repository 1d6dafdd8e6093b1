// Package sqlite implements the repository interfaces on an embedded SQLite
// database, for single-host deployments (STORE_DRIVER=sqlite) and as the
// in-process store in tests (":memory:").
//
// DOCUMENTS IN A RELATIONAL FILE:
// Destinations and users have fixed fields, so they get ordinary columns.
// Messages are schema-less, so their body is stored as a JSON object in a TEXT
// column and decoded back into a map on read.
//
// The driver is modernc.org/sqlite, a pure Go translation of SQLite, so the
// binary builds without cgo.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/xid"
	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sakif/travel-blog/internal/repository"
)

var _ repository.Store = (*DB)(nil)

// DB wraps a sql.DB connection pool and hands out one repository per
// collection. All three share the same pool.
type DB struct {
	conn         *sql.DB
	destinations *DestinationDB
	users        *UserDB
	messages     *MessageDB
}

// New opens the SQLite database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/travel-blog.db" → file-based database (persistent)
//   - ":memory:"            → in-memory database (tests)
func New(dbPath string) (*DB, error) {
	// "sqlite" is the driver name registered by modernc.org/sqlite.
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory database lives and dies with its connection; a pool of
	// several connections would see several unrelated databases.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets readers proceed while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	db.destinations = &DestinationDB{conn: conn}
	db.users = &UserDB{conn: conn}
	db.messages = &MessageDB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

func (db *DB) Destinations() repository.DestinationRepository { return db.destinations }
func (db *DB) Users() repository.UserRepository               { return db.users }
func (db *DB) Messages() repository.MessageRepository         { return db.messages }

// Ping verifies the database file is still usable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return nil
}

// Close closes the connection pool. The context is unused; it is part of
// the Store contract because MongoDB needs one to disconnect.
func (db *DB) Close(_ context.Context) error {
	return db.conn.Close()
}

// migrate creates the tables. CREATE ... IF NOT EXISTS makes every statement
// safe to re-run on an existing file.
func (db *DB) migrate() error {
	// rowid preserves insertion order, which is what "natural order" means
	// for destination listings.
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS destinations (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			img_src     TEXT NOT NULL,
			is_popular  INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_destinations_is_popular ON destinations(is_popular);
	`)
	if err != nil {
		return fmt.Errorf("creating destinations table: %w", err)
	}

	// UNIQUE(username) closes the check-then-insert race in registration.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// created_at is Unix milliseconds, the same precision as a BSON date.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS messages (
			id         TEXT PRIMARY KEY,
			body       TEXT NOT NULL DEFAULT '{}',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating messages table: %w", err)
	}

	return nil
}

// validID reports whether id has the shape of an xid. Anything else cannot
// match a stored row and is treated as not found by the callers.
func validID(id string) bool {
	_, err := xid.FromString(id)
	return err == nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Some builds report only the primary result code.
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}

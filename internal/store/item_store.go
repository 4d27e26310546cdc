package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"brewstock/internal/model"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("item not found")

const sqliteFileName = "brewstock.sqlite"

// Store locates a brewstock data directory. The zero value is not usable;
// set Dir (or resolve one via DefaultDir).
type Store struct {
	Dir string
}

func (s Store) sqlitePath() string {
	return filepath.Join(filepath.Clean(s.Dir), sqliteFileName)
}

// Ensure creates the data directory if missing.
func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store: empty dir")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

// DB is an open handle to the items table. One per page of work; callers
// Close when done. All operations are atomic at single-record granularity.
type DB struct {
	sql *sql.DB
}

// Open opens (and on first-ever open provisions) the SQLite store.
// Failure is reported to the caller; nothing here is fatal.
func (s Store) Open(ctx context.Context) (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a CLI runs alongside the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		stock REAL NOT NULL,
		unit TEXT NOT NULL,
		low_alert REAL NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	return d.sql.Close()
}

// ListAll returns every item, unordered. Callers sort.
func (d *DB) ListAll(ctx context.Context) ([]model.Item, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT id, name, category, stock, unit, low_alert FROM items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Stock, &it.Unit, &it.LowAlert); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one item or ErrNotFound.
func (d *DB) GetByID(ctx context.Context, id int64) (model.Item, error) {
	var it model.Item
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, name, category, stock, unit, low_alert FROM items WHERE id = ?`, id).
		Scan(&it.ID, &it.Name, &it.Category, &it.Stock, &it.Unit, &it.LowAlert)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// Insert stores a new item (ID must be 0) and returns the assigned id.
func (d *DB) Insert(ctx context.Context, it model.Item) (int64, error) {
	if it.ID != 0 {
		return 0, fmt.Errorf("insert: item already has id %d", it.ID)
	}
	res, err := d.sql.ExecContext(ctx,
		`INSERT INTO items(name, category, stock, unit, low_alert) VALUES(?, ?, ?, ?, ?)`,
		it.Name, it.Category, it.Stock, it.Unit, it.LowAlert)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Put replaces the item with matching id, creating the row if absent.
func (d *DB) Put(ctx context.Context, it model.Item) error {
	if it.ID == 0 {
		return errors.New("put: item has no id")
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT OR REPLACE INTO items(id, name, category, stock, unit, low_alert) VALUES(?, ?, ?, ?, ?, ?)`,
		it.ID, it.Name, it.Category, it.Stock, it.Unit, it.LowAlert)
	return err
}

// DeleteByID removes the item. Deleting an absent id is a no-op, not an error.
func (d *DB) DeleteByID(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	return err
}

// AdjustStock applies a signed delta to an item's stock, clamped at 0.
//
// This is a single UPDATE so two adjustments can never lose each other's
// write the way a read-modify-write pair can. Adjusting an id that no longer
// exists (e.g. racing a delete) returns ErrNotFound and changes nothing;
// callers that treat that as a no-op may ignore it.
func (d *DB) AdjustStock(ctx context.Context, id int64, delta float64) error {
	res, err := d.sql.ExecContext(ctx,
		`UPDATE items SET stock = MAX(0, stock + ?) WHERE id = ?`, delta, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"brewstock/internal/model"
)

// ImportItems loads items into the store inside one transaction.
//
// This is intended for backup/restore workflows, not day-to-day mutations.
// With replace set, the existing table is cleared first so the store ends up
// exactly matching the input. Items carrying an id keep it; items without one
// get a fresh id.
func (d *DB) ImportItems(ctx context.Context, items []model.Item, replace bool) error {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM items;`); err != nil {
			return err
		}
	}

	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return errors.New("import: item has empty name")
		}
		if it.ID != 0 {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO items(id, name, category, stock, unit, low_alert) VALUES(?, ?, ?, ?, ?, ?)`,
				it.ID, it.Name, it.Category, it.Stock, it.Unit, it.LowAlert); err != nil {
				return err
			}
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items(name, category, stock, unit, low_alert) VALUES(?, ?, ?, ?, ?)`,
			it.Name, it.Category, it.Stock, it.Unit, it.LowAlert); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// WriteItemsJSONL writes items as JSONL (one item per line).
func WriteItemsJSONL(path string, items []model.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadItemsJSONL reads items from a JSONL file. Blank lines are skipped.
func ReadItemsJSONL(path string) ([]model.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []model.Item
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var it model.Item
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			return nil, fmt.Errorf("parse items jsonl: %w", err)
		}
		out = append(out, it)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Item{}
	}
	return out, nil
}

// BackupDatabase copies the SQLite file to dest. The WAL is checkpointed
// first so the copy is a complete, self-contained database.
func (s Store) BackupDatabase(ctx context.Context, dest string) error {
	db, err := s.Open(ctx)
	if err != nil {
		return err
	}
	if _, err := db.sql.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE);`); err != nil {
		_ = db.Close()
		return fmt.Errorf("backup: %w", err)
	}
	if err := db.Close(); err != nil {
		return err
	}
	return copyFile(s.sqlitePath(), dest)
}

func copyFile(src string, dest string) error {
	src = filepath.Clean(src)
	dest = filepath.Clean(dest)
	if src == "" || dest == "" {
		return errors.New("copy file: missing src/dest")
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"
)

const snapshotFileName = "snapshot.json"

// snapshotFile is the on-disk shape of the passive JSON export.
type snapshotFile struct {
	Version   int            `json:"version"`
	WrittenAt time.Time      `json:"writtenAt"`
	Items     []itemSnapshot `json:"items"`
}

type itemSnapshot struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    float64 `json:"stock"`
	Unit     string  `json:"unit"`
	LowAlert float64 `json:"lowAlert"`
}

func (s Store) snapshotPath() string {
	return filepath.Join(filepath.Clean(s.Dir), snapshotFileName)
}

// WriteSnapshot exports the current items to a plain JSON file next to the
// SQLite db, so the data stays readable without any SQLite tooling.
//
// This is registered once at startup and never consulted again by the app;
// callers treat failures as advisory.
func (s Store) WriteSnapshot(ctx context.Context) error {
	db, err := s.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	items, err := db.ListAll(ctx)
	if err != nil {
		return err
	}
	snap := snapshotFile{Version: 1, WrittenAt: time.Now().UTC()}
	for _, it := range items {
		snap.Items = append(snap.Items, itemSnapshot(it))
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, snapshotFileName+".*.tmp", s.snapshotPath(), b, 0o644)
}

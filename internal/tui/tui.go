package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"brewstock/internal/store"
)

// Run starts the interactive TUI against the given store.
//
// The store is opened once up front so a storage-access failure surfaces as
// an error before the terminal is put into the alt screen; with no working
// store the app has nothing to do.
func Run(s store.Store) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		cfg = &store.GlobalConfig{}
	}
	applyColorProfilePreference()
	applyThemePreference(cfg)
	applyGlyphPreference(cfg)

	db, err := s.Open(context.Background())
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	_ = db.Close()

	// Persist preferences on the way out. Advisory, like the snapshot.
	defer persistConfig(cfg)

	m := newAppModel(s)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func persistConfig(cfg *store.GlobalConfig) {
	_ = store.SaveConfig(cfg)
}

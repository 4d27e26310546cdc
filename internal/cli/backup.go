package cli

import (
	"sort"

	"brewstock/internal/inventory"
	"brewstock/internal/store"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all items to a JSONL file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			items, err := db.ListAll(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			// Stable output: export in id order regardless of row order.
			sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

			if err := store.WriteItemsJSONL(out, items); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"file":  out,
				"items": len(items),
			}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "items.jsonl", "Destination file")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import items from a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := store.ReadItemsJSONL(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			// Validate up front so a bad file never half-imports. The parsed
			// values are kept, so clamping applies to imports too.
			for i, it := range items {
				parsed, err := inventory.ParseForm(inventory.FormFromItem(it))
				if err != nil {
					return writeErr(cmd, err)
				}
				parsed.ID = it.ID
				items[i] = parsed
			}

			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			if err := db.ImportItems(ctx, items, replace); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"imported": len(items),
				"replaced": replace,
			}})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Clear existing items before importing")
	return cmd
}

func newBackupCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the database file to a backup location",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.BackupDatabase(ctx, out); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"file": out}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "brewstock-backup.sqlite", "Destination file")
	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"brewstock/internal/format"
	"brewstock/internal/inventory"
	"brewstock/internal/model"
	"brewstock/internal/store"

	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item commands",
	}

	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsShowCmd(app))
	cmd.AddCommand(newItemsAddCmd(app))
	cmd.AddCommand(newItemsSetCmd(app))
	cmd.AddCommand(newItemsUseCmd(app))
	cmd.AddCommand(newItemsRmCmd(app))

	return cmd
}

func openDB(app *App, ctx context.Context) (*store.DB, error) {
	s, err := resolveStore(app)
	if err != nil {
		return nil, err
	}
	return s.Open(ctx)
}

func parseItemID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id: %q", arg)
	}
	return id, nil
}

func newItemsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items (sorted by name)",
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
			inventory.SortByName(items)

			if app.Format == "text" {
				rows := make([][]string, 0, len(items))
				for _, it := range items {
					low := ""
					if it.Low() {
						low = "LOW"
					}
					rows = append(rows, []string{
						strconv.FormatInt(it.ID, 10),
						it.Name,
						inventory.FormatStock(it.Stock),
						it.Unit,
						it.Category,
						low,
					})
				}
				return format.WriteTable(cmd.OutOrStdout(),
					[]string{"ID", "NAME", "STOCK", "UNIT", "CATEGORY", ""}, rows)
			}
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}
}

func newItemsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			it, err := db.GetByID(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				return writeErr(cmd, errNotFound(id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeItem(cmd, app, it)
		},
	}
}

func newItemsAddCmd(app *App) *cobra.Command {
	var f inventory.ItemForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			it, err := inventory.ParseForm(f)
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			id, err := db.Insert(ctx, it)
			if err != nil {
				return writeErr(cmd, err)
			}
			it.ID = id
			return writeItem(cmd, app, it)
		},
	}

	addItemFormFlags(cmd, &f)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("stock")
	return cmd
}

func newItemsSetCmd(app *App) *cobra.Command {
	var f inventory.ItemForm

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Replace an item's fields (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			cur, err := db.GetByID(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				return writeErr(cmd, errNotFound(id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			merged := inventory.FormFromItem(cur)
			if cmd.Flags().Changed("name") {
				merged.Name = f.Name
			}
			if cmd.Flags().Changed("category") {
				merged.Category = f.Category
			}
			if cmd.Flags().Changed("stock") {
				merged.Stock = f.Stock
			}
			if cmd.Flags().Changed("unit") {
				merged.Unit = f.Unit
			}
			if cmd.Flags().Changed("low-alert") {
				merged.LowAlert = f.LowAlert
			}

			it, err := inventory.ParseForm(merged)
			if err != nil {
				return writeErr(cmd, err)
			}
			it.ID = id
			if err := db.Put(ctx, it); err != nil {
				return writeErr(cmd, err)
			}
			return writeItem(cmd, app, it)
		},
	}

	addItemFormFlags(cmd, &f)
	return cmd
}

func newItemsUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id> <amount>",
		Short: "Decrement an item's stock (clamped at 0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			amount, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil || amount <= 0 {
				return writeErr(cmd, fmt.Errorf("invalid amount: %q", args[1]))
			}
			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			if err := db.AdjustStock(ctx, id, -amount); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return writeErr(cmd, errNotFound(id))
				}
				return writeErr(cmd, err)
			}
			it, err := db.GetByID(ctx, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeItem(cmd, app, it)
		},
	}
}

func newItemsRmCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := openDB(app, ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer db.Close()

			it, err := db.GetByID(ctx, id)
			if errors.Is(err, store.ErrNotFound) {
				return writeErr(cmd, errNotFound(id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			if !yes {
				// Prompt on stderr: stdout stays machine-readable even when
				// a script forgets --yes.
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete %q permanently? [y/N] ", it.Name)
				var answer string
				_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": false}})
				}
			}

			if err := db.DeleteByID(ctx, id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": true, "id": id}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func addItemFormFlags(cmd *cobra.Command, f *inventory.ItemForm) {
	cmd.Flags().StringVar(&f.Name, "name", "", "Item name")
	cmd.Flags().StringVar(&f.Category, "category", "", "Free-form category")
	cmd.Flags().StringVar(&f.Stock, "stock", "", "Current quantity")
	cmd.Flags().StringVar(&f.Unit, "unit", "", "Measurement label (kg, L, ...)")
	cmd.Flags().StringVar(&f.LowAlert, "low-alert", "", "Low-stock threshold (default 0)")
}

func writeItem(cmd *cobra.Command, app *App, it model.Item) error {
	if app.Format == "text" {
		low := ""
		if it.Low() {
			low = "LOW"
		}
		return format.WriteTable(cmd.OutOrStdout(),
			[]string{"ID", "NAME", "STOCK", "UNIT", "CATEGORY", ""},
			[][]string{{
				strconv.FormatInt(it.ID, 10),
				it.Name,
				inventory.FormatStock(it.Stock),
				it.Unit,
				it.Category,
				low,
			}})
	}
	return writeOut(cmd, app, map[string]any{"data": it})
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"brewstock/internal/format"
	"brewstock/internal/store"
	"brewstock/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "brewstock",
		Short:        "Brewstock (local-first) inventory CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  brewstock

  # Scriptable commands
  brewstock items list
  brewstock items add --name Hops --stock 5 --unit kg --low-alert 2
  brewstock items use 3 0.5
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("BREWSTOCK_DIR", ""), "Path to data dir (default: ~/.brewstock/data)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("BREWSTOCK_FORMAT", "json"), "Output format (json|text)")

	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newBackupCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := resolveStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func resolveStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

package cli

import (
	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the local store opens and report its contents",
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

			low := 0
			for _, it := range items {
				if it.Low() {
					low++
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":      app.Dir,
					"items":    len(items),
					"lowStock": low,
				},
			})
		},
	}
	return cmd
}

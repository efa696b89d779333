package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/domain/schedule"
)

var (
	listFormat   string
	listPage     int
	listPageSize int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Schedules.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load schedules: %w", err)
		}

		pageSize := listPageSize
		if pageSize == 0 {
			_, pageSize = app.Schedules.Page()
		}
		app.Schedules.SetPage(listPage, pageSize)

		rows := app.Schedules.VisibleWindow()

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rows)
		}

		return printSchedulesTable(app, rows)
	},
}

func printSchedulesTable(app *client.App, rows []schedule.Schedule) error {
	if len(rows) == 0 {
		fmt.Println("No schedules found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTitle\tStart\tEnd\tColor\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")

	for _, s := range rows {
		start := "-"
		if !s.Start.IsZero() {
			start = s.Start.String()
		}
		end := "-"
		if !s.End.IsZero() {
			end = s.End.String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			shortID(s.ID),
			truncate(s.Title, 40),
			start,
			end,
			s.Color,
		)
	}
	w.Flush()

	page, pageSize := app.Schedules.Page()
	pages := (app.Schedules.Len() + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	fmt.Printf("\nPage %d of %d, %d schedules total\n", page, pages, app.Schedules.Len())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	ListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "rows per page, 0 keeps the configured size")
}

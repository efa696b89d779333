package battery

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/domain/battery"
	"fieldassets/internal/utils/dates"
)

var (
	listFormat    string
	listPage      int
	listPageSize  int
	filterProduct []string
	filterLoc     []string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List batteries",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Batteries.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load batteries: %w", err)
		}

		products := make([]any, 0, len(filterProduct))
		for _, p := range filterProduct {
			products = append(products, p)
		}
		app.Batteries.SetFilter(battery.ColProductName, products...)

		locations := make([]any, 0, len(filterLoc))
		for _, l := range filterLoc {
			locations = append(locations, l)
		}
		app.Batteries.SetFilter(battery.ColLocationName, locations...)

		pageSize := listPageSize
		if pageSize == 0 {
			_, pageSize = app.Batteries.Page()
		}
		app.Batteries.SetPage(listPage, pageSize)

		rows := app.Batteries.VisibleWindow()

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rows)
		}

		return printBatteriesTable(app, rows)
	},
}

func printBatteriesTable(app *client.App, rows []battery.Battery) error {
	if len(rows) == 0 {
		fmt.Println("No batteries found")
		return nil
	}

	due := color.New(color.FgHiYellow, color.Bold)
	now := time.Now()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tProduct\tLocation\tState\tDue\tFolder\tMarks\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t\n")

	for _, b := range rows {
		dueCell := "-"
		if !b.DueDate.IsZero() {
			dueCell = b.DueDate.String()
			if dates.DueSoon(b.DueDate, now) {
				dueCell = due.Sprint(dueCell)
			}
		}

		state := "ok"
		if !b.State {
			state = "out"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			shortID(b.ID),
			b.ProductName,
			b.LocationName,
			state,
			dueCell,
			b.FolderName,
			truncate(b.Marks, 20),
		)
	}
	w.Flush()

	page, pageSize := app.Batteries.Page()
	pages := (app.Batteries.Len() + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	fmt.Printf("\nPage %d of %d, %d batteries total\n", page, pages, app.Batteries.Len())
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
	ListCmd.Flags().StringArrayVar(&filterProduct, "product", nil, "filter by product, repeatable")
	ListCmd.Flags().StringArrayVar(&filterLoc, "location", nil, "filter by location, repeatable")
}

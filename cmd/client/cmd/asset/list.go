package asset

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/domain/asset"
	"fieldassets/internal/utils/dates"
)

var (
	listFormat   string
	listPage     int
	listPageSize int
	filterBrand  []string
	filterLoc    []string
	showLookups  bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets",
	Long: `Shows the asset table. Filters accept repeated values: rows matching
any value of a flag pass, and separate flags must all match. Calibration
dates falling within the next seven days are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Assets.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load assets: %w", err)
		}

		if showLookups {
			return printLookups(app)
		}

		brands := make([]any, 0, len(filterBrand))
		for _, b := range filterBrand {
			brands = append(brands, b)
		}
		app.Assets.SetFilter(asset.ColBrandName, brands...)

		locations := make([]any, 0, len(filterLoc))
		for _, l := range filterLoc {
			locations = append(locations, l)
		}
		app.Assets.SetFilter(asset.ColLocationName, locations...)

		pageSize := listPageSize
		if pageSize == 0 {
			_, pageSize = app.Assets.Page()
		}
		app.Assets.SetPage(listPage, pageSize)

		rows := app.Assets.VisibleWindow()

		switch listFormat {
		case "json":
			return printAssetsJSON(rows)
		default:
			return printAssetsTable(app, rows)
		}
	},
}

func printAssetsTable(app *client.App, rows []asset.Asset) error {
	if len(rows) == 0 {
		fmt.Println("No assets found")
		return nil
	}

	due := color.New(color.FgHiYellow, color.Bold)
	now := time.Now()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tBrand\tName\tLocation\tState\tCalibrated\tNext\tRented\tMarks\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t---\t---\t\n")

	for _, a := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			shortID(a.ID),
			a.BrandName,
			truncate(a.AssetName, 30),
			a.LocationName,
			boolMark(a.State),
			dayCell(a.CalibrationDate, now, due),
			dayCell(a.NextCalibration, now, due),
			boolMark(a.RentState),
			truncate(a.Marks, 20),
		)
	}
	w.Flush()

	page, pageSize := app.Assets.Page()
	pages := (app.Assets.Len() + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	fmt.Printf("\nPage %d of %d, %d assets total\n", page, pages, app.Assets.Len())
	return nil
}

func printAssetsJSON(rows []asset.Asset) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func printLookups(app *client.App) error {
	fmt.Println("Brands:")
	for _, name := range app.Assets.FilterOptions(asset.ColBrandName) {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Locations:")
	for _, name := range app.Assets.FilterOptions(asset.ColLocationName) {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func dayCell(d dates.Day, now time.Time, due *color.Color) string {
	if d.IsZero() {
		return "-"
	}
	if dates.DueSoon(d, now) {
		return due.Sprint(d.String())
	}
	return d.String()
}

func boolMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
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
	ListCmd.Flags().StringArrayVar(&filterBrand, "brand", nil, "filter by brand, repeatable")
	ListCmd.Flags().StringArrayVar(&filterLoc, "location", nil, "filter by location, repeatable")
	ListCmd.Flags().BoolVar(&showLookups, "options", false, "print filter options instead of rows")
}

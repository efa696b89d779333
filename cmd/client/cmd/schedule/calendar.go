package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/utils/dates"
)

var (
	calendarYear  int
	calendarMonth int
)

var CalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the schedule calendar",
	Long: `Renders a month-by-month calendar for one year. Days covered by at
least one schedule entry are highlighted. With --month, entries for
that month are listed below the grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Calendar.SetYear(cmd.Context(), calendarYear); err != nil {
			return fmt.Errorf("failed to load calendar: %w", err)
		}

		if calendarMonth != 0 {
			if calendarMonth < 1 || calendarMonth > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", calendarMonth)
			}
			printMonth(app, calendarYear, time.Month(calendarMonth))
			printMonthEntries(app, calendarYear, time.Month(calendarMonth))
			return nil
		}

		for m := time.January; m <= time.December; m++ {
			printMonth(app, calendarYear, m)
		}
		return nil
	},
}

const gridWidth = len("Mo Tu We Th Fr Sa Su")

func printMonth(app *client.App, year int, month time.Month) {
	title := color.New(color.FgWhite, color.Italic)
	free := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiGreen)

	name := fmt.Sprintf("%s %d", month.String(), year)
	mid := (gridWidth - len(name)) / 2
	if mid < 0 {
		mid = 0
	}
	title.Printf("%s%s\n", strings.Repeat(" ", mid), name)
	fmt.Println("Mo Tu We Th Fr Sa Su")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := daysIn(year, month)

	// Monday-based week offset.
	offset := (int(first.Weekday()) + 6) % 7
	fmt.Print(strings.Repeat("   ", offset))

	weekday := offset
	for d := 1; d <= days; d++ {
		day := dates.FromTime(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		if len(app.Calendar.RecordsOn(day)) > 0 {
			busy.Printf("%2d ", d)
		} else {
			free.Printf("%2d ", d)
		}

		weekday++
		if weekday == 7 {
			weekday = 0
			fmt.Print("\n")
		}
	}
	if weekday != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

func printMonthEntries(app *client.App, year int, month time.Month) {
	seen := map[string]bool{}

	for d := 1; d <= daysIn(year, month); d++ {
		day := dates.FromTime(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		for _, s := range app.Calendar.RecordsOn(day) {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			fmt.Printf("%s - %s  %s\n", s.Start, s.End, s.Title)
		}
	}

	if len(seen) == 0 {
		fmt.Println("No entries this month")
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func init() {
	CalendarCmd.Flags().IntVarP(&calendarYear, "year", "y", time.Now().Year(), "calendar year")
	CalendarCmd.Flags().IntVarP(&calendarMonth, "month", "m", 0, "show a single month with its entries")
}

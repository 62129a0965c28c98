package cli

import (
	"fmt"

	"github.com/larderhq/larder/internal/config"
	"github.com/spf13/cobra"
)

var (
	agendaDays     int
	agendaPastDays int
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show upcoming meal events from the calendar",
	Long: `Show meal events from the configured calendar.

Reads directly from Calendar.app, so it also picks up events created
outside Larder.`,
	RunE: runAgenda,
}

func init() {
	agendaCmd.Flags().IntVar(&agendaDays, "days", 7, "how many days ahead to look")
	agendaCmd.Flags().IntVar(&agendaPastDays, "past-days", 0, "how many past days to include")
}

func runAgenda(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("agenda", fmt.Errorf("load config: %w", err))
	}

	events, err := newCalendarClient(cfg).ListEvents(cmd.Context(), agendaDays, agendaPastDays)
	if err != nil {
		return trackCLIError("agenda", fmt.Errorf("read calendar: %w", err))
	}

	if len(events) == 0 {
		fmt.Printf("No meal events on %q in the next %d days.\n", cfg.Calendar.Name, agendaDays)
		return nil
	}

	fmt.Printf("%s calendar (next %d days)\n", cfg.Calendar.Name, agendaDays)
	for _, evt := range events {
		fmt.Printf("  %s %s  %s\n", evt.Date, evt.Time, evt.Title)
	}
	return nil
}

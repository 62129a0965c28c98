// Package calendar schedules and lists meal events in Calendar.app.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/larderhq/larder/internal/applescript"
)

// fieldSep separates event fields in script output.
const fieldSep = "|||"

// Client talks to a single named calendar.
type Client struct {
	runner   applescript.Runner
	calendar string
}

// New creates a calendar client for the named calendar.
func New(runner applescript.Runner, calendarName string) *Client {
	return &Client{runner: runner, calendar: calendarName}
}

// Result reports the outcome of a scheduling call. Failures are carried in
// the result rather than returned as errors so callers can branch on them
// without unwinding.
type Result struct {
	Success  bool   `json:"success"`
	Title    string `json:"title,omitempty"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Calendar string `json:"calendar,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Event is a scheduled meal read back from the calendar.
type Event struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// ScheduleEvent creates a one-hour event titled title starting at date
// (YYYY-MM-DD) and timeOfDay (HH:MM, 24-hour).
func (c *Client) ScheduleEvent(ctx context.Context, title, date, timeOfDay string) Result {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("invalid date %q: must be YYYY-MM-DD", date)}
	}
	clock, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("invalid time %q: must be HH:MM", timeOfDay)}
	}

	script := fmt.Sprintf(`
	tell application "Calendar"
		set targetCalendar to first calendar whose name is "%s"

		set eventDate to current date
		set year of eventDate to %d
		set month of eventDate to %d
		set day of eventDate to %d
		set hours of eventDate to %d
		set minutes of eventDate to %d
		set seconds of eventDate to 0

		set endDate to eventDate + (1 * hours)

		make new event at end of events of targetCalendar with properties {summary:"%s", start date:eventDate, end date:endDate}

		return "success"
	end tell`,
		applescript.Escape(c.calendar),
		day.Year(), int(day.Month()), day.Day(),
		clock.Hour(), clock.Minute(),
		applescript.Escape(title),
	)

	if _, err := c.runner.Run(ctx, script); err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{
		Success:  true,
		Title:    title,
		Date:     date,
		Time:     timeOfDay,
		Calendar: c.calendar,
	}
}

// ListEvents returns events starting within [today - pastDays, today + days).
func (c *Client) ListEvents(ctx context.Context, days, pastDays int) ([]Event, error) {
	script := fmt.Sprintf(`
	set startDate to current date
	set time of startDate to 0
	set startDate to startDate - (%d * days)
	set endDate to startDate + (%d * days)

	set output to ""
	tell application "Calendar"
		set targetCalendar to first calendar whose name is "%s"
		set eventList to (every event of targetCalendar whose start date >= startDate and start date < endDate)
		repeat with evt in eventList
			set evtTitle to summary of evt
			set evtStart to start date of evt
			set dateStr to (year of evtStart as string) & "-" & text -2 thru -1 of ("0" & ((month of evtStart as number) as string)) & "-" & text -2 thru -1 of ("0" & (day of evtStart as string))
			set timeStr to text -2 thru -1 of ("0" & (hours of evtStart as string)) & ":" & text -2 thru -1 of ("0" & (minutes of evtStart as string))
			set output to output & evtTitle & "%s" & dateStr & "%s" & timeStr & "\n"
		end repeat
	end tell
	return output`,
		pastDays, pastDays+days,
		applescript.Escape(c.calendar),
		fieldSep, fieldSep,
	)

	output, err := c.runner.Run(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return parseEvents(output), nil
}

// parseEvents decodes the line-per-event script output.
func parseEvents(output string) []Event {
	var events []Event
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, fieldSep) {
			continue
		}
		parts := strings.Split(line, fieldSep)
		if len(parts) < 3 {
			continue
		}
		events = append(events, Event{
			Title: parts[0],
			Date:  parts[1],
			Time:  parts[2],
		})
	}
	return events
}

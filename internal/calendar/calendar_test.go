package calendar

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// scriptedRunner returns canned output or an error and records the script.
type scriptedRunner struct {
	output string
	err    error
	script string
}

func (r *scriptedRunner) Run(_ context.Context, script string) (string, error) {
	r.script = script
	return r.output, r.err
}

func TestScheduleEvent_Success(t *testing.T) {
	runner := &scriptedRunner{output: "success"}
	client := New(runner, "Family")

	res := client.ScheduleEvent(context.Background(), "Fish Tacos", "2026-08-28", "18:00")
	if !res.Success {
		t.Fatalf("Success = false, error = %q", res.Error)
	}
	if res.Title != "Fish Tacos" || res.Date != "2026-08-28" || res.Time != "18:00" {
		t.Errorf("result = %+v", res)
	}
	if res.Calendar != "Family" {
		t.Errorf("Calendar = %q", res.Calendar)
	}

	// Script must target the configured calendar and the parsed date parts
	for _, want := range []string{`name is "Family"`, "set year of eventDate to 2026", "set hours of eventDate to 18"} {
		if !strings.Contains(runner.script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestScheduleEvent_ScriptFailure(t *testing.T) {
	runner := &scriptedRunner{err: errors.New("osascript: calendar not found")}
	client := New(runner, "Family")

	res := client.ScheduleEvent(context.Background(), "Soup", "2026-08-28", "18:00")
	if res.Success {
		t.Fatal("Success = true on script failure")
	}
	if res.Error == "" {
		t.Error("Error should carry the failure message")
	}
}

func TestScheduleEvent_ValidatesInput(t *testing.T) {
	runner := &scriptedRunner{}
	client := New(runner, "Family")

	if res := client.ScheduleEvent(context.Background(), "Soup", "28/08/2026", "18:00"); res.Success {
		t.Error("bad date accepted")
	}
	if res := client.ScheduleEvent(context.Background(), "Soup", "2026-08-28", "6pm"); res.Success {
		t.Error("bad time accepted")
	}
	if runner.script != "" {
		t.Error("no script should run for invalid input")
	}
}

func TestScheduleEvent_EscapesQuotes(t *testing.T) {
	runner := &scriptedRunner{output: "success"}
	client := New(runner, "Family")

	client.ScheduleEvent(context.Background(), `Tom's "Famous" Chili`, "2026-08-28", "18:00")
	if !strings.Contains(runner.script, `Tom's \"Famous\" Chili`) {
		t.Errorf("title not escaped in script:\n%s", runner.script)
	}
}

func TestListEvents(t *testing.T) {
	runner := &scriptedRunner{output: "Fish Tacos|||2026-08-28|||18:00\nSoup|||2026-08-29|||18:30\n"}
	client := New(runner, "Family")

	events, err := client.ListEvents(context.Background(), 7, 0)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Title != "Fish Tacos" || events[0].Date != "2026-08-28" || events[0].Time != "18:00" {
		t.Errorf("events[0] = %+v", events[0])
	}
}

func TestParseEvents_SkipsMalformedLines(t *testing.T) {
	events := parseEvents("garbage\nSoup|||2026-08-29|||18:30\n\nhalf|||line\n")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Title != "Soup" {
		t.Errorf("events[0] = %+v", events[0])
	}
}

func TestParseEvents_Empty(t *testing.T) {
	if events := parseEvents(""); len(events) != 0 {
		t.Errorf("got %d events for empty output", len(events))
	}
}

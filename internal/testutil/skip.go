// Package testutil provides testing utilities.
package testutil

import (
	"os"
	"testing"
)

// SkipAppleScriptTests skips the test if RUN_APPLESCRIPT_TESTS is not set.
// Use this for tests that drive the real Calendar or Reminders apps via
// osascript, which only works on an interactive macOS session.
//
// Run them with: RUN_APPLESCRIPT_TESTS=1 go test ./...
func SkipAppleScriptTests(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_APPLESCRIPT_TESTS") == "" {
		t.Skip("Skipping AppleScript test (set RUN_APPLESCRIPT_TESTS=1 to run)")
	}
}

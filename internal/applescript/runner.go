// Package applescript executes AppleScript snippets through osascript.
//
// Calendar.app and Reminders.app have no programmatic API reachable from
// outside the Apple frameworks; scripting them via osascript is the
// supported bridge. Calls are synchronous and bounded by a timeout.
package applescript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single osascript invocation.
const DefaultTimeout = 30 * time.Second

// Runner executes an AppleScript and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// OSARunner shells out to osascript.
type OSARunner struct {
	// Timeout per invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Run executes the script. A non-zero exit status is returned as an error
// carrying osascript's stderr.
func (r OSARunner) Run(ctx context.Context, script string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("osascript: %s", msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Escape quotes a string for embedding inside an AppleScript string literal.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

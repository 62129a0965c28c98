package telemetry

import (
	"testing"
)

type fakeProvider struct {
	id string
}

func (f *fakeProvider) GetOrCreateTrackingID() string { return f.id }

func TestNew_DisabledReturnsNoop(t *testing.T) {
	t.Setenv("LARDER_TELEMETRY_TRACKING_ENABLED", "false")

	client := New(&fakeProvider{id: "abc"})
	if _, ok := client.(*noopClient); !ok {
		t.Errorf("New() = %T, want noopClient", client)
	}
	if client.GetTrackingID() != "" {
		t.Error("noop client should report an empty tracking ID")
	}
}

func TestNew_NoAPIKeyReturnsNoop(t *testing.T) {
	t.Setenv("LARDER_TELEMETRY_TRACKING_ENABLED", "true")
	// PostHogAPIKey is empty unless injected at build time
	client := New(nil)
	if _, ok := client.(*noopClient); !ok {
		t.Errorf("New() = %T, want noopClient without an API key", client)
	}
}

func TestIsEnabled(t *testing.T) {
	t.Setenv("LARDER_TELEMETRY_TRACKING_ENABLED", "false")
	if IsEnabled() {
		t.Error("IsEnabled() = true with tracking disabled")
	}
}

func TestNoopClient_MethodsAreSafe(t *testing.T) {
	client := &noopClient{}

	// None of these may panic
	client.Track("event", map[string]interface{}{"k": "v"})
	client.TrackCLICommandExecuted("log", true, 12)
	client.TrackCLIError("log", "validation_error")
	client.TrackCLIHelpViewed("log", []string{"--help"})
	client.TrackMCPToolCalled("larder_log_meal", 3, true)
	client.TrackMealLogged(true, 2, "cli")
	client.TrackMealScheduled(true, true)
	client.TrackMealUpdated(1)
	client.TrackHistoryViewed(10, "mcp")
	client.TrackSuggestionsComputed(90, 4, 1)
	client.TrackRecipeSearched(3, "cli")
	client.TrackGroceryUpdated("add", 5)
	client.TrackAppStarted("cli")
	client.TrackAppExited("cli", 100)
	client.Close()
}

func TestMerge_IncludesBaseProperties(t *testing.T) {
	props := merge(map[string]interface{}{"surface": "cli"})
	if props["surface"] != "cli" {
		t.Errorf("surface = %v", props["surface"])
	}
	if _, ok := props["os"]; !ok {
		t.Error("base property os missing")
	}
	if _, ok := props["app_version"]; !ok {
		t.Error("base property app_version missing")
	}
}

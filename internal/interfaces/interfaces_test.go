package interfaces

import (
	"context"
	"encoding/json"
	"testing"
)

// Mock implementations to verify interfaces are properly defined
type mockConfigStore struct{}

func (m *mockConfigStore) Load(path string) (Config, error) {
	return Config{}, nil
}

func (m *mockConfigStore) Save(cfg Config, path string) error {
	return nil
}

type mockPoster struct{}

func (m *mockPoster) Post(ctx context.Context, url string, payload Payload) (PostResult, error) {
	return PostResult{URL: url, StatusCode: 200}, nil
}

type mockConsole struct{}

func (m *mockConsole) Prompt(description string, current *string) (string, error) {
	return "", nil
}

func (m *mockConsole) Warn(message string) error {
	return nil
}

func (m *mockConsole) Println(message string) error {
	return nil
}

// Test that mock implementations satisfy interfaces
func TestInterfaceImplementations(t *testing.T) {
	var _ ConfigStore = &mockConfigStore{}
	var _ Poster = &mockPoster{}
	var _ Console = &mockConsole{}
}

func TestConfig_JSONKeys(t *testing.T) {
	cfg := Config{
		WebhookURL: StringPtr("https://hooks.slack.com/T/B/x"),
		Channel:    StringPtr("#general"),
		DebugMode:  true,
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"webhook_url", "channel", "username", "icon_emoji", "debug_mode"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Expected key %q in %s", key, data)
		}
	}
	if raw["username"] != nil {
		t.Errorf("Expected unset username to encode as null, got %v", raw["username"])
	}
}

func TestConfig_String(t *testing.T) {
	cfg := Config{Channel: StringPtr("#random")}

	want := "{webhook_url: None, channel: #random, username: None, icon_emoji: None, debug_mode: false}"
	if got := cfg.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

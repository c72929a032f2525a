package config

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	fp := filepath.Join(t.TempDir(), FileName)

	// Write config to file
	i := &Config{
		API:  APIConfig{BaseURL: "http://localhost:8889", Timeout: 3 * time.Second},
		Log:  LogConfig{Level: "debug", Format: "json", Output: "userboard.log"},
		UI:   UIConfig{MutationDelay: 250 * time.Millisecond},
		Mock: MockConfig{Port: "9000"},
	}

	if err := i.WriteToFile(fp); err != nil {
		t.Fatal(err)
	}

	// Read config from file
	o, err := Load(fp)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(i, o) {
		t.Fatalf("expected:\n%+v\ngot:\n%+v", i, o)
	}
}

func TestDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(c, Default()) {
		t.Fatalf("expected:\n%+v\ngot:\n%+v", Default(), c)
	}

	if c.API.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", c.API.Timeout)
	}

	if c.UI.MutationDelay != 500*time.Millisecond {
		t.Fatalf("expected 500ms delay, got %s", c.UI.MutationDelay)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("USERBOARD_API_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("USERBOARD_UI_MUTATION_DELAY", "1s")

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if c.API.BaseURL != "http://127.0.0.1:9999" {
		t.Fatalf("expected env base url, got %q", c.API.BaseURL)
	}

	if c.UI.MutationDelay != time.Second {
		t.Fatalf("expected 1s delay, got %s", c.UI.MutationDelay)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing explicit file")
	}
}

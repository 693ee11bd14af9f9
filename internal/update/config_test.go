package update

import "testing"

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DBPath != "zulaflow.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.MirrorDebounceMS != 1000 {
		t.Fatalf("unexpected mirror debounce: %d", cfg.MirrorDebounceMS)
	}
	if cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected scheduler buffer: %d", cfg.SchedulerBuffer)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("ZULAFLOW_DB_PATH", "/tmp/flow.db")
	t.Setenv("ZULAFLOW_SUGGEST_API_KEY", "secret")
	t.Setenv("ZULAFLOW_MIRROR_DEBOUNCE_MS", "250")
	t.Setenv("ZULAFLOW_SCHEDULER_BUFFER", "not-a-number")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/flow.db" {
		t.Fatalf("db path not read from env: %q", cfg.DBPath)
	}
	if cfg.SuggestAPIKey != "secret" {
		t.Fatalf("api key not read from env: %q", cfg.SuggestAPIKey)
	}
	if cfg.MirrorDebounceMS != 250 {
		t.Fatalf("debounce not read from env: %d", cfg.MirrorDebounceMS)
	}
	// Malformed values keep the default.
	if cfg.SchedulerBuffer != 64 {
		t.Fatalf("expected default buffer for malformed env, got %d", cfg.SchedulerBuffer)
	}
}

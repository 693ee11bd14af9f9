package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath           string
	MirrorPath       string
	SuggestBaseURL   string
	SuggestAPIKey    string
	MirrorDebounceMS int
	SchedulerBuffer  int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:           "zulaflow.db",
		MirrorPath:       "",
		SuggestBaseURL:   "https://api.zulaflow.dev",
		SuggestAPIKey:    "",
		MirrorDebounceMS: 1000,
		SchedulerBuffer:  64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("ZULAFLOW_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("ZULAFLOW_MIRROR_PATH"); ok {
		cfg.MirrorPath = v
	}
	if v, ok := getEnvString("ZULAFLOW_SUGGEST_BASE_URL"); ok {
		cfg.SuggestBaseURL = v
	}
	if v, ok := getEnvString("ZULAFLOW_SUGGEST_API_KEY"); ok {
		cfg.SuggestAPIKey = v
	}
	if v, ok := getEnvInt("ZULAFLOW_MIRROR_DEBOUNCE_MS"); ok && v > 0 {
		cfg.MirrorDebounceMS = v
	}
	if v, ok := getEnvInt("ZULAFLOW_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

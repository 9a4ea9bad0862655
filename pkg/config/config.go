// Package config loads runtime configuration from the environment.
//
// Only the knobs enumerated here are recognized; everything else in the
// environment is ignored. Defaults keep a bare `stockbuddy` invocation
// working against a local SQLite file and a single mock agent.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults.
const (
	DefaultDatabasePath        = "stockbuddy.db"
	DefaultHTTPPort            = "8080"
	DefaultExecutionContextTTL = 3600 * time.Second
	DefaultLLMModel            = "gpt-4o-mini"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DatabasePath is the SQLite file location (DATABASE_PATH).
	DatabasePath string

	// HTTPPort is the API listen port (HTTP_PORT).
	HTTPPort string

	// AgentDebug enables verbose agent traces (AGENT_DEBUG, truthy).
	AgentDebug bool

	// Timezone is the default location for daily-time schedules (TIMEZONE,
	// IANA name). Falls back to the system local zone.
	Timezone *time.Location

	// Language is the preferred user language forwarded to agents (LANG).
	Language string

	// ExecutionContextTTL bounds how long a paused planning context stays
	// resumable (EXECUTION_CONTEXT_TTL_SECONDS).
	ExecutionContextTTL time.Duration

	// AgentEndpoints maps agent name to gRPC address (AGENT_ENDPOINTS,
	// "Name=host:port" pairs separated by commas).
	AgentEndpoints map[string]string

	// LLM provider settings for the triager and planner.
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// FallbackMultiAgentPlan toggles the heuristic that widens single-task
	// investment plans into a research+news→strategy DAG
	// (FALLBACK_MULTI_AGENT_PLAN, truthy; enabled by default).
	FallbackMultiAgentPlan bool
}

// LoadFromEnv builds a Config from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DatabasePath:           getEnv("DATABASE_PATH", DefaultDatabasePath),
		HTTPPort:               getEnv("HTTP_PORT", DefaultHTTPPort),
		AgentDebug:             Truthy(os.Getenv("AGENT_DEBUG")),
		Language:               getEnv("LANG", "en"),
		ExecutionContextTTL:    DefaultExecutionContextTTL,
		AgentEndpoints:         map[string]string{},
		LLMBaseURL:             getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:              os.Getenv("LLM_API_KEY"),
		LLMModel:               getEnv("LLM_MODEL", DefaultLLMModel),
		FallbackMultiAgentPlan: true,
	}

	if v := os.Getenv("EXECUTION_CONTEXT_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid EXECUTION_CONTEXT_TTL_SECONDS %q", v)
		}
		cfg.ExecutionContextTTL = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("FALLBACK_MULTI_AGENT_PLAN"); v != "" {
		cfg.FallbackMultiAgentPlan = Truthy(v)
	}

	loc := time.Local
	if name := os.Getenv("TIMEZONE"); name != "" {
		parsed, err := time.LoadLocation(name)
		if err != nil {
			slog.Warn("Invalid TIMEZONE, falling back to system local",
				"timezone", name, "error", err)
		} else {
			loc = parsed
		}
	}
	cfg.Timezone = loc

	endpoints, err := ParseAgentEndpoints(os.Getenv("AGENT_ENDPOINTS"))
	if err != nil {
		return nil, err
	}
	cfg.AgentEndpoints = endpoints

	return cfg, nil
}

// ParseAgentEndpoints parses "Name=host:port,Name2=host:port" pairs.
// An empty value yields an empty map (no remote agents configured).
func ParseAgentEndpoints(raw string) (map[string]string, error) {
	endpoints := map[string]string{}
	if raw == "" {
		return endpoints, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, addr, ok := strings.Cut(pair, "=")
		name, addr = strings.TrimSpace(name), strings.TrimSpace(addr)
		if !ok || name == "" || addr == "" {
			return nil, fmt.Errorf("invalid AGENT_ENDPOINTS entry %q: want Name=host:port", pair)
		}
		endpoints[name] = addr
	}
	return endpoints, nil
}

// Truthy reports whether an env value means "enabled".
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

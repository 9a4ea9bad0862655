package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgentEndpoints(t *testing.T) {
	endpoints, err := ParseAgentEndpoints("NewsAgent=localhost:50051, StrategyAgent = localhost:50052")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"NewsAgent":     "localhost:50051",
		"StrategyAgent": "localhost:50052",
	}, endpoints)
}

func TestParseAgentEndpoints_Empty(t *testing.T) {
	endpoints, err := ParseAgentEndpoints("")
	require.NoError(t, err)
	assert.Empty(t, endpoints)
}

func TestParseAgentEndpoints_Invalid(t *testing.T) {
	for _, raw := range []string{"NewsAgent", "=localhost:50051", "NewsAgent="} {
		_, err := ParseAgentEndpoints(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", " Yes "} {
		assert.True(t, Truthy(v), "value %q", v)
	}
	for _, v := range []string{"", "0", "false", "no", "on"} {
		assert.False(t, Truthy(v), "value %q", v)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("EXECUTION_CONTEXT_TTL_SECONDS", "")
	t.Setenv("AGENT_ENDPOINTS", "")
	t.Setenv("FALLBACK_MULTI_AGENT_PLAN", "")
	t.Setenv("TIMEZONE", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, DefaultHTTPPort, cfg.HTTPPort)
	assert.Equal(t, DefaultExecutionContextTTL, cfg.ExecutionContextTTL)
	assert.True(t, cfg.FallbackMultiAgentPlan)
	assert.NotNil(t, cfg.Timezone)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("EXECUTION_CONTEXT_TTL_SECONDS", "60")
	t.Setenv("FALLBACK_MULTI_AGENT_PLAN", "false")
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("AGENT_ENDPOINTS", "NewsAgent=localhost:50051")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "1m0s", cfg.ExecutionContextTTL.String())
	assert.False(t, cfg.FallbackMultiAgentPlan)
	assert.Equal(t, "America/New_York", cfg.Timezone.String())
	assert.Equal(t, "localhost:50051", cfg.AgentEndpoints["NewsAgent"])
}

func TestLoadFromEnv_InvalidTTL(t *testing.T) {
	t.Setenv("EXECUTION_CONTEXT_TTL_SECONDS", "zero")
	_, err := LoadFromEnv()
	assert.Error(t, err)
}

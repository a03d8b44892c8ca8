package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "agent_942e5a52722eb61774d4ec367d", cfg.RetellAgentID)
	assert.Equal(t, "+15072676898", cfg.RetellFromNumber)
	assert.Equal(t, "https://api.retellai.com", cfg.RetellBaseURL)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.True(t, cfg.NormalizePhone)
	assert.Equal(t, AgentFieldOverrideAgentID, cfg.AgentIDField)
	assert.True(t, cfg.AttachMetadata)
	assert.True(t, cfg.AttachDynamicVariables)
	assert.Equal(t, SuccessResponseEcho, cfg.SuccessResponse)
	assert.True(t, cfg.PropagateUpstreamStatus)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("RETELL_API_KEY", "key_123")
	t.Setenv("RETELL_AGENT_ID", "agent_custom")
	t.Setenv("RETELL_FROM_NUMBER", "+14155550100")
	t.Setenv("CALL_TIMEOUT", "5s")
	t.Setenv("NORMALIZE_PHONE", "false")
	t.Setenv("AGENT_ID_FIELD", "agent_id")
	t.Setenv("SUCCESS_RESPONSE", "message")
	t.Setenv("PROPAGATE_UPSTREAM_STATUS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "key_123", cfg.RetellAPIKey)
	assert.Equal(t, "agent_custom", cfg.RetellAgentID)
	assert.Equal(t, "+14155550100", cfg.RetellFromNumber)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout)
	assert.False(t, cfg.NormalizePhone)
	assert.Equal(t, AgentFieldAgentID, cfg.AgentIDField)
	assert.Equal(t, SuccessResponseMessage, cfg.SuccessResponse)
	assert.False(t, cfg.PropagateUpstreamStatus)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"from number not e164", "RETELL_FROM_NUMBER", "5072676898"},
		{"unknown agent field", "AGENT_ID_FIELD", "agent"},
		{"unknown success shape", "SUCCESS_RESPONSE", "raw"},
		{"bad base url", "RETELL_BASE_URL", "not a url"},
		{"non numeric port", "PORT", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	AgentFieldAgentID         = "agent_id"
	AgentFieldOverrideAgentID = "override_agent_id"

	SuccessResponseEcho    = "echo"
	SuccessResponseMessage = "message"
)

// Config holds all application configuration values
type Config struct {
	Port   string `env:"PORT" env-default:"3000" validate:"required,numeric"`
	AppEnv string `env:"APP_ENV" env-default:"development"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	RetellAPIKey     string        `env:"RETELL_API_KEY" env-description:"bearer token for the Retell API"`
	RetellAgentID    string        `env:"RETELL_AGENT_ID" env-default:"agent_942e5a52722eb61774d4ec367d" validate:"required"`
	RetellFromNumber string        `env:"RETELL_FROM_NUMBER" env-default:"+15072676898" validate:"required,e164"`
	RetellBaseURL    string        `env:"RETELL_BASE_URL" env-default:"https://api.retellai.com" validate:"required,url"`
	CallTimeout      time.Duration `env:"CALL_TIMEOUT" env-default:"30s"`

	// Call policy switches
	NormalizePhone          bool   `env:"NORMALIZE_PHONE" env-default:"true"`
	AgentIDField            string `env:"AGENT_ID_FIELD" env-default:"override_agent_id" validate:"oneof=agent_id override_agent_id"`
	AttachMetadata          bool   `env:"ATTACH_METADATA" env-default:"true"`
	AttachDynamicVariables  bool   `env:"ATTACH_DYNAMIC_VARIABLES" env-default:"true"`
	SuccessResponse         string `env:"SUCCESS_RESPONSE" env-default:"echo" validate:"oneof=echo message"`
	PropagateUpstreamStatus bool   `env:"PROPAGATE_UPSTREAM_STATUS" env-default:"true"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// LoadConfig reads configuration from environment variables and validates it
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if cfg.CallTimeout < 0 {
		cfg.CallTimeout = 0
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production logging and gin release mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Usage describes every supported environment variable
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}

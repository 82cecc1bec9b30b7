package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/erenoa/vrc-shift-scheduler/backend/internal/domain/scheduling"
)

// Config holds the application configuration
type Config struct {
	// AppEnv is the application environment (development, production, etc.)
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	// Port is the HTTP server port
	Port int `envconfig:"API_PORT" default:"8080"`

	// DatabaseURL is the PostgreSQL connection string
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// AllowedOrigins is a comma-separated list of allowed CORS origins
	// In production, this should be set to specific domains
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:""`

	// Timezone governs how calendar days and weeks are bucketed for
	// scheduling.
	Timezone string `envconfig:"SCHEDULER_TIMEZONE" default:"UTC"`

	// FairnessWindowDays is the size of the rolling ledger window.
	FairnessWindowDays int `envconfig:"FAIRNESS_WINDOW_DAYS" default:"90"`

	// ATMRestRuleEnabled toggles the rest-after-midnight-shift rule.
	ATMRestRuleEnabled bool `envconfig:"ATM_REST_RULE_ENABLED" default:"true"`

	// ATMCooldownDays is the minimum gap enforced between ATM_MIDNIGHT
	// assignments for the same member.
	ATMCooldownDays int `envconfig:"ATM_COOLDOWN_DAYS" default:"2"`

	// DefaultAggressiveness is the fairness aggressiveness used when a
	// generation request does not specify one.
	DefaultAggressiveness int `envconfig:"DEFAULT_FAIRNESS_AGGRESSIVENESS" default:"1"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SchedulingConfig builds the frozen scheduling.SchedulingConfig this
// process will pass down to every generation and swap usecase. It is
// built once at startup; nothing downstream reads env vars again.
func (c *Config) SchedulingConfig() scheduling.SchedulingConfig {
	cfg := scheduling.DefaultSchedulingConfig()
	cfg.Timezone = c.Timezone
	cfg.FairnessWindowDays = c.FairnessWindowDays
	cfg.ATMRestRuleEnabled = c.ATMRestRuleEnabled
	cfg.ATMCooldownDays = c.ATMCooldownDays
	cfg.DefaultAggressiveness = c.DefaultAggressiveness
	return cfg
}

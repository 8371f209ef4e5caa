package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"pharmasync_session"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"720h"`

	LowStockThreshold int           `envconfig:"LOW_STOCK_THRESHOLD" default:"100"`
	ExpiryWarnDays    int           `envconfig:"EXPIRY_WARN_DAYS" default:"90"`
	VerifyLookupDelay time.Duration `envconfig:"VERIFY_LOOKUP_DELAY" default:"1500ms"`

	RateLimit       int           `envconfig:"RATE_LIMIT" default:"60"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite file backing the analytics store. ":memory:" is
	// accepted for tests.
	DBPath    string `env:"DB_PATH" envDefault:"data/coach.db"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`

	GeneratorModel   string        `env:"GENERATOR_MODEL" envDefault:"stub"`
	GenerateTimeout  time.Duration `env:"GENERATE_TIMEOUT" envDefault:"30s"`
	ValidateTimeout  time.Duration `env:"VALIDATE_TIMEOUT" envDefault:"5s"`
	MaxRequestBytes  int64         `env:"MAX_REQUEST_BYTES" envDefault:"51200"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`

	// General request ceiling applied to every route, then the two
	// endpoint-specific ceilings on top of it.
	RateLimitRequests   int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	RateLimitWindow     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
	ValidateRatePerMin  int           `env:"VALIDATE_RATE_PER_MIN" envDefault:"30"`
	GenerateRatePerMin  int           `env:"GENERATE_RATE_PER_MIN" envDefault:"5"`

	JobDescriptionMinChars int    `env:"JOB_DESCRIPTION_MIN_CHARS" envDefault:"10"`
	JobDescriptionMaxChars int    `env:"JOB_DESCRIPTION_MAX_CHARS" envDefault:"10000"`
	JobDescriptionMaxLines int    `env:"JOB_DESCRIPTION_MAX_LINES" envDefault:"500"`
	ResumeSummaryMaxChars  int    `env:"RESUME_SUMMARY_MAX_CHARS" envDefault:"800"`
	KeywordTablesPath      string `env:"KEYWORD_TABLES_PATH" envDefault:""`

	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// RedisEnabled reports whether the strict generate limiter has a backing store.
func (c Config) RedisEnabled() bool { return c.RedisAddr != "" }

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Loan   LoanConfig   `mapstructure:"loan"`
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type AppConfig struct {
	// RateSheet is the default rate-sheet path when the prompt answer
	// is blank.
	RateSheet string `mapstructure:"rate_sheet"`
	// Output is the default path for saving qualifying loans.
	Output string `mapstructure:"output"`
}

type LoanConfig struct {
	// TermMonths is the amortization horizon for payment estimates.
	TermMonths int `mapstructure:"term_months"`
}

type ServerConfig struct {
	Addr      string          `mapstructure:"addr"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type RedisConfig struct {
	// Addr enables the redis cache when non-empty.
	Addr string `mapstructure:"addr"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load reads configuration from the yaml file at path, with environment
// overrides prefixed LOAN_QUALIFIER. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LOAN_QUALIFIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.rate_sheet", "data/daily_rate_sheet.csv")
	v.SetDefault("app.output", "my_bank_loans.csv")
	v.SetDefault("loan.term_months", 360)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit.requests", 5)
	v.SetDefault("server.rate_limit.window", "1m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("cache.ttl", "5m")
}

func validate(cfg *Config) error {
	if cfg.App.RateSheet == "" {
		return fmt.Errorf("app.rate_sheet cannot be empty")
	}
	if cfg.App.Output == "" {
		return fmt.Errorf("app.output cannot be empty")
	}
	if cfg.Loan.TermMonths <= 0 {
		return fmt.Errorf("loan.term_months must be positive")
	}
	if cfg.Server.RateLimit.Requests <= 0 {
		return fmt.Errorf("server.rate_limit.requests must be positive")
	}
	if cfg.Server.RateLimit.Window <= 0 {
		return fmt.Errorf("server.rate_limit.window must be positive")
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl cannot be negative")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	ClinicTimezone string   `mapstructure:"CLINIC_TIMEZONE"`
	DayStartHour   int      `mapstructure:"DAY_START_HOUR"`
	DayEndHour     int      `mapstructure:"DAY_END_HOUR"`
	SeedDemoData   bool     `mapstructure:"SEED_DEMO_DATA"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	MaxUploadBytes int64    `mapstructure:"MAX_UPLOAD_BYTES"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("CLINIC_TIMEZONE", "Local")
	v.SetDefault("DAY_START_HOUR", 8)
	v.SetDefault("DAY_END_HOUR", 20)
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("MAX_UPLOAD_BYTES", 25*1024*1024)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("CLINIC_TIMEZONE")
	v.BindEnv("DAY_START_HOUR")
	v.BindEnv("DAY_END_HOUR")
	v.BindEnv("SEED_DEMO_DATA")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("MAX_UPLOAD_BYTES")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DayStartHour < 0 || cfg.DayStartHour > 23 {
		return nil, fmt.Errorf("DAY_START_HOUR must be between 0 and 23, got %d", cfg.DayStartHour)
	}
	if cfg.DayEndHour <= cfg.DayStartHour || cfg.DayEndHour > 24 {
		return nil, fmt.Errorf("DAY_END_HOUR must be after DAY_START_HOUR and at most 24, got %d", cfg.DayEndHour)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("CLINIC_TIMEZONE: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves the clinic time zone. Every calendar-day comparison in the
// agenda and the cash report uses this single location.
func (c *Config) Location() (*time.Location, error) {
	if c.ClinicTimezone == "" || c.ClinicTimezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.ClinicTimezone)
}

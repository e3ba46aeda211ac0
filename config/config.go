package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Matching     MatchingConfig     `yaml:"matching"`
	Availability AvailabilityConfig `yaml:"availability"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// MatchingConfig holds the tolerance windows and criterion weights used by the
// matching engine. Zero values are replaced with the documented defaults in Load.
type MatchingConfig struct {
	LevelMaxDifference int     `yaml:"level_max_difference"`
	YellowTolerance    int     `yaml:"yellow_tolerance"`
	RedTolerance       int     `yaml:"red_tolerance"`
	WeightLevel        float64 `yaml:"weight_level"`
	WeightWeight       float64 `yaml:"weight_weight"`
	WeightHeight       float64 `yaml:"weight_height"`
	WeightGender       float64 `yaml:"weight_gender"`
	WeightDiscipline   float64 `yaml:"weight_discipline"`
}

// AvailabilityConfig holds the service-buffer and reservation-cache settings.
type AvailabilityConfig struct {
	WarningBufferDays int           `yaml:"warning_buffer_days"`
	CacheTTLSeconds   int           `yaml:"cache_ttl_seconds"`
	CacheTTL          time.Duration `yaml:"-"` // Ignored by YAML parser
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used by tests and
// by callers that run the engine without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Matching.LevelMaxDifference <= 0 {
		cfg.Matching.LevelMaxDifference = 2
	}
	if cfg.Matching.YellowTolerance <= 0 {
		cfg.Matching.YellowTolerance = 5
	}
	if cfg.Matching.RedTolerance <= 0 {
		cfg.Matching.RedTolerance = 10
	}
	// Criterion weights must sum to 1.0; replace all of them if any is unset so
	// a partially overridden set cannot skew the total.
	if cfg.Matching.WeightLevel <= 0 || cfg.Matching.WeightWeight <= 0 ||
		cfg.Matching.WeightHeight <= 0 || cfg.Matching.WeightGender <= 0 ||
		cfg.Matching.WeightDiscipline <= 0 {
		cfg.Matching.WeightLevel = 0.40
		cfg.Matching.WeightWeight = 0.25
		cfg.Matching.WeightHeight = 0.20
		cfg.Matching.WeightGender = 0.10
		cfg.Matching.WeightDiscipline = 0.05
	}

	if cfg.Availability.WarningBufferDays <= 0 {
		cfg.Availability.WarningBufferDays = 2
	}
	if cfg.Availability.CacheTTLSeconds <= 0 {
		cfg.Availability.CacheTTLSeconds = 30
	}
	cfg.Availability.CacheTTL = time.Duration(cfg.Availability.CacheTTLSeconds) * time.Second
}

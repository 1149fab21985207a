package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "secret"

type Config struct {
	Port        string
	DatabaseURL string
	AppEnv      string
	BaseURL     string
	JWTSecret   string
	IPHashSalt  string

	// Snapshot cache; an empty RedisURL disables it
	RedisURL string
	CacheTTL time.Duration

	LogLevel  string
	LogFormat string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration with flags > environment > config file > defaults
// precedence. Environment variables use the LINKHUB_ prefix; PORT,
// DATABASE_URL and JWT_SECRET are still honored unprefixed.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "file:db.sqlite")
	v.SetDefault("app_env", "local")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("jwt_secret", defaultJWTSecret)
	v.SetDefault("ip_hash_salt", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("read_timeout", "10s")
	v.SetDefault("write_timeout", "10s")
	v.SetDefault("shutdown_timeout", "15s")

	v.SetEnvPrefix("LINKHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range map[string]string{
		"port":         "PORT",
		"database_url": "DATABASE_URL",
		"jwt_secret":   "JWT_SECRET",
	} {
		if err := v.BindEnv(key, "LINKHUB_"+legacy, legacy); err != nil {
			return nil, err
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := validateNoSecretsInConfig(v); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Port:            v.GetString("port"),
		DatabaseURL:     v.GetString("database_url"),
		AppEnv:          v.GetString("app_env"),
		BaseURL:         v.GetString("base_url"),
		JWTSecret:       v.GetString("jwt_secret"),
		IPHashSalt:      v.GetString("ip_hash_salt"),
		RedisURL:        v.GetString("redis_url"),
		CacheTTL:        v.GetDuration("cache_ttl"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
		LogFormat:       strings.ToLower(v.GetString("log_format")),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether AppEnv names a production deployment.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func validateConfig(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %q", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("jwt_secret must be changed from the default in production")
	}
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive, got %v", cfg.CacheTTL)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", cfg.LogFormat)
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

// validateNoSecretsInConfig keeps secrets in the environment only.
func validateNoSecretsInConfig(v *viper.Viper) error {
	for _, key := range []string{"jwt_secret", "ip_hash_salt"} {
		if v.InConfig(key) {
			return fmt.Errorf("%s not allowed in config files (use LINKHUB_%s environment variable)", key, strings.ToUpper(key))
		}
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration. Values come from
// defaults, then the YAML file, then environment overrides, in that order.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// and environment overrides. A .env file in the working directory is loaded
// first when present; a missing config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	applyDefaults(cfg)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "development"

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.DBName = "schoolhealth"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxIdleConns = 5
	cfg.Database.MaxOpenConns = 20
	cfg.Database.ConnMaxLifetime = "1h"

	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.RefreshTokenExpiration = "720h"
	cfg.JWT.Issuer = "schoolhealth.app"

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	for name, d := range map[string]string{
		"access token expiration":  c.JWT.AccessTokenExpiration,
		"refresh token expiration": c.JWT.RefreshTokenExpiration,
		"conn_max_lifetime":        c.Database.ConnMaxLifetime,
	} {
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

// GetPostgresConnectionString assembles the pgx connection URL
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User, c.Database.Password,
		c.Database.Host, c.Database.Port,
		c.Database.DBName, sslMode,
	)
}

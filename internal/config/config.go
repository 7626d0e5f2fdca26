package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file and environment say nothing.
const (
	// DefaultPort is the HTTP listen port.
	DefaultPort = 8080
	// DefaultSQLitePath is the fallback database when no Postgres is configured.
	DefaultSQLitePath = "portfolio.db"
	// DefaultSessionTTLHours is the admin session lifetime.
	DefaultSessionTTLHours = 24
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Public   PublicConfig   `yaml:"public"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"` // Bind address; empty means all interfaces.
	Port int    `yaml:"port"` // Listen port.
}

// DatabaseConfig controls the database connection. DSN wins when set;
// otherwise the discrete Postgres fields are used, and when no host is
// configured the app falls back to a local SQLite file.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Port     int    `yaml:"port"`
}

// LogConfig controls process logging.
type LogConfig struct {
	Level      string `yaml:"level"`       // logrus level name; default info.
	File       string `yaml:"file"`        // Log file path; empty logs to stderr.
	MaxSizeMB  int    `yaml:"max-size"`    // Rotation threshold in megabytes.
	MaxBackups int    `yaml:"max-backups"` // Rotated files to retain.
	MaxAgeDays int    `yaml:"max-age"`     // Days to retain rotated files.
}

// AuthConfig controls admin sessions.
type AuthConfig struct {
	SessionTTLHours int `yaml:"session-ttl-hours"` // Session lifetime in hours.
}

// PublicConfig controls public read visibility.
type PublicConfig struct {
	// ExposeHiddenByID keeps inactive/unpublished rows reachable through the
	// single-item endpoints even though lists exclude them. Defaults to true,
	// matching the shipped site; set false to 404 hidden rows everywhere.
	ExposeHiddenByID *bool `yaml:"expose-hidden-by-id"`
}

// Load reads the config file when present, then applies environment
// overrides (PGHOST, PGUSER, PGPASSWORD, PGDATABASE, PGPORT, DATABASE_URL,
// PORT) and fills defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{}

	if trimmed := strings.TrimSpace(path); trimmed != "" {
		data, errRead := os.ReadFile(trimmed)
		switch {
		case errRead == nil:
			if errParse := yaml.Unmarshal(data, &cfg); errParse != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", trimmed, errParse)
			}
		case os.IsNotExist(errRead):
			// Defaults plus environment only.
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", trimmed, errRead)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return cfg, nil
}

// applyEnv copies recognized environment variables over file values.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("PGHOST")); v != "" {
		cfg.Database.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("PGUSER")); v != "" {
		cfg.Database.User = v
	}
	if v := strings.TrimSpace(os.Getenv("PGPASSWORD")); v != "" {
		cfg.Database.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("PGDATABASE")); v != "" {
		cfg.Database.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("PGPORT")); v != "" {
		if port, errParse := strconv.Atoi(v); errParse == nil && port > 0 {
			cfg.Database.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, errParse := strconv.Atoi(v); errParse == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
}

// applyDefaults fills unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Database.Port <= 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Auth.SessionTTLHours <= 0 {
		cfg.Auth.SessionTTLHours = DefaultSessionTTLHours
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = 100
	}
	if cfg.Log.MaxBackups <= 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Log.MaxAgeDays <= 0 {
		cfg.Log.MaxAgeDays = 28
	}
}

// Addr returns the HTTP listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ResolveDSN returns the effective database DSN.
func (c DatabaseConfig) ResolveDSN() string {
	if dsn := strings.TrimSpace(c.DSN); dsn != "" {
		return dsn
	}
	if strings.TrimSpace(c.Host) != "" {
		parts := []string{fmt.Sprintf("host=%s", c.Host)}
		if c.User != "" {
			parts = append(parts, fmt.Sprintf("user=%s", c.User))
		}
		if c.Password != "" {
			parts = append(parts, fmt.Sprintf("password=%s", c.Password))
		}
		if c.Name != "" {
			parts = append(parts, fmt.Sprintf("dbname=%s", c.Name))
		}
		parts = append(parts, fmt.Sprintf("port=%d", c.Port))
		return strings.Join(parts, " ")
	}
	return DefaultSQLitePath
}

// ExposeHidden reports whether hidden rows stay fetchable by ID.
func (c PublicConfig) ExposeHidden() bool {
	if c.ExposeHiddenByID == nil {
		return true
	}
	return *c.ExposeHiddenByID
}

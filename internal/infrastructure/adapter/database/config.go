package database

import (
	"errors"
	"fmt"
	"time"
)

// Config represents database configuration for the supported drivers.
// The sqlite driver is the default, file-backed deployment; postgres is
// available for shared deployments.
type Config struct {
	Driver string

	// sqlite settings
	Path        string
	BusyTimeout time.Duration

	// postgres settings
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string

	// pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration

	LogLevel      string
	RetryAttempts int
	RetryDelay    time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case "sqlite":
		if c.Path == "" {
			return errors.New("sqlite database path is required")
		}
	case "postgres":
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	switch c.Driver {
	case "sqlite":
		// _busy_timeout bounds lock acquisition; expiry surfaces as a
		// storage-busy error instead of blocking indefinitely
		return fmt.Sprintf("file:%s?_busy_timeout=%d", c.Path, c.BusyTimeout.Milliseconds())
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	default:
		return ""
	}
}

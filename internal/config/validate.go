package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))

	switch c.Store.Driver {
	case DriverPostgres:
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite: path is required")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Store.Driver)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required for the postgres driver")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be within [0, max_conns] (got %d)", d.MinConns)
	}
	return nil
}

package config

import (
	"time"
)

// Store drivers accepted in StoreConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Log      LogConfig      `yaml:"log"`
}

// StoreConfig selects the dictionary store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SQLiteConfig holds settings for the embedded SQLite store.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./dictionary.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

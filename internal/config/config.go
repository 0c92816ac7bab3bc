package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config is the process-wide static configuration, loaded once at startup.
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	DBDriver         string `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost           string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort           string `env:"DB_PORT" envDefault:"3306"`
	DBUser           string `env:"DB_USER" envDefault:"root"`
	DBPass           string `env:"DB_PASS"`
	DBName           string `env:"DB_NAME" envDefault:"taskboard"`
	DBPath           string `env:"DB_PATH" envDefault:"taskboard.db"`
	DBConnectRetries int    `env:"DB_CONNECT_RETRIES" envDefault:"10"`

	JWTSecret      string        `env:"JWT_SECRET,required,notEmpty"`
	JWTAlgorithm   string        `env:"JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	RedisAddr    string        `env:"REDIS_ADDR"`
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBPath
	}
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.DBName = c.DBName
	// Report matched rather than changed rows so no-op updates still count.
	mc.ClientFoundRows = true
	return mc.FormatDSN()
}

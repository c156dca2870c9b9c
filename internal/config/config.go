package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name        string `envconfig:"APP_NAME" default:"Kasir"`
		Port        int    `envconfig:"PORT" default:"8080"`
		StoreName   string `envconfig:"STORE_NAME" default:"Toko Waserda"`
		CountryCode string `envconfig:"COUNTRY_CODE" default:"62"`
		Timezone    string `envconfig:"TZ" default:"Asia/Jakarta"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"kasir"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
		Migrate         bool          `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
		WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
		AllowedOrigins  []string      `envconfig:"SERVER_ALLOWED_ORIGINS"`
	}

	Notify struct {
		Enabled bool          `envconfig:"NOTIFY_ENABLED" default:"true"`
		URL     string        `envconfig:"NOTIFY_URL" default:"https://blast.sukipli.work/send-message"`
		Timeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
	}

	Auth struct {
		Username     string        `envconfig:"AUTH_USERNAME" default:"admin"`
		PasswordHash string        `envconfig:"AUTH_PASSWORD_HASH"`
		Secret       string        `envconfig:"AUTH_SECRET"`
		TokenTTL     time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"168h"`
	}

	Log struct {
		Level       string `envconfig:"LOG_LEVEL" default:"info"`
		Development bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
		TUIFile     string `envconfig:"LOG_TUI_FILE" default:"kasir-tui.log"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// AuthEnabled reports whether the login guard should be installed.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.Auth.PasswordHash) != ""
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.AuthEnabled() && cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("AUTH_SECRET is required when AUTH_PASSWORD_HASH is set")
	}

	return &cfg, nil
}

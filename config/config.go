package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `env:"APP_ENV" env-default:"development"`
	Port string `env:"PORT" env-default:"3000"`

	Database DatabaseConfig
	Fleet    FleetConfig
	SMTP     SMTPConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"127.0.0.1"`
	Port     int    `env:"DB_PORT" env-default:"3306"`
	User     string `env:"DB_USER" env-default:"root"`
	Password string `env:"DB_PASSWORD" env-default:""`
	Name     string `env:"DB_NAME" env-default:"officer_mobility"`
}

// DSN format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

type FleetConfig struct {
	// Workers bounds concurrent per-officer loads during a fleet sweep.
	Workers int `env:"FLEET_WORKERS" env-default:"8"`
}

// SMTPConfig is only needed by the report command. An empty Host disables mailing.
type SMTPConfig struct {
	Host     string   `env:"SMTP_HOST" env-default:""`
	Port     int      `env:"SMTP_PORT" env-default:"587"`
	Username string   `env:"SMTP_USERNAME" env-default:""`
	Password string   `env:"SMTP_PASSWORD" env-default:""`
	From     string   `env:"REPORT_FROM" env-default:"mobility-report@localhost"`
	To       []string `env:"REPORT_TO" env-separator:","`
}

func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && len(s.To) > 0
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	// .env is optional; system environment variables still apply.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Fleet.Workers < 1 {
		return nil, fmt.Errorf("FLEET_WORKERS must be at least 1, got %d", cfg.Fleet.Workers)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

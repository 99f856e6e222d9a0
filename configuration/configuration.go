package configuration

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		LogLevel string      `env:"LOG_LEVEL" envDefault:"info"`
	}

	HTTP struct {
		Host            string        `env:"HTTP_SERVER_HOST" envDefault:"0.0.0.0"`
		Port            string        `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	Auth struct {
		AdminUsername string        `env:"ADMIN_USERNAME" envDefault:"admin"`
		AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
		AdminKey      string        `env:"ADMIN_JWT_KEY" envDefault:"adminkey"`
		PatientKey    string        `env:"PATIENT_JWT_KEY" envDefault:"secretKey"`
		TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	}

	Assets struct {
		LogoPath string `env:"LOGO_PATH" envDefault:"logo.png"`
	}

	Redis struct {
		Enabled    bool          `env:"REDIS_ENABLED"`
		Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password   string        `env:"REDIS_PASSWORD"`
		DB         int           `env:"REDIS_DB" envDefault:"0"`
		MaxRetries int           `env:"REDIS_MAX_RETRIES" envDefault:"5"`
		RetryDelay time.Duration `env:"REDIS_RETRY_DELAY" envDefault:"5s"`
	}

	SMTP struct {
		Host     string `env:"SMTP_HOST"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		Username string `env:"SMTP_USERNAME"`
		Password string `env:"SMTP_PASSWORD"`
		From     string `env:"SMTP_FROM"`
	}
}

// NewConfig reads an optional .env file and then the process environment.
func NewConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) Addr() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}

// MailEnabled reports whether booking confirmations can be e-mailed.
func (c *Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}

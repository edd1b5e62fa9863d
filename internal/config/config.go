package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const EnvProduction = "production"

// Config holds every environment-level setting the application needs.
// It is built once at startup and passed by reference; handlers never
// reach into the environment themselves.
type Config struct {
	Env         string `env:"APP_ENV" env-default:"development"`
	Port        string `env:"PORT" env-default:"3000"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret   string `env:"JWT_SECRET" env-required:"true"`

	ClientURL      string `env:"CLIENT_URL"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
}

func Load() (*Config, error) {
	cfg := new(Config)

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Origins returns the CORS allow-list: local development origins plus
// whatever CLIENT_URL and ALLOWED_ORIGINS contribute.
func (c *Config) Origins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	if c.ClientURL != "" {
		origins = append(origins, c.ClientURL)
	}

	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv         string `envconfig:"APP_ENV" default:"development"`
	Port           string `envconfig:"PORT" default:"8080"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASS"`
	DBName     string `envconfig:"DB_NAME" default:"usher_hire"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisURL string `envconfig:"REDIS_URL"`

	JWTSecret     string `envconfig:"JWT_SECRET" default:"change-me"`
	JWTTTLMinutes int    `envconfig:"JWT_TTL_MINUTES" default:"60"`

	MeiliSearchHost string `envconfig:"MEILISEARCH_HOST"`
	MeiliMasterKey  string `envconfig:"MEILI_MASTER_KEY"`

	CloudinaryURL          string `envconfig:"CLOUDINARY_URL"`
	CloudinaryUploadFolder string `envconfig:"CLOUDINARY_UPLOAD_FOLDER" default:"usher_hire/avatars"`

	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"usher_hire.events"`

	RateLimitApply  time.Duration `envconfig:"RATE_LIMIT_APPLY" default:"10s"`
	RateLimitReview time.Duration `envconfig:"RATE_LIMIT_REVIEW" default:"5s"`

	EventSweepSchedule string `envconfig:"EVENT_SWEEP_SCHEDULE" default:"@daily"`
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTTTLMinutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %d", cfg.JWTTTLMinutes)
	}
	if cfg.IsProduction() && (cfg.JWTSecret == "" || cfg.JWTSecret == "change-me") {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

// MeiliHost normalizes MEILISEARCH_HOST; bare host names get the default port.
func (c *Config) MeiliHost() string {
	host := c.MeiliSearchHost
	if host == "" {
		return ""
	}
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}
	return host
}

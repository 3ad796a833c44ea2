package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	TokenTTL time.Duration `env:"TOKEN_TTL, default=1h"`

	Mongo MongoConfig
	Redis RedisConfig
	Email EmailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=artonus_pos"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// EmailConfig selects and configures the confirmation-mail transport.
// Provider is one of: dev (log only), smtp, gmail.
type EmailConfig struct {
	Provider string `env:"EMAIL_PROVIDER, default=dev"`
	From     string `env:"EMAIL_FROM"`

	SMTPHost   string `env:"SMTP_HOST, default=localhost"`
	SMTPPort   int    `env:"SMTP_PORT, default=1025"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`
	SMTPUseTLS bool   `env:"SMTP_USE_TLS, default=false"`

	GmailClientID     string `env:"GMAIL_CLIENT_ID"`
	GmailClientSecret string `env:"GMAIL_CLIENT_SECRET"`
	GmailRefreshToken string `env:"GMAIL_REFRESH_TOKEN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	HTTP struct {
		Address     string   `env:"HTTP_ADDRESS" envDefault:"0.0.0.0:8080"`
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	RedisURL string `env:"REDIS_URL,required"`

	RabbitMQ struct {
		URL      string `env:"RABBITMQ_URL"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"apptrack.notifications"`
	}

	Gemini struct {
		APIKey  string        `env:"GEMINI_API_KEY"`
		Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
		BaseURL string        `env:"GEMINI_BASE_URL"`
		Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"10s"`
	}

	EvaluationPeriod time.Duration `env:"EVALUATION_PERIOD" envDefault:"60s"`

	QuickAddRateLimit struct {
		PerMinute uint16 `env:"QUICK_ADD_RATE_LIMIT_PER_MINUTE" envDefault:"5"`
		PerHour   uint16 `env:"QUICK_ADD_RATE_LIMIT_PER_HOUR" envDefault:"30"`
	}
}

func Load() (*Config, error) {
	// Missing .env is fine, the environment may be set up externally.
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.EvaluationPeriod <= 0 {
		return nil, fmt.Errorf("EVALUATION_PERIOD must be positive")
	}
	return cfg, nil
}

package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"slot_suggester:slot_suggester"`
		BasicClients       []ConfigBasicClient
	}

	Automation struct {
		WebhookHost string `env:"N8N_WEBHOOK_HOST"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Queue struct {
		Enabled         bool   `env:"QUEUE_ENABLED" envDefault:"true"`
		MessageQueue    string `env:"QUEUE_MESSAGE_NAME" envDefault:"whatsapp:message-received"`
		BatchQueue      string `env:"QUEUE_BATCH_NAME" envDefault:"whatsapp:batch-respond"`
		Attempts        int    `env:"QUEUE_ATTEMPTS" envDefault:"3"`
		BackoffMillis   int    `env:"QUEUE_BACKOFF_MS" envDefault:"1000"`
		DebounceSeconds int    `env:"QUEUE_DEBOUNCE_SECONDS" envDefault:"20"`
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"whatsapp.events"`
		Exchange string `env:"RABBITMQ_EXCHANGE"`
		Bind     string `env:"RABBITMQ_BIND" envDefault:"messages.upsert"`
	}

	Storage struct {
		CloudinaryURL string `env:"CLOUDINARY_URL"`
		Folder        string `env:"STORAGE_FOLDER" envDefault:"uploads"`
	}

	Dedup struct {
		Enabled bool `env:"DEDUP_ENABLED" envDefault:"true"`
		Size    int  `env:"DEDUP_SIZE" envDefault:"10000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Dedup only matters when the intake queue is running
	if !cfg.Queue.Enabled {
		cfg.Dedup.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}

func (c *Config) QueueBackoff() time.Duration {
	return time.Duration(c.Queue.BackoffMillis) * time.Millisecond
}

func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.Queue.DebounceSeconds) * time.Second
}

package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Postgres Postgres
	Kafka    Kafka
	Mailer   Mailer
	Session  Session

	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTP struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
}

type Postgres struct {
	DSN      string `env:"POSTGRES_DSN"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS" envDefault:"kafka:9092" envSeparator:","`
	GroupID           string   `env:"KAFKA_GROUP_ID" envDefault:"advocate-portal"`
	BillEventsTopic   string   `env:"KAFKA_BILL_EVENTS_TOPIC" envDefault:"bill-events"`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_EVENTS_TOPIC" envDefault:"notification-events"`
	SubscriptionsOn   bool     `env:"KAFKA_SUBSCRIPTIONS_ENABLED" envDefault:"true"`
}

type Mailer struct {
	Enabled  bool   `env:"MAILER_ENABLED" envDefault:"false"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Advocate Portal"`
}

type Session struct {
	IdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

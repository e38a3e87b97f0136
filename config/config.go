package config

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "recon-stream/errors"
)

var DefaultConfig = []byte(`
application: "recon-consumer"

logger:
  level: "debug"

is_prod_mode: false

mongo:
  uri: "mongodb://localhost:27017"

redis:
  uri: "localhost:6379"
  password: ""

kafka:
  brokers:
    - "localhost:9092"
  topic: "reconciliation-requests"
  records_per_poll: 5000
  consumer_name: "recon-consumer"

reconciliation:
  pending_window: "24h"
  date_tolerance: "0s"
  timezone: "UTC"
`)

type Config struct {
	Application    string         `koanf:"application"`
	Logger         Logger         `koanf:"logger"`
	IsProdMode     bool           `koanf:"is_prod_mode"`
	Mongo          Mongo          `koanf:"mongo"`
	Redis          Redis          `koanf:"redis"`
	Kafka          Kafka          `koanf:"kafka"`
	Reconciliation Reconciliation `koanf:"reconciliation"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Mongo struct {
	URI string `koanf:"uri"`
}

type Redis struct {
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
}

type Kafka struct {
	Brokers        []string `koanf:"brokers"`
	Topic          string   `koanf:"topic"`
	RecordsPerPoll int      `koanf:"records_per_poll"`
	ConsumerName   string   `koanf:"consumer_name"`
}

// Reconciliation is the matching policy: how long to wait for the connector
// side before a record counts as unmatched, and the date tolerance applied
// when comparing settlement timestamps. Durations are Go duration strings.
type Reconciliation struct {
	PendingWindow string `koanf:"pending_window"`
	DateTolerance string `koanf:"date_tolerance"`
	Timezone      string `koanf:"timezone"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Mongo.URI == "" {
		ve.Add("mongo.uri", "cannot be empty")
	}
	if c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}
	if c.Kafka.Topic == "" {
		ve.Add("kafka.topic", "cannot be empty")
	}

	if c.Reconciliation.PendingWindow != "" {
		if _, err := time.ParseDuration(c.Reconciliation.PendingWindow); err != nil {
			ve.Add("reconciliation.pending_window", "not a valid duration")
		}
	}
	if c.Reconciliation.DateTolerance != "" {
		if _, err := time.ParseDuration(c.Reconciliation.DateTolerance); err != nil {
			ve.Add("reconciliation.date_tolerance", "not a valid duration")
		}
	}
	if c.Reconciliation.Timezone != "" {
		if _, err := time.LoadLocation(c.Reconciliation.Timezone); err != nil {
			ve.Add("reconciliation.timezone", "not a valid IANA timezone")
		}
	}

	return ve.Err()
}

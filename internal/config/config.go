package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type FulfillmentConfig struct {
	Env                 string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer          `yaml:"http_server"`
	FulfillmentDB       `yaml:"fulfillment_db"`
	LogConfig           `yaml:"log_config"`
	KafkaService        `yaml:"kafka-service"`
	RedisService        `yaml:"redis-service"`
	ProvisioningService `yaml:"provisioning-service"`
	Commission          `yaml:"commission"`
	Monitor             `yaml:"monitor"`
	Migrations          `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type FulfillmentDB struct {
	Dsn string `yaml:"dsn" env:"FULFILLMENT_DB_DSN"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level" env-default:"info"`
}

type KafkaService struct {
	Host              string `yaml:"host"`
	Port              string `yaml:"port"`
	OrderTopic        string `yaml:"order_topic" env-default:"order-events"`
	NotificationTopic string `yaml:"notification_topic" env-default:"notifications"`
}

type RedisService struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB           int           `yaml:"db" env-default:"0"`
	LiabilityTTL time.Duration `yaml:"liability_ttl" env-default:"30s"`
}

type ProvisioningService struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout" env-default:"5s"`
	RetryCount int           `yaml:"retry_count" env-default:"3"`
}

type Commission struct {
	// OverrideRate is the fraction of an order's sale price paid to the
	// owning agent's recruiter, frozen onto the order at creation.
	OverrideRate float64 `yaml:"override_rate" env-default:"0.02"`
	// CreditOn is the order status that posts ledger credits:
	// "delivered" or "paid".
	CreditOn string `yaml:"credit_on" env-default:"delivered"`
}

type Monitor struct {
	Interval   time.Duration `yaml:"interval" env-default:"1m"`
	PendingAge time.Duration `yaml:"pending_age" env-default:"24h"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *FulfillmentConfig {

	configPath := os.Getenv("FULFILLMENT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("FULFILLMENT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg FulfillmentConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

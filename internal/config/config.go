package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ExchangeConfig struct {
	Env            string `yaml:"env" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	ExchangeDB     `yaml:"exchange_db"`
	JWT            `yaml:"jwt"`
	KafkaService   `yaml:"kafka-service"`
	Redis          `yaml:"redis"`
	LogConfig      `yaml:"log_config"`
	Policy         `yaml:"policy"`
	MigrationsPath string `yaml:"migrations_path"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ExchangeDB struct {
	Dsn string `yaml:"dsn"`
}

type JWT struct {
	Secret   string `yaml:"secret" env:"JWT_SECRET"`
	TTLHours int    `yaml:"ttl_hours" env-default:"24"`
}

type KafkaService struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"settlement-events"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Policy struct {
	// StrictOfferOwnership restricts offer deletion to the owning teller.
	// Off by default: historically any teller could delete any offer.
	StrictOfferOwnership bool `yaml:"strict_offer_ownership"`
}

func MustLoad() *ExchangeConfig {

	// Processing env config variable and file
	configPath := os.Getenv("EXCHANGE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("EXCHANGE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}

package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	cron_config "github.com/foundershield/foundershield/internal/cron/config"
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
)

type Config struct {
	AppConfig      *AppConfig
	Logger         *logger.Config
	Tracing        *tracing.JaegerConfig
	DatabaseConfig *DatabaseConfig
	DNSConfig      *DNSConfig
	WhoisConfig    *WhoisConfig
	ScoringConfig  *ScoringConfig
	IntelConfig    *IntelConfig
	OpenAIConfig   *OpenAIConfig
	VanityConfig   *VanityConfig
	CronConfig     *cron_config.Config
}

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:      &AppConfig{},
		Logger:         &logger.Config{},
		Tracing:        &tracing.JaegerConfig{},
		DatabaseConfig: &DatabaseConfig{},
		DNSConfig:      &DNSConfig{},
		WhoisConfig:    &WhoisConfig{},
		ScoringConfig:  &ScoringConfig{},
		IntelConfig:    &IntelConfig{},
		OpenAIConfig:   &OpenAIConfig{},
		VanityConfig:   &VanityConfig{},
		CronConfig:     &cron_config.Config{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading foundershield config: %v", err)
	}

	return config, nil
}

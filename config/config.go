package config

import (
	"github.com/foundershield/foundershield/internal/logger"
	"github.com/foundershield/foundershield/internal/tracing"
)

const (
	ServiceName    = "FounderShield"
	ServiceVersion = "1.0.0"
)

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"12700"`
	// When empty, the API runs without key checks (local single-user mode).
	APIKey  string `env:"API_KEY"`
	Logger  *logger.Config
	Tracing *tracing.JaegerConfig
}

type DatabaseConfig struct {
	DBPath        string `env:"DB_PATH" envDefault:"foundershield.db"`
	BusyTimeoutMs int    `env:"DB_BUSY_TIMEOUT_MS" envDefault:"5000"`
	LogLevel      string `env:"DB_LOG_LEVEL" envDefault:"WARN"`
}

type DNSConfig struct {
	Resolver         string `env:"DNS_RESOLVER" envDefault:"8.8.8.8:53"`
	FallbackResolver string `env:"DNS_FALLBACK_RESOLVER" envDefault:"1.1.1.1:53"`
	TimeoutSeconds   int    `env:"DNS_TIMEOUT_SECONDS" envDefault:"5"`
}

type WhoisConfig struct {
	TimeoutSeconds int `env:"WHOIS_TIMEOUT_SECONDS" envDefault:"5"`
}

type ScoringConfig struct {
	// Sender-history findings are an opt-in signal; the default report is a
	// pure function of its lookups.
	EnableSenderHistory bool `env:"ENABLE_SENDER_HISTORY" envDefault:"false"`
}

type IntelConfig struct {
	VTAPIKey         string `env:"VT_API_KEY"`
	GSBAPIKey        string `env:"GSB_API_KEY"`
	HIBPAPIKey       string `env:"HIBP_API_KEY"`
	HIBPTrustedQuery string `env:"HIBP_TRUSTED_QUERY"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

type VanityConfig struct {
	WatchTerms    []string `env:"VANITY_WATCH_TERMS" envSeparator:","`
	RetentionDays int      `env:"VANITY_RETENTION_DAYS" envDefault:"90"`
}

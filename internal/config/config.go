package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Solana    SolanaConfig
	Providers ProvidersConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	PortScanRange    int
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type SolanaConfig struct {
	RPCEndpoint    string
	Network        string
	RequestTimeout time.Duration
	Commitment     string
}

type ProvidersConfig struct {
	MagicEdenBaseURL   string
	DexScreenerBaseURL string
	TokenListURL       string
	LookupTimeout      time.Duration
	PlaceholderImage   string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:          getEnv("SERVER_PORT", "8080"),
			PortScanRange: getIntEnv("SERVER_PORT_SCAN", 10),
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:   getEnv("APP_ENV", "development"),
			ReadTimeout:   getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:  getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Solana: SolanaConfig{
			RPCEndpoint:    getEnv("SOLANA_RPC_ENDPOINT", "https://api.mainnet-beta.solana.com"),
			Network:        getEnv("SOLANA_NETWORK", "mainnet"),
			RequestTimeout: getDurationEnv("SOLANA_REQUEST_TIMEOUT", 30*time.Second),
			Commitment:     getEnv("SOLANA_COMMITMENT", "confirmed"),
		},
		Providers: ProvidersConfig{
			MagicEdenBaseURL:   getEnv("MAGICEDEN_BASE_URL", "https://api-mainnet.magiceden.dev/v2"),
			DexScreenerBaseURL: getEnv("DEXSCREENER_BASE_URL", "https://api.dexscreener.com"),
			TokenListURL:       getEnv("TOKEN_LIST_URL", "https://cdn.jsdelivr.net/gh/solana-labs/token-list@main/src/tokens/solana.tokenlist.json"),
			LookupTimeout:      getDurationEnv("PROVIDER_LOOKUP_TIMEOUT", 10*time.Second),
			PlaceholderImage:   getEnv("PLACEHOLDER_IMAGE_URL", "/static/placeholder.svg"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ProviderURL     string
	ProviderTimeout time.Duration
	RetryBudget     time.Duration
	UseMockProvider bool
	Environment     string
	LogLevel        string
}

// Load reads .env files (if any) and then the environment.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...) // a missing .env is fine

	return Config{
		Port:            envOr("PORT", "8080"),
		ProviderURL:     strings.TrimRight(os.Getenv("PROVIDER_URL"), "/"),
		ProviderTimeout: time.Duration(envInt("PROVIDER_TIMEOUT_SEC", 20)) * time.Second,
		RetryBudget:     time.Duration(envInt("PROVIDER_MAX_ELAPSED_SEC", 30)) * time.Second,
		UseMockProvider: strings.EqualFold(os.Getenv("USE_MOCK_PROVIDER"), "true"),
		Environment:     os.Getenv("ENVIRONMENT"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// Package config loads process settings from the environment.
//
// A .env file in the working directory is read first when present; real
// environment variables always win.
//
// # Environment
//
//   - SERVER_ADDR: listen address for painelctl serve (default :8080)
//   - APP_ENV: development switches logs to the console writer (default production)
//   - LLM_PROVIDER: openai, gemini or mock (default openai)
//   - OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL
//   - GEMINI_API_KEY, GEMINI_MODEL
//   - CHAT_MAX_TOKENS (default 500), CHAT_TEMPERATURE (default 0.7)
//   - CHAT_TIMEOUT: upper bound for one completion (default 30s)
//   - TRACING_ENABLED (default false), TRACING_ENDPOINT (default localhost:4317)
//   - PAINEL_ECHARTS_CDN: host serving echarts.min.js
//   - SECTIONS_MANIFEST: YAML file replacing the embedded section catalog
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

// ErrUnknownProvider is returned by Validate for an unsupported LLM_PROVIDER.
var ErrUnknownProvider = errors.New("config: unknown llm provider")

type Config struct {
	ServerAddr string
	Env        string

	LLMProvider   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string

	ChatMaxTokens   int
	ChatTemperature float64
	ChatTimeout     time.Duration

	TracingEnabled  bool
	TracingEndpoint string

	EChartsCDN       string
	SectionsManifest string
}

// Load reads .env (if any) and the environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env files.
func FromEnv() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		Env:        getEnv("APP_ENV", "production"),

		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		ChatMaxTokens:   getEnvInt("CHAT_MAX_TOKENS", 500),
		ChatTemperature: getEnvFloat("CHAT_TEMPERATURE", 0.7),
		ChatTimeout:     getEnvDuration("CHAT_TIMEOUT", 30*time.Second),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		EChartsCDN:       getEnv("PAINEL_ECHARTS_CDN", ""),
		SectionsManifest: getEnv("SECTIONS_MANIFEST", ""),
	}
}

// IsDevelopment reports whether APP_ENV selects development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ChatModel is the model name for the selected provider.
func (c *Config) ChatModel() string {
	switch c.LLMProvider {
	case ProviderGemini:
		return c.GeminiModel
	case ProviderMock:
		return ""
	default:
		return c.OpenAIModel
	}
}

// Validate checks values that would otherwise fail late. A missing API key
// is not an error: the chat reports it to the user instead.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini, ProviderMock:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.LLMProvider)
	}
	if c.ChatMaxTokens <= 0 {
		return fmt.Errorf("config: CHAT_MAX_TOKENS must be positive, got %d", c.ChatMaxTokens)
	}
	if c.ChatTemperature < 0 || c.ChatTemperature > 2 {
		return fmt.Errorf("config: CHAT_TEMPERATURE must be within 0..2, got %v", c.ChatTemperature)
	}
	if c.ChatTimeout <= 0 {
		return fmt.Errorf("config: CHAT_TIMEOUT must be positive, got %s", c.ChatTimeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("45s") and bare seconds ("45").
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

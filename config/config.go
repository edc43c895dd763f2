package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Agent core
	Agent      AgentConfig
	Memory     MemoryConfig
	LoggerTask LoggerTaskConfig

	// Backing stores
	GoogleSheets GoogleSheetsConfig
	Shipments    []ShipmentConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig bounds chat requests per phone number.
type RateLimitConfig struct {
	Enabled bool
	PerMin  int
	Burst   int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// AgentConfig configures the reasoning loop.
type AgentConfig struct {
	StepTimeout time.Duration
	Timezone    string
}

// MemoryConfig bounds the conversation store.
type MemoryConfig struct {
	MaxConversations int
	TTL              time.Duration
	MaxHistoryTurns  int
}

// LoggerTaskConfig configures the best-effort turn logger.
type LoggerTaskConfig struct {
	Timeout time.Duration
}

// GoogleSheetsConfig addresses the customer and chat-log spreadsheet.
// ServiceAccountKey holds the raw JSON key; CredentialsPath points to a key file.
type GoogleSheetsConfig struct {
	SpreadsheetID     string
	ServiceAccountKey string
	CredentialsPath   string
	CustomerSheet     string
	ChatLogSheet      string
}

// ShipmentConfig is an extra shipment row loaded on startup.
type ShipmentConfig struct {
	ID                string
	Status            string
	Location          string
	EstimatedDelivery string
	LastUpdate        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	if port := viper.GetInt("port"); port > 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Agent core
	cfg.Agent.StepTimeout = viper.GetDuration("agent.step_timeout")
	cfg.Agent.Timezone = viper.GetString("agent.timezone")
	cfg.Memory.MaxConversations = viper.GetInt("memory.max_conversations")
	cfg.Memory.TTL = viper.GetDuration("memory.ttl")
	cfg.Memory.MaxHistoryTurns = viper.GetInt("memory.max_history_turns")
	cfg.LoggerTask.Timeout = viper.GetDuration("logger_task.timeout")

	// Google Sheets
	cfg.GoogleSheets.SpreadsheetID = viper.GetString("google_sheets.spreadsheet_id")
	cfg.GoogleSheets.ServiceAccountKey = expandEnvVar(viper.GetString("google_sheets.service_account_key"))
	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.CustomerSheet = viper.GetString("google_sheets.customer_sheet")
	cfg.GoogleSheets.ChatLogSheet = viper.GetString("google_sheets.chat_log_sheet")
	if id := viper.GetString("google_spreadsheet_id"); id != "" {
		cfg.GoogleSheets.SpreadsheetID = id
	}
	if key := viper.GetString("google_service_account_key"); key != "" {
		cfg.GoogleSheets.ServiceAccountKey = key
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// A bare OPENAI_API_KEY is enough to run.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    defaultOpenAIModel,
				Timeout:  "30s",
			}}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Extra shipments
	if viper.IsSet("shipments") {
		if rows, ok := viper.Get("shipments").([]interface{}); ok {
			for _, r := range rows {
				if m, ok := r.(map[string]interface{}); ok {
					cfg.Shipments = append(cfg.Shipments, ShipmentConfig{
						ID:                getStringFromMap(m, "id"),
						Status:            getStringFromMap(m, "status"),
						Location:          getStringFromMap(m, "location"),
						EstimatedDelivery: getStringFromMap(m, "estimated_delivery"),
						LastUpdate:        getStringFromMap(m, "last_update"),
					})
				}
			}
		}
	}

	return cfg, nil
}

const defaultOpenAIModel = "gpt-4o-mini"

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 30)
	viper.SetDefault("rate_limit.burst", 5)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.temperature", 0.7)

	// Agent defaults
	viper.SetDefault("agent.step_timeout", "30s")
	viper.SetDefault("agent.timezone", "Asia/Jerusalem")
	viper.SetDefault("memory.max_conversations", 1000)
	viper.SetDefault("memory.ttl", "30m")
	viper.SetDefault("memory.max_history_turns", 10)
	viper.SetDefault("logger_task.timeout", "10s")

	viper.SetDefault("google_sheets.customer_sheet", "Customers")
	viper.SetDefault("google_sheets.chat_log_sheet", "ChatLogs")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case string:
			return v
		case int, int64, float64:
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

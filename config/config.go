package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Store     StoreConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig

	Gemini   GeminiConfig
	Telegram TelegramConfig
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

// StoreConfig points at the SQLite database file.
type StoreConfig struct {
	Path string
}

// SchedulerConfig tunes the availability grid and session lifetime.
type SchedulerConfig struct {
	DayStartHour      int
	DayEndHour        int
	StepMinutes       int
	SessionTTLMinutes int
	Timezone          string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Store.Path = viper.GetString("store.path")
	if storePath := viper.GetString("store_path"); storePath != "" {
		cfg.Store.Path = storePath
	}

	cfg.Scheduler.DayStartHour = viper.GetInt("scheduler.day_start_hour")
	cfg.Scheduler.DayEndHour = viper.GetInt("scheduler.day_end_hour")
	cfg.Scheduler.StepMinutes = viper.GetInt("scheduler.step_minutes")
	cfg.Scheduler.SessionTTLMinutes = viper.GetInt("scheduler.session_ttl_minutes")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required (set GEMINI_API_KEY or gemini.api_key in config.yaml)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("store.path", "scheduler.db")

	viper.SetDefault("scheduler.day_start_hour", 6)
	viper.SetDefault("scheduler.day_end_hour", 22)
	viper.SetDefault("scheduler.step_minutes", 30)
	viper.SetDefault("scheduler.session_ttl_minutes", 30)
	viper.SetDefault("scheduler.timezone", "UTC")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

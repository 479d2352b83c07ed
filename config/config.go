package config

import (
	"errors"
	"fmt"
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

	// Tracker specifics
	Storage  StorageConfig
	Tracker  TrackerConfig
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
	OutputPath   string
}

type RateLimitConfig struct {
	PerMin int
}

// StorageConfig selects the blob store holding one JSON snapshot per day.
type StorageConfig struct {
	Driver     string // memory | file | sqlite
	Dir        string
	SQLitePath string
	CacheSize  int
	CacheTTL   time.Duration
}

type TrackerConfig struct {
	Timezone      string
	PollInterval  time.Duration
	TimelineWidth float64
}

type TelegramConfig struct {
	BotToken   string
	ChatID     int64
	WebhookURL string
	// NgrokAPI is the local ngrok inspection API, used to discover a public
	// webhook URL when WebhookURL is empty. Empty disables discovery.
	NgrokAPI string
}

// Enabled reports whether the bot should be started.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/task-tracker/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/task-tracker/")

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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.OutputPath = viper.GetString("logger.output_path")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Dir = viper.GetString("storage.dir")
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	cfg.Storage.CacheSize = viper.GetInt("storage.cache_size")
	cfg.Storage.CacheTTL = viper.GetDuration("storage.cache_ttl")

	// Tracker
	cfg.Tracker.Timezone = viper.GetString("tracker.timezone")
	cfg.Tracker.PollInterval = viper.GetDuration("tracker.poll_interval")
	cfg.Tracker.TimelineWidth = viper.GetFloat64("tracker.timeline_width")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "file", "sqlite":
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "file" && c.Storage.Dir == "" {
		return errors.New("storage.dir is required for the file driver")
	}
	if c.Storage.Driver == "sqlite" && c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required for the sqlite driver")
	}
	if c.Storage.CacheSize < 0 {
		return errors.New("storage.cache_size must not be negative")
	}

	if c.Tracker.PollInterval <= 0 {
		return fmt.Errorf("tracker.poll_interval must be positive, got %s", c.Tracker.PollInterval)
	}
	if c.Tracker.TimelineWidth <= 0 {
		return fmt.Errorf("tracker.timeline_width must be positive, got %v", c.Tracker.TimelineWidth)
	}
	if _, err := time.LoadLocation(c.Tracker.Timezone); err != nil {
		return fmt.Errorf("tracker.timezone: %w", err)
	}

	if c.Telegram.Enabled() && c.Telegram.ChatID == 0 {
		return errors.New("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.output_path", "stderr")
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.dir", "~/.task-tracker/days")
	viper.SetDefault("storage.sqlite_path", "~/.task-tracker/tracker.db")
	viper.SetDefault("storage.cache_size", 64)
	viper.SetDefault("storage.cache_ttl", "10m")

	viper.SetDefault("tracker.timezone", "Local")
	viper.SetDefault("tracker.poll_interval", "10s")
	viper.SetDefault("tracker.timeline_width", 960)
}

// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server's settings.
type Config struct {
	Port   int
	DBPath string

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel  string
	LogFormat string

	DefaultCurrency string
	NotifyTimeout   time.Duration

	AMQPURL      string
	AMQPExchange string

	DiscordBotToken  string
	DiscordChannelID string
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AMQPEnabled reports whether notifications should be published to a broker.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// DiscordEnabled reports whether notifications should be posted to Discord.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordBotToken != "" && c.DiscordChannelID != ""
}

// Load reads the given .env files (".env" when none are named) into the
// environment and builds a Config from it. Variables already set in the
// environment win over file values. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		DBPath:           getEnv("DB_PATH", "./data/pennywise.db"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "text")),
		DefaultCurrency:  strings.ToUpper(getEnv("DEFAULT_CURRENCY", "INR")),
		AMQPURL:          os.Getenv("AMQP_URL"),
		AMQPExchange:     getEnv("AMQP_EXCHANGE", "pennywise.notifications"),
		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if cfg.TokenTTL, err = duration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.NotifyTimeout, err = duration("NOTIFY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if len(cfg.DefaultCurrency) != 3 {
		return nil, fmt.Errorf("invalid DEFAULT_CURRENCY %q", cfg.DefaultCurrency)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return d, nil
}

// ABOUTME: Centralized configuration for the Anchor recovery companion
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the companion app
type Config struct {
	// OpenAI settings
	OpenAIKey  string
	ChatModel  string
	VoiceID    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// Community service settings
	CommunityLatency time.Duration
}

// Load reads configuration from environment variables.
// The API key is the one hard requirement: without it the AI companion
// screens cannot function, so absence fails fast instead of degrading.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		ChatModel:        getEnv("ANCHOR_OPENAI_MODEL", "gpt-4o-mini"),
		VoiceID:          getEnv("ANCHOR_VOICE", "kore"),
		Timeout:          getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:       getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:       getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		CharmHost:        getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:      getEnv("CHARM_DB", "anchor"),
		AutoSync:         getEnvBool("CHARM_AUTO_SYNC", false),
		CommunityLatency: getEnvDuration("ANCHOR_COMMUNITY_LATENCY", 1500*time.Millisecond),
	}

	return cfg, cfg.Validate()
}

// LoadStorage reads only the storage settings. Offline commands like
// profile inspection work without an API key.
func LoadStorage() (*Config, error) {
	return &Config{
		CharmHost:   getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName: getEnv("CHARM_DB", "anchor"),
		AutoSync:    getEnvBool("CHARM_AUTO_SYNC", false),
	}, nil
}

func (c *Config) Validate() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set; export it or add it to .env before starting Anchor")
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

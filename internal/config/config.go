package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	Env                 string
	LogLevel            string
	SeedCount           int
	RefreshCount        int
	RandSeed            int64
	DeliveryInterval    time.Duration
	PresenceMinInterval time.Duration
	PresenceMaxInterval time.Duration
	TypingDisplay       time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                GetEnv("PORT", "8080"),
		Env:                 GetEnv("ENV", "development"),
		LogLevel:            GetEnv("LOG_LEVEL", "info"),
		SeedCount:           GetEnvInt("INBOX_SEED_COUNT", 25),
		RefreshCount:        GetEnvInt("INBOX_REFRESH_COUNT", 5),
		RandSeed:            int64(GetEnvInt("RAND_SEED", 0)),
		DeliveryInterval:    GetEnvDuration("DELIVERY_TICK_INTERVAL", 5*time.Second),
		PresenceMinInterval: GetEnvDuration("PRESENCE_MIN_INTERVAL", 4*time.Second),
		PresenceMaxInterval: GetEnvDuration("PRESENCE_MAX_INTERVAL", 12*time.Second),
		TypingDisplay:       GetEnvDuration("TYPING_DISPLAY_DURATION", 3*time.Second),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.SeedCount < 0 {
		return fmt.Errorf("INBOX_SEED_COUNT must not be negative")
	}
	if c.RefreshCount <= 0 {
		return fmt.Errorf("INBOX_REFRESH_COUNT must be positive")
	}
	if c.DeliveryInterval <= 0 {
		return fmt.Errorf("DELIVERY_TICK_INTERVAL must be positive")
	}
	if c.PresenceMinInterval <= 0 || c.PresenceMaxInterval < c.PresenceMinInterval {
		return fmt.Errorf("presence intervals must be positive with min <= max")
	}
	if c.TypingDisplay <= 0 {
		return fmt.Errorf("TYPING_DISPLAY_DURATION must be positive")
	}
	return nil
}

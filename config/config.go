package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all runtime configuration
type Config struct {
	// HTTP server settings
	HTTPAddr string

	// Ledger policy. Amounts are Kwanza, stored as whole units.
	StartingBalance int64
	MinStake        int64
	MinDeposit      int64
	MinWithdraw     int64
	BetHistoryLimit int

	// Environment settings
	Environment string
	LogLevel    string
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the singleton config instance
func Get() *Config {
	once.Do(func() {
		instance = load()
	})
	return instance
}

// load creates a new configuration from environment variables
func load() *Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("No .env file loaded")
	}

	return &Config{
		HTTPAddr: getEnvOrDefault("HTTP_ADDR", ":8080"),

		StartingBalance: getEnvInt64OrDefault("STARTING_BALANCE", 0),
		MinStake:        getEnvInt64OrDefault("MIN_STAKE", 100),
		MinDeposit:      getEnvInt64OrDefault("MIN_DEPOSIT", 1000),
		MinWithdraw:     getEnvInt64OrDefault("MIN_WITHDRAW", 1000),
		BetHistoryLimit: getEnvIntOrDefault("BET_HISTORY_LIMIT", 50),

		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// NewTestConfig creates a config with the default policy values,
// bypassing the environment. Intended for tests.
func NewTestConfig() *Config {
	return &Config{
		HTTPAddr:        ":0",
		StartingBalance: 0,
		MinStake:        100,
		MinDeposit:      1000,
		MinWithdraw:     1000,
		BetHistoryLimit: 50,
		Environment:     "test",
		LogLevel:        "debug",
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.MinStake <= 0 {
		return fmt.Errorf("MIN_STAKE must be positive, got %d", c.MinStake)
	}
	if c.MinDeposit <= 0 {
		return fmt.Errorf("MIN_DEPOSIT must be positive, got %d", c.MinDeposit)
	}
	if c.MinWithdraw <= 0 {
		return fmt.Errorf("MIN_WITHDRAW must be positive, got %d", c.MinWithdraw)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("STARTING_BALANCE must not be negative, got %d", c.StartingBalance)
	}
	if c.BetHistoryLimit <= 0 {
		return fmt.Errorf("BET_HISTORY_LIMIT must be positive, got %d", c.BetHistoryLimit)
	}
	return nil
}

// IsProduction returns true when running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("Invalid integer in environment, using default")
		return defaultValue
	}
	return parsed
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("Invalid integer in environment, using default")
		return defaultValue
	}
	return parsed
}

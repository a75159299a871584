package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"manito/database"
)

// Config holds all application configuration
type Config struct {
	// HTTP configuration
	ListenAddr string

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Roster configuration
	RosterPath string

	// Draw configuration
	DrawMaxAttempts int // Attempt ceiling for the allocation retry loop

	// Admin configuration
	AdminToken string // Token required for the administrative reset endpoint

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables, with an optional .env file
func load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		ListenAddr: getEnvWithDefault("LISTEN_ADDR", ":8080"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Roster
		RosterPath: getEnvWithDefault("ROSTER_PATH", "roster.yaml"),

		// Draw settings with defaults
		DrawMaxAttempts: 5,

		// Admin
		AdminToken: os.Getenv("ADMIN_TOKEN"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if attempts := os.Getenv("DRAW_MAX_ATTEMPTS"); attempts != "" {
		if parsed, err := strconv.Atoi(attempts); err == nil && parsed > 0 {
			config.DrawMaxAttempts = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
		if config.AdminToken == "" {
			return nil, fmt.Errorf("ADMIN_TOKEN is required")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:     "test",
		ListenAddr:      ":0",
		RosterPath:      "roster.yaml",
		DrawMaxAttempts: 5,
		AdminToken:      "test-admin-token",
	}
}

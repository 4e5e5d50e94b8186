package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Ledger backend types.
const (
	LedgerBackendMemory = "memory"
	LedgerBackendSQLite = "sqlite"
)

// Remote storage backend types.
const (
	StorageBackendDrive  = "drive"
	StorageBackendMemory = "memory"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Ledger store
	LedgerBackend string
	SQLitePath    string

	// Remote snapshot storage
	StorageBackend        string
	GoogleCredentialsFile string
	BackupFolder          string
	BackupTimeout         time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Ledger store. The in-memory backend is the default; sqlite is the
		// opt-in persistent backend.
		LedgerBackend: getEnv("LEDGER_BACKEND", LedgerBackendMemory),
		SQLitePath:    getEnv("SQLITE_PATH", "gestao-financeira.db"),

		// Remote snapshot storage
		StorageBackend:        getEnv("STORAGE_BACKEND", StorageBackendMemory),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
		BackupFolder:          getEnv("BACKUP_FOLDER", "GestaoFinanceiraBackups"),
	}

	// Parse backup timeout
	timeoutStr := getEnv("BACKUP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid BACKUP_TIMEOUT value '%s', falling back to 10s\n", timeoutStr)
		timeout = 10 * time.Second
	}
	config.BackupTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Client side.
	APIBaseURL  string
	StoragePath string

	// Server side.
	ServerPort    string
	DatabasePath  string
	JWTSecretKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatModel     string
	RateLimitRPM  int

	Environment string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		StoragePath:   getEnv("STORAGE_PATH", defaultStoragePath()),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "huaxia.db"),
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		ChatModel:     getEnv("CHAT_MODEL", "gpt-4o-mini"),
		RateLimitRPM:  getEnvAsInt("RATE_LIMIT_RPM", 20),
		Environment:   env,
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// defaultStoragePath puts the client's local state under the user's home
// directory; falls back to the working directory when home is unknown.
func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".go-huaxia.db"
	}
	return filepath.Join(home, ".go-huaxia", "state.db")
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

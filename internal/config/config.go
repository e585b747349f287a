package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Catalog   CatalogConfig
	Chapa     ChapaConfig
	Identity  IdentityConfig
	Selection SelectionConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type SessionConfig struct {
	Secret string
}

type CatalogConfig struct {
	URL            string
	TimeoutSeconds int
}

type ChapaConfig struct {
	SecretKey      string
	BaseURL        string
	CallbackURL    string
	ReturnURL      string
	Title          string // shown on the hosted checkout page, ≤16 chars
	Description    string
	TimeoutSeconds int
}

type IdentityConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

type SelectionConfig struct {
	DefaultTier     string
	DefaultQuantity int
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "localhost"),
			Env:  getEnv("ENV", "development"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
		},
		Catalog: CatalogConfig{
			URL:            getEnv("CATALOG_URL", "https://zelesegna.com/myticket/app/"),
			TimeoutSeconds: getEnvAsInt("CATALOG_TIMEOUT_SECONDS", 15),
		},
		Chapa: ChapaConfig{
			SecretKey:      getEnv("CHAPA_SECRET_KEY", ""),
			BaseURL:        getEnv("CHAPA_BASE_URL", "https://api.chapa.co/v1"),
			CallbackURL:    getEnv("CHAPA_CALLBACK_URL", "http://localhost:8080/checkout/callback"),
			ReturnURL:      getEnv("CHAPA_RETURN_URL", "http://localhost:8080/checkout/complete"),
			Title:          getEnv("CHAPA_TITLE", "MyTicket"),
			Description:    getEnv("CHAPA_DESCRIPTION", "Event ticket purchase"),
			TimeoutSeconds: getEnvAsInt("CHAPA_TIMEOUT_SECONDS", 30),
		},
		Identity: IdentityConfig{
			BaseURL:        getEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com/v1"),
			APIKey:         getEnv("IDENTITY_API_KEY", ""),
			TimeoutSeconds: getEnvAsInt("IDENTITY_TIMEOUT_SECONDS", 15),
		},
		Selection: SelectionConfig{
			DefaultTier:     getEnv("SELECTION_DEFAULT_TIER", "Regular"),
			DefaultQuantity: getEnvAsInt("SELECTION_DEFAULT_QUANTITY", 1),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

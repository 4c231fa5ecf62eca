package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Auth      AuthConfig
	Lookup    LookupConfig
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name string
	Env  string
}

// APIConfig points the console at the remote backend
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the operator credentials used at console startup
type AuthConfig struct {
	Email    string
	Password string
}

// LookupConfig tunes the debounced entity search
type LookupConfig struct {
	Debounce time.Duration
	MinChars int
}

// ServerConfig configures the bundled development backend
type ServerConfig struct {
	Port      string
	JWTSecret string
	JWTExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "ventas-console")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("AUTH_EMAIL", "operador@gestionpyme.com")
	viper.SetDefault("AUTH_PASSWORD", "operador123")
	viper.SetDefault("LOOKUP_DEBOUNCE_MS", 300)
	viper.SetDefault("LOOKUP_MIN_CHARS", 2)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Auth: AuthConfig{
			Email:    viper.GetString("AUTH_EMAIL"),
			Password: viper.GetString("AUTH_PASSWORD"),
		},
		Lookup: LookupConfig{
			Debounce: time.Duration(viper.GetInt("LOOKUP_DEBOUNCE_MS")) * time.Millisecond,
			MinChars: viper.GetInt("LOOKUP_MIN_CHARS"),
		},
		Server: ServerConfig{
			Port:      viper.GetString("SERVER_PORT"),
			JWTSecret: viper.GetString("JWT_SECRET"),
			JWTExpiry: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort      string `mapstructure:"APP_PORT"`
	Env          string `mapstructure:"ENV"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`

	// Session cookie signing secret.
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Google OAuth client configuration.
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`

	// Gemini configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Scheduling configuration.
	CalendarID  string `mapstructure:"CALENDAR_ID"`
	SlotMinutes int    `mapstructure:"SLOT_MINUTES"`

	// Optional Redis session backend. When REDIS_ADDR is empty the
	// in-process store is used.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values. Every key needs a default (empty for secrets) so
	// viper knows it and AutomaticEnv can feed Unmarshal from the
	// environment alone.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CLIENT_ORIGIN", "")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("SLOT_MINUTES", 30)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.ClientOrigin == "" {
		if IsProduction() {
			AppConfig.ClientOrigin = "https://regenmedai.com"
		} else {
			AppConfig.ClientOrigin = "http://localhost:5173"
		}
	}

	// Missing boot-time secrets are fatal, not runtime errors.
	if AppConfig.SessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}
	if AppConfig.GoogleClientID == "" || AppConfig.GoogleClientSecret == "" || AppConfig.GoogleRedirectURI == "" {
		log.Fatal("Google OAuth environment variables (GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REDIRECT_URI) not set")
	}
	if AppConfig.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// SMTP relay configuration.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`

	// Address that receives admin alert emails.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// Static bearer token guarding admin endpoints.
	AdminAPIToken string `mapstructure:"ADMIN_API_TOKEN"`

	// Redis configuration (rate limiter counters).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisRateDB   int    `mapstructure:"REDIS_RATE_DB"`

	// Rate limiting per client IP.
	RateLimitWindowMin int `mapstructure:"RATE_LIMIT_WINDOW_MIN"`
	RateLimitMax       int `mapstructure:"RATE_LIMIT_MAX"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRONTEND_URL", "https://angoniadventure.com")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "angoni")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("ADMIN_EMAIL", "info@angoniadventure.com")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_RATE_DB", 0)
	viper.SetDefault("RATE_LIMIT_WINDOW_MIN", 15)
	viper.SetDefault("RATE_LIMIT_MAX", 200)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

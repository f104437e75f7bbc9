package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	MongoDB           string `mapstructure:"MONGO_DB"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Gemini API key for the NLP tagger. Empty means the regex tagger runs alone.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Scheduling window and alternative search settings.
	BusinessOpen    string `mapstructure:"BUSINESS_OPEN"`
	BusinessClose   string `mapstructure:"BUSINESS_CLOSE"`
	SlotIntervalMin int    `mapstructure:"SLOT_INTERVAL_MIN"`
	MaxAlternatives int    `mapstructure:"MAX_ALTERNATIVES"`
	SessionTTLMin   int    `mapstructure:"SESSION_TTL_MIN"`
	ReminderLeadMin int    `mapstructure:"REMINDER_LEAD_MIN"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "schedly")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("BUSINESS_OPEN", "09:00")
	viper.SetDefault("BUSINESS_CLOSE", "17:00")
	viper.SetDefault("SLOT_INTERVAL_MIN", 30)
	viper.SetDefault("MAX_ALTERNATIVES", 2)
	viper.SetDefault("SESSION_TTL_MIN", 10)
	viper.SetDefault("REMINDER_LEAD_MIN", 60)

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

package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	MongoDB     string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking flow configuration.
	GreetingKeywords      string `mapstructure:"GREETING_KEYWORDS"`
	GreetingCaseSensitive bool   `mapstructure:"GREETING_CASE_SENSITIVE"`
	DaysToOffer           int    `mapstructure:"DAYS_TO_OFFER"`
	SlotLabels            string `mapstructure:"SLOT_LABELS"`
	SessionTTLMinutes     int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Reminder configuration.
	RemindersEnabled  bool `mapstructure:"REMINDERS_ENABLED"`
	ReminderLeadHours int  `mapstructure:"REMINDER_LEAD_HOURS"`

	MaxMsgsPerMin int `mapstructure:"MAX_MSGS_PER_MIN"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "citabot")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("GREETING_KEYWORDS", "hola,buenas,cita")
	viper.SetDefault("GREETING_CASE_SENSITIVE", false)
	viper.SetDefault("DAYS_TO_OFFER", 5)
	viper.SetDefault("SLOT_LABELS", "9:00 AM,11:00 AM,1:00 PM,3:00 PM,5:00 PM")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REMINDERS_ENABLED", true)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)
	viper.SetDefault("MAX_MSGS_PER_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GreetingKeywordList splits the configured greeting keywords.
func (c Config) GreetingKeywordList() []string {
	return splitTrimmed(c.GreetingKeywords)
}

// SlotLabelList splits the configured slot catalog, preserving order.
func (c Config) SlotLabelList() []string {
	return splitTrimmed(c.SlotLabels)
}

func splitTrimmed(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

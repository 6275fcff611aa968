package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers           []string
	KafkaNotificationTopic string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	RelayBatchSize int

	LogLevel string
}

// LoadConfig reads configuration from the environment, applying defaults
// for everything except the secrets.
func LoadConfig() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "travelorders")
	viper.SetDefault("DB_NAME", "travelorders")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
	viper.SetDefault("KAFKA_NOTIFICATION_TOPIC", "order-status-changed")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("RELAY_BATCH_SIZE", 50)
	viper.SetDefault("LOG_LEVEL", "info")

	tokenTTL, err := time.ParseDuration(viper.GetString("TOKEN_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TOKEN_TTL: %w", err)
	}

	config := Config{
		HTTPPort:               viper.GetString("HTTP_PORT"),
		DBHost:                 viper.GetString("DB_HOST"),
		DBPort:                 viper.GetString("DB_PORT"),
		DBUser:                 viper.GetString("DB_USER"),
		DBPassword:             viper.GetString("DB_PASSWORD"),
		DBName:                 viper.GetString("DB_NAME"),
		DBSslMode:              viper.GetString("DB_SSLMODE"),
		RedisAddr:              viper.GetString("REDIS_ADDR"),
		RedisPassword:          viper.GetString("REDIS_PASSWORD"),
		RedisDB:                viper.GetInt("REDIS_DB"),
		KafkaBrokers:           viper.GetStringSlice("KAFKA_BROKERS"),
		KafkaNotificationTopic: viper.GetString("KAFKA_NOTIFICATION_TOPIC"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		TokenTTL:               tokenTTL,
		BcryptCost:             viper.GetInt("BCRYPT_COST"),
		RelayBatchSize:         viper.GetInt("RELAY_BATCH_SIZE"),
		LogLevel:               viper.GetString("LOG_LEVEL"),
	}

	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

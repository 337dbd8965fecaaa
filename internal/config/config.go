// Package config reads the service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	AWS     AWSConfig
	Tables  TablesConfig
	Storage StorageConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Admin   AdminConfig
	Quote   QuoteConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Services        string
	Config          string
	ContactMessages string
}

// StorageConfig enables service image uploads when Bucket is set.
type StorageConfig struct {
	Bucket        string
	Endpoint      string
	PublicBaseURL string
}

// RedisConfig enables the shared hand-off mailbox when Addr is set.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	HandOffTTL time.Duration
}

// KafkaConfig enables contact events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers      []string
	ContactTopic string
}

type AdminConfig struct {
	Password     string
	PasswordHash string
}

type QuoteConfig struct {
	WhatsAppNumber string
	CompanyName    string
	SessionIdleTTL time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		AWS: AWSConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		},
		Tables: TablesConfig{
			Services:        getEnv("SERVICES_TABLE", "servicios"),
			Config:          getEnv("CONFIG_TABLE", "configuracion"),
			ContactMessages: getEnv("CONTACT_MESSAGES_TABLE", "contact_messages"),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("S3_BUCKET", ""),
			Endpoint:      getEnv("S3_ENDPOINT", ""),
			PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvInt("REDIS_DB", 0),
			HandOffTTL: getEnvDuration("HANDOFF_TTL", 30*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:      getEnvSlice("KAFKA_BROKERS", nil),
			ContactTopic: getEnv("KAFKA_CONTACT_TOPIC", "contact.submitted"),
		},
		Admin: AdminConfig{
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Quote: QuoteConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "593984467411"),
			CompanyName:    getEnv("COMPANY_NAME", "Andicot"),
			SessionIdleTTL: getEnvDuration("SESSION_IDLE_TTL", 2*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

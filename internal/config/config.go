// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-talent/internal/shared/idalloc"
)

type StoreBackend string

const (
	BackendMemory   StoreBackend = "memory"
	BackendDynamoDB StoreBackend = "dynamodb"
	BackendPostgres StoreBackend = "postgres"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	Port     string
	LogLevel string

	StoreBackend     StoreBackend
	TableName        string
	AWSRegion        string
	DynamoDBEndpoint string
	DB               DBConfig

	AllocatorPolicy idalloc.Policy
	RedisAddr       string
	KafkaBroker     string

	FormOptionsFile   string
	StrictFormOptions bool
	SeedDemoData      bool
}

// Load reads the environment. Missing backend requirements and unknown
// values fail here so the server never starts half configured.
func Load() (Config, error) {
	cfg := Config{
		Port:             getenv("PORT", "8080"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		TableName:        os.Getenv("EMPLOYEE_TABLE_NAME"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		FormOptionsFile: os.Getenv("FORM_OPTIONS_FILE"),
	}

	switch b := StoreBackend(strings.ToLower(getenv("STORE_BACKEND", string(BackendMemory)))); b {
	case BackendMemory:
		cfg.StoreBackend = b
	case BackendDynamoDB:
		if cfg.TableName == "" {
			return Config{}, errors.New("EMPLOYEE_TABLE_NAME is required when STORE_BACKEND=dynamodb")
		}
		cfg.StoreBackend = b
	case BackendPostgres:
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
			return Config{}, errors.New("DB_HOST, DB_USER and DB_NAME are required when STORE_BACKEND=postgres")
		}
		cfg.StoreBackend = b
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND %q is not supported", b)
	}

	policy, err := idalloc.ParsePolicy(os.Getenv("ALLOCATOR_POLICY"))
	if err != nil {
		return Config{}, fmt.Errorf("ALLOCATOR_POLICY: %w", err)
	}
	cfg.AllocatorPolicy = policy

	if cfg.StrictFormOptions, err = getbool("STRICT_FORM_OPTIONS", false); err != nil {
		return Config{}, err
	}
	if cfg.SeedDemoData, err = getbool("SEED_DEMO_DATA", true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

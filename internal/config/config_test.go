package config_test

import (
	"testing"

	"go-talent/internal/config"
	"go-talent/internal/shared/idalloc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "LOG_LEVEL", "STORE_BACKEND", "EMPLOYEE_TABLE_NAME", "AWS_REGION",
	"DYNAMODB_ENDPOINT", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_PORT", "DB_SSLMODE", "ALLOCATOR_POLICY", "REDIS_ADDR", "KAFKA_BROKER",
	"FORM_OPTIONS_FILE", "STRICT_FORM_OPTIONS", "SEED_DEMO_DATA",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.BackendMemory, cfg.StoreBackend)
	assert.Equal(t, idalloc.PolicyMaxPlusOne, cfg.AllocatorPolicy)
	assert.True(t, cfg.SeedDemoData)
	assert.False(t, cfg.StrictFormOptions)
	assert.Equal(t, "5432", cfg.DB.Port)
}

func TestLoad_DynamoDBRequiresTable(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "dynamodb")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMPLOYEE_TABLE_NAME")

	t.Setenv("EMPLOYEE_TABLE_NAME", "employees")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendDynamoDB, cfg.StoreBackend)
	assert.Equal(t, "employees", cfg.TableName)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoDBEndpoint)
}

func TestLoad_PostgresRequiresConnection(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "talent")
	t.Setenv("DB_NAME", "talent")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.DB.Host)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown backend", "STORE_BACKEND", "sqlite"},
		{"unknown policy", "ALLOCATOR_POLICY", "uuid"},
		{"bad strict flag", "STRICT_FORM_OPTIONS", "sometimes"},
		{"bad seed flag", "SEED_DEMO_DATA", "yes please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()

			assert.Error(t, err)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOCATOR_POLICY", "Random")
	t.Setenv("STRICT_FORM_OPTIONS", "true")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, idalloc.PolicyRandom, cfg.AllocatorPolicy)
	assert.True(t, cfg.StrictFormOptions)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

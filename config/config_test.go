package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.DatabaseName)
	assert.Equal(t, "8000", cfg.Port)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "fooddelivery")
	t.Setenv("PORT", "9090")

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "fooddelivery", cfg.DatabaseName)
	assert.Equal(t, "9090", cfg.Port)
}

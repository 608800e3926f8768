package config_test

import (
	"testing"

	"go-garment-store/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("success_defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("BACKEND_BASE_URL", "")
		t.Setenv("SERVICE_NAME", "")
		t.Setenv("APP_ENV", "")

		cfg := config.Load()

		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "http://localhost:8000", cfg.BackendBaseURL)
		assert.Equal(t, "garment-store-api", cfg.ServiceName)
		assert.Equal(t, "development", cfg.AppEnv)
	})

	t.Run("success_env_override", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("BACKEND_BASE_URL", "http://backend:9000")
		t.Setenv("SERVICE_NAME", "storefront")

		cfg := config.Load()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "http://backend:9000", cfg.BackendBaseURL)
		assert.Equal(t, "storefront", cfg.ServiceName)
	})
}

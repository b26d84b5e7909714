package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/regform/pkg/config"
)

type testConfig struct {
	Name    string `env:"TEST_CFG_NAME" envDefault:"fallback"`
	Retries int    `env:"TEST_CFG_RETRIES" envDefault:"3"`
}

func TestLoad(t *testing.T) {
	t.Run("reads values from the environment", func(t *testing.T) {
		t.Setenv("TEST_CFG_NAME", "from-env")
		t.Setenv("TEST_CFG_RETRIES", "7")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 7, cfg.Retries)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports unparseable values", func(t *testing.T) {
		t.Setenv("TEST_CFG_RETRIES", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("TEST_CFG_RETRIES", "boom")
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("passes through on success", func(t *testing.T) {
		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	})
}

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided struct from environment variables, honoring
// `env` field tags and `envDefault` fallbacks. The default .env file, when
// present, is read once per process before the first parse.
//
// Example:
//
//	type Limits struct {
//		MinAge       int `env:"REGFORM_MIN_AGE" envDefault:"18"`
//		MinInterests int `env:"REGFORM_MIN_INTERESTS" envDefault:"2"`
//	}
//
//	var limits Limits
//	if err := config.Load(&limits); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; missing is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

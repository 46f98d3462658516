package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formforge/govern/pkg/config"
)

type loaderTestConfig struct {
	Name  string `env:"LOADER_TEST_NAME" envDefault:"fallback"`
	Count int    `env:"LOADER_TEST_COUNT" envDefault:"3"`
}

type requiredTestConfig struct {
	Token string `env:"LOADER_TEST_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
	})

	t.Run("returns cached value on second load", func(t *testing.T) {
		var first loaderTestConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("LOADER_TEST_NAME", "changed-later")

		var second loaderTestConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second, "cache should win over env changes")
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[loaderTestConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredTestConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredTestConfig
		config.MustLoad(&cfg)
	})
}

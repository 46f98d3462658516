package configstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formforge/govern/pkg/configstore"
	"github.com/formforge/govern/pkg/environment"
)

const presetDoc = `
presets:
  production:
    - key: cache.ttl.default
      value: 3600
      reason: long cache in production
    - key: api.debug.enabled
      value: false
  development:
    - key: cache.ttl.default
      value: 60
    - key: api.debug.enabled
      value: true
`

func TestLoadPresets(t *testing.T) {
	t.Parallel()

	presets, err := configstore.LoadPresets(strings.NewReader(presetDoc))
	require.NoError(t, err)
	require.Len(t, presets, 2)

	byEnv := make(map[environment.Environment]configstore.Preset, len(presets))
	for _, p := range presets {
		byEnv[p.Environment] = p
	}

	prod := byEnv[environment.Production]
	require.Len(t, prod.Entries, 2)
	assert.Equal(t, "cache.ttl.default", prod.Entries[0].Key)
	assert.Equal(t, configstore.TypeNumber, prod.Entries[0].Value.Type())
	assert.Equal(t, "long cache in production", prod.Entries[0].Reason)
	assert.Equal(t, configstore.TypeBool, prod.Entries[1].Value.Type())
}

func TestLoadPresetsMalformed(t *testing.T) {
	t.Parallel()

	_, err := configstore.LoadPresets(strings.NewReader("presets: [not a map"))
	assert.ErrorIs(t, err, configstore.ErrMalformedPreset)

	_, err = configstore.LoadPresets(strings.NewReader("presets:\n  production:\n    - value: 5\n"))
	assert.ErrorIs(t, err, configstore.ErrMalformedPreset)
}

func TestApplyPreset(t *testing.T) {
	t.Parallel()

	presets, err := configstore.LoadPresets(strings.NewReader(presetDoc))
	require.NoError(t, err)

	t.Run("applies only the matching environment", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t, configstore.WithEnvironment(environment.Production))

		applied := store.ApplyPreset(presets, environment.Production, "bootstrap")
		assert.Equal(t, 2, applied)
		assert.Equal(t, 3600.0, store.NumberVal("cache.ttl.default", 0))
		assert.False(t, store.BoolVal("api.debug.enabled", true))
	})

	t.Run("preset values go through validation", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)

		bad := []configstore.Preset{{
			Environment: environment.Development,
			Entries: []configstore.PresetEntry{
				{Key: "cache.ttl.default", Value: configstore.Number(1)}, // below min 60
				{Key: "cache.ttl.default", Value: configstore.Number(120)},
			},
		}}

		applied := store.ApplyPreset(bad, environment.Development, "bootstrap")
		assert.Equal(t, 1, applied, "min-violating entry skipped")
		assert.Equal(t, 120.0, store.NumberVal("cache.ttl.default", 0))
	})
}

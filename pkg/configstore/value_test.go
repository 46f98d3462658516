package configstore_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formforge/govern/pkg/configstore"
)

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	s, ok := configstore.String("hello").AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	n, ok := configstore.Number(3.5).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 3.5, n)

	b, ok := configstore.Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	_, ok = configstore.String("x").AsNumber()
	assert.False(t, ok)

	assert.True(t, configstore.Value{}.IsZero())
	assert.False(t, configstore.Bool(false).IsZero())
}

func TestValueContainerIsolation(t *testing.T) {
	t.Parallel()

	source := map[string]any{"nested": map[string]any{"n": 1}}
	v := configstore.Object(source)

	source["nested"].(map[string]any)["n"] = 99
	got, _ := v.AsObject()
	assert.Equal(t, 1, got["nested"].(map[string]any)["n"])

	// accessor copies are independent too
	got["nested"].(map[string]any)["n"] = 42
	fresh, _ := v.AsObject()
	assert.Equal(t, 1, fresh["nested"].(map[string]any)["n"])
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, configstore.Number(5).Equal(configstore.Number(5)))
	assert.False(t, configstore.Number(5).Equal(configstore.Number(6)))
	assert.False(t, configstore.Number(1).Equal(configstore.Bool(true)))
	assert.True(t, configstore.List([]any{"a", "b"}).Equal(configstore.List([]any{"a", "b"})))
	assert.False(t, configstore.List([]any{"a"}).Equal(configstore.List([]any{"b"})))
	assert.True(t, configstore.Value{}.Equal(configstore.Value{}))
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	v, err := configstore.FromAny(7)
	require.NoError(t, err)
	assert.Equal(t, configstore.TypeNumber, v.Type())

	v, err = configstore.FromAny([]any{"a", 1})
	require.NoError(t, err)
	assert.Equal(t, configstore.TypeList, v.Type())

	v, err = configstore.FromAny(map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, configstore.TypeObject, v.Type())

	_, err = configstore.FromAny(nil)
	assert.ErrorIs(t, err, configstore.ErrUnsupportedValue)

	_, err = configstore.FromAny(struct{}{})
	assert.ErrorIs(t, err, configstore.ErrUnsupportedValue)
}

func TestValueJSONRoundTrip(t *testing.T) {
	t.Parallel()

	values := []configstore.Value{
		configstore.String("hello"),
		configstore.Number(3.25),
		configstore.Bool(false),
		configstore.Object(map[string]any{"k": "v"}),
		configstore.List([]any{"a", "b"}),
	}

	for _, original := range values {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded configstore.Value
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.Equal(decoded), "round trip of %s", original.Type())
	}
}

func TestValueJSONTypeMismatchRejected(t *testing.T) {
	t.Parallel()

	var v configstore.Value
	err := json.Unmarshal([]byte(`{"type":"number","value":"not a number"}`), &v)
	assert.ErrorIs(t, err, configstore.ErrUnsupportedValue)
}

package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formforge/govern/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]environment.Environment{
		"production":  environment.Production,
		"prod":        environment.Production,
		"PROD":        environment.Production,
		"staging":     environment.Staging,
		"stage":       environment.Staging,
		"development": environment.Development,
		"dev":         environment.Development,
		"":            environment.Development,
		"garbage":     environment.Development,
		"all":         environment.All,
		"*":           environment.All,
		" prod ":      environment.Production,
	}

	for input, want := range cases {
		assert.Equal(t, want, environment.Parse(input), "input %q", input)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.Matches(environment.All))
	assert.True(t, environment.Production.Matches(""))
	assert.True(t, environment.Production.Matches(environment.Production))
	assert.False(t, environment.Production.Matches(environment.Staging))
	assert.True(t, environment.Development.Matches(environment.Development))
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Staging)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))

	// empty context falls back to development
	assert.Equal(t, environment.Development, environment.FromContext(context.Background()))
	assert.Equal(t, environment.Development, environment.FromContext(nil))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
}

package tier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formforge/govern/pkg/tier"
)

func testCatalog(t *testing.T) *tier.Catalog {
	t.Helper()

	catalog, err := tier.NewCatalog(
		tier.Definition{
			Level: tier.Starter,
			Name:  "Starter",
			Features: map[string]tier.FeatureSetting{
				"api-access": tier.Toggle(false),
				"form-count": tier.Ceiling(10),
			},
			Limits:       map[string]int64{"monthly-submissions": 100, "storage-mb": 50},
			Capabilities: []string{"basic-forms"},
		},
		tier.Definition{
			Level: tier.Pro,
			Name:  "Pro",
			Features: map[string]tier.FeatureSetting{
				"api-access": tier.Toggle(true),
				"form-count": tier.Ceiling(100),
			},
			Limits:       map[string]int64{"monthly-submissions": 5000, "storage-mb": 1024},
			Capabilities: []string{"basic-forms", "webhooks", "custom-branding"},
		},
		tier.Definition{
			Level: tier.Advanced,
			Name:  "Advanced",
			Features: map[string]tier.FeatureSetting{
				"api-access": tier.Toggle(true),
				"form-count": tier.Ceiling(tier.Unlimited),
			},
			Limits:       map[string]int64{"monthly-submissions": 50000, "storage-mb": 10240},
			Capabilities: []string{"basic-forms", "webhooks", "custom-branding", "sso"},
		},
		tier.Definition{
			Level: tier.Enterprise,
			Name:  "Enterprise",
			Features: map[string]tier.FeatureSetting{
				"api-access": tier.Toggle(true),
				"form-count": tier.Ceiling(tier.Unlimited),
			},
			Limits:       map[string]int64{"monthly-submissions": tier.Unlimited, "storage-mb": tier.Unlimited},
			Capabilities: []string{"basic-forms", "webhooks", "custom-branding", "sso", "audit-log"},
		},
	)
	require.NoError(t, err)
	return catalog
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []tier.Level{tier.Starter, tier.Pro, tier.Advanced, tier.Enterprise}, tier.Levels())

	assert.True(t, tier.Pro.AtLeast(tier.Starter))
	assert.True(t, tier.Pro.AtLeast(tier.Pro))
	assert.False(t, tier.Pro.AtLeast(tier.Advanced))
	assert.True(t, tier.Enterprise.AtLeast(tier.Advanced))

	// unknown levels rank below everything
	assert.False(t, tier.Level("platinum").AtLeast(tier.Starter))
	assert.False(t, tier.Level("platinum").Known())
}

func TestLevelNext(t *testing.T) {
	t.Parallel()

	next, ok := tier.Starter.Next()
	require.True(t, ok)
	assert.Equal(t, tier.Pro, next)

	next, ok = tier.Advanced.Next()
	require.True(t, ok)
	assert.Equal(t, tier.Enterprise, next)

	_, ok = tier.Enterprise.Next()
	assert.False(t, ok)

	_, ok = tier.Level("platinum").Next()
	assert.False(t, ok)
}

func TestNewCatalogValidation(t *testing.T) {
	t.Parallel()

	t.Run("unknown level rejected", func(t *testing.T) {
		t.Parallel()
		_, err := tier.NewCatalog(tier.Definition{Level: tier.Level("platinum")})
		assert.ErrorIs(t, err, tier.ErrUnknownLevel)
	})

	t.Run("duplicate level rejected", func(t *testing.T) {
		t.Parallel()
		_, err := tier.NewCatalog(
			tier.Definition{Level: tier.Starter},
			tier.Definition{Level: tier.Starter},
		)
		assert.ErrorIs(t, err, tier.ErrDuplicateLevel)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		t.Parallel()
		_, err := tier.NewCatalog(tier.Definition{
			Level:  tier.Starter,
			Limits: map[string]int64{"monthly-submissions": -7},
		})
		assert.ErrorIs(t, err, tier.ErrInvalidLimit)
	})

	t.Run("unlimited is a valid limit", func(t *testing.T) {
		t.Parallel()
		_, err := tier.NewCatalog(tier.Definition{
			Level:  tier.Starter,
			Limits: map[string]int64{"monthly-submissions": tier.Unlimited},
		})
		assert.NoError(t, err)
	})
}

func TestCatalogLookups(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	def, ok := catalog.Get(tier.Pro)
	require.True(t, ok)
	assert.Equal(t, "Pro", def.Name)

	_, ok = catalog.Get(tier.Level("platinum"))
	assert.False(t, ok)

	setting, ok := catalog.Setting(tier.Starter, "api-access")
	require.True(t, ok)
	assert.True(t, setting.IsDisabled())

	limit, ok := catalog.Limit(tier.Pro, "monthly-submissions")
	require.True(t, ok)
	assert.Equal(t, int64(5000), limit)

	_, ok = catalog.Limit(tier.Pro, "unknown-limit")
	assert.False(t, ok)
}

func TestCatalogIsolation(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	def, ok := catalog.Get(tier.Starter)
	require.True(t, ok)
	def.Limits["monthly-submissions"] = 999999
	def.Capabilities[0] = "tampered"

	fresh, _ := catalog.Get(tier.Starter)
	assert.Equal(t, int64(100), fresh.Limits["monthly-submissions"])
	assert.Equal(t, "basic-forms", fresh.Capabilities[0])
}

func TestLowestWith(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	level, ok := catalog.LowestWith("api-access")
	require.True(t, ok)
	assert.Equal(t, tier.Pro, level, "starter disables api-access")

	// form-count is a ceiling everywhere, never a hard disable
	level, ok = catalog.LowestWith("form-count")
	require.True(t, ok)
	assert.Equal(t, tier.Starter, level)

	// undeclared features are not disabled anywhere
	level, ok = catalog.LowestWith("unheard-of")
	require.True(t, ok)
	assert.Equal(t, tier.Starter, level)
}

func TestFeatureSetting(t *testing.T) {
	t.Parallel()

	assert.True(t, tier.Toggle(false).IsDisabled())
	assert.False(t, tier.Toggle(true).IsDisabled())
	assert.False(t, tier.Ceiling(0).IsDisabled())

	limit, ok := tier.Ceiling(42).Limit()
	require.True(t, ok)
	assert.Equal(t, int64(42), limit)

	_, ok = tier.Toggle(true).Limit()
	assert.False(t, ok)

	assert.Equal(t, "priority", tier.Option("priority").Value())
	assert.Equal(t, "true", tier.Toggle(true).String())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)

	t.Run("upgrade gains capabilities and limits", func(t *testing.T) {
		t.Parallel()

		cmp := catalog.Compare(tier.Starter, tier.Pro)
		require.NotNil(t, cmp)

		assert.ElementsMatch(t, []string{"webhooks", "custom-branding"}, cmp.NewCapabilities)
		assert.Empty(t, cmp.LostCapabilities)
		assert.Equal(t, tier.LimitChange{From: 100, To: 5000}, cmp.IncreasedLimits["monthly-submissions"])
		assert.Equal(t, tier.LimitChange{From: 50, To: 1024}, cmp.IncreasedLimits["storage-mb"])
		assert.False(t, cmp.HasDecreases())
	})

	t.Run("reaching unlimited counts as increase", func(t *testing.T) {
		t.Parallel()

		cmp := catalog.Compare(tier.Advanced, tier.Enterprise)
		require.NotNil(t, cmp)
		assert.Equal(t, tier.LimitChange{From: 50000, To: tier.Unlimited}, cmp.IncreasedLimits["monthly-submissions"])
	})

	t.Run("downgrade from unlimited is a decrease", func(t *testing.T) {
		t.Parallel()

		cmp := catalog.Compare(tier.Enterprise, tier.Advanced)
		require.NotNil(t, cmp)
		assert.Equal(t, tier.LimitChange{From: tier.Unlimited, To: 50000}, cmp.DecreasedLimits["monthly-submissions"])
		assert.True(t, cmp.HasDecreases())
		assert.Contains(t, cmp.LostCapabilities, "audit-log")
	})

	t.Run("unknown level yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, catalog.Compare(tier.Level("platinum"), tier.Pro))
	})
}

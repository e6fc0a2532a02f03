package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Eco-Earn-Backend/entities"
)

func TestSeedByID(t *testing.T) {
	seed, ok := SeedByID("seed-neem")
	require.True(t, ok)
	assert.Equal(t, "Neem Tree", seed.Name)
	assert.Equal(t, entities.SeedCategoryMedicinal, seed.Category)

	_, ok = SeedByID("seed-unknown")
	assert.False(t, ok)
}

func TestSeedsByCategory(t *testing.T) {
	all := SeedsByCategory("all")
	assert.Len(t, all, len(Seeds()))

	empty := SeedsByCategory("")
	assert.Len(t, empty, len(Seeds()))

	fruit := SeedsByCategory(entities.SeedCategoryFruit)
	require.NotEmpty(t, fruit)
	for _, seed := range fruit {
		assert.Equal(t, entities.SeedCategoryFruit, seed.Category)
	}

	assert.Empty(t, SeedsByCategory("no-such-category"))
}

func TestSeedsReturnsCopy(t *testing.T) {
	first := Seeds()
	first[0].Price = 9999

	fresh, ok := SeedByID(first[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, 9999.0, fresh.Price)
}

func TestBadgeByID(t *testing.T) {
	badge, ok := BadgeByID(BadgeFirstSprout)
	require.True(t, ok)
	assert.Equal(t, "First Sprout", badge.Name)

	_, ok = BadgeByID("badge-unknown")
	assert.False(t, ok)
}

func TestCouponByCode_CaseInsensitive(t *testing.T) {
	for _, code := range []string{"GREEN20", "green20", "Green20"} {
		coupon, ok := CouponByCode(code)
		require.True(t, ok, code)
		assert.Equal(t, "GREEN20", coupon.Code)
		assert.Equal(t, 20.0, coupon.Discount)
	}

	_, ok := CouponByCode("EXPIRED99")
	assert.False(t, ok)
}

package sample

import (
	"testing"

	"Digital-Menu-Builder/pkg/activation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleItemsReferenceSampleCategories(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Categories() {
		known[c.ID] = true
	}
	for _, item := range MenuItems() {
		assert.True(t, known[item.CategoryID], item.DisplayName)
	}
}

func TestSampleOffersByWeekday(t *testing.T) {
	active, _ := activation.Partition(Offers(), 4) // Thursday
	require.Len(t, active, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "3", active[1].ID)

	active, _ = activation.Partition(Offers(), 0)
	require.Len(t, active, 1)
	assert.Equal(t, "Hétvégi Családi Menü", active[0].DisplayName)
}

func TestSampleReturnsFreshSlices(t *testing.T) {
	items := MenuItems()
	items[0].DisplayName = "changed"
	*items[0].Calories = 1

	again := MenuItems()
	assert.Equal(t, "Klasszikus Magyar Reggeli", again[0].DisplayName)
	assert.Equal(t, 650, *again[0].Calories)
}

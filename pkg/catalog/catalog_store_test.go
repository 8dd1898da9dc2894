package catalog

import (
	"math"
	"testing"

	"Digital-Menu-Builder/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItem(t *testing.T, s CatalogStore, name, categoryID string, price float64, currency string) entities.MenuItem {
	t.Helper()
	item, ok := s.AddMenuItem(entities.MenuItemFields{
		DisplayName: name,
		CategoryID:  categoryID,
		Price:       price,
		Currency:    currency,
	})
	require.True(t, ok, "add %s", name)
	return item
}

func TestAddCategory(t *testing.T) {
	s := NewCatalogStore()

	c, ok := s.AddCategory("  Reggelik ", "Coffee")
	require.True(t, ok)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Reggelik", c.DisplayName)
	assert.Equal(t, "Coffee", c.Icon)

	_, ok = s.AddCategory("   ", "")
	assert.False(t, ok)

	second, ok := s.AddCategory("Főételek", "")
	require.True(t, ok)
	assert.NotEqual(t, c.ID, second.ID)

	categories := s.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Reggelik", categories[0].DisplayName)
	assert.Equal(t, "Főételek", categories[1].DisplayName)
}

func TestOrderNumbersFollowCategoryPosition(t *testing.T) {
	s := NewCatalogStore()
	breakfast, _ := s.AddCategory("Reggelik", "Coffee")
	mains, _ := s.AddCategory("Főételek", "Beef")

	assert.Equal(t, 101, s.NextOrderNumber(breakfast.ID))
	assert.Equal(t, 201, s.NextOrderNumber(mains.ID))

	first := addItem(t, s, "Klasszikus Magyar Reggeli", breakfast.ID, 2890, "HUF")
	second := addItem(t, s, "Palacsinta Nutellával", breakfast.ID, 1890, "HUF")
	third := addItem(t, s, "Rántott Schnitzel", mains.ID, 3490, "HUF")

	assert.Equal(t, 101, first.OrderNumber)
	assert.Equal(t, 102, second.OrderNumber)
	assert.Equal(t, 201, third.OrderNumber)
	assert.Equal(t, 103, s.NextOrderNumber(breakfast.ID))
	assert.Equal(t, 101, s.NextOrderNumber("unknown"))
}

func TestAddMenuItemRejectsInvalidInput(t *testing.T) {
	s := NewCatalogStore()
	c, _ := s.AddCategory("Desszertek", "")

	cases := map[string]entities.MenuItemFields{
		"blank name":     {DisplayName: "  ", CategoryID: c.ID, Price: 1},
		"no category":    {DisplayName: "Somlói", Price: 1},
		"negative price": {DisplayName: "Somlói", CategoryID: c.ID, Price: -1},
		"nan price":      {DisplayName: "Somlói", CategoryID: c.ID, Price: math.NaN()},
		"inf price":      {DisplayName: "Somlói", CategoryID: c.ID, Price: math.Inf(1)},
	}
	for name, fields := range cases {
		_, ok := s.AddMenuItem(fields)
		assert.False(t, ok, name)
	}
	assert.Empty(t, s.MenuItems())
}

func TestAddMenuItemTrimsOptionalFields(t *testing.T) {
	s := NewCatalogStore()
	c, _ := s.AddCategory("Desszertek", "")
	calories := 320

	item, ok := s.AddMenuItem(entities.MenuItemFields{
		DisplayName:           " Kürtőskalács ",
		CategoryID:            c.ID,
		Price:                 0,
		Currency:              "HUF",
		PhoneticPronunciation: " KUER-tosh-ka-lach ",
		Ingredients:           "   ",
		Calories:              &calories,
	})
	require.True(t, ok)
	assert.Equal(t, "Kürtőskalács", item.DisplayName)
	assert.Equal(t, "KUER-tosh-ka-lach", item.PhoneticPronunciation)
	assert.Empty(t, item.Ingredients)
	require.NotNil(t, item.Calories)
	assert.Equal(t, 320, *item.Calories)

	calories = 1
	assert.Equal(t, 320, *item.Calories)
}

func TestOrphanedItemIsKept(t *testing.T) {
	s := NewCatalogStore()
	item := addItem(t, s, "Goulash Leves", "no-such-category", 1890, "HUF")

	assert.Equal(t, 101, item.OrderNumber)
	assert.Len(t, s.MenuItems(), 1)
}

func TestToggleSelectedIsItsOwnInverse(t *testing.T) {
	s := NewCatalogStore()
	c, _ := s.AddCategory("Reggelik", "")
	a := addItem(t, s, "A", c.ID, 100, "HUF")
	b := addItem(t, s, "B", c.ID, 200, "HUF")

	s.ToggleSelected(a)
	before := s.SelectedItems()

	s.ToggleSelected(b)
	s.ToggleSelected(b)
	assert.Equal(t, before, s.SelectedItems())

	s.ToggleSelected(a)
	assert.Empty(t, s.SelectedItems())
}

func TestToggleSelectedComparesByID(t *testing.T) {
	s := NewCatalogStore()
	c, _ := s.AddCategory("Reggelik", "")
	a := addItem(t, s, "A", c.ID, 100, "HUF")

	s.ToggleSelected(a)
	renamed := a
	renamed.DisplayName = "renamed"
	s.ToggleSelected(renamed)

	assert.Empty(t, s.SelectedItems())
}

func TestTotalPrice(t *testing.T) {
	s := NewCatalogStore()
	assert.Equal(t, 0.0, s.TotalPrice())

	c, _ := s.AddCategory("Mixed", "")
	huf := addItem(t, s, "Forint", c.ID, 2890, "HUF")
	eur := addItem(t, s, "Euro", c.ID, 4.5, "EUR")
	usd := addItem(t, s, "Dollar", c.ID, 0.1, "USD")

	s.ToggleSelected(huf)
	s.ToggleSelected(eur)
	s.ToggleSelected(usd)

	assert.Equal(t, 2894.6, s.TotalPrice())

	s.ClearSelected()
	assert.Equal(t, 0.0, s.TotalPrice())
	assert.Empty(t, s.SelectedItems())
}

func TestLoadSampleDataAndClearAll(t *testing.T) {
	s := NewCatalogStore()
	c, _ := s.AddCategory("Old", "")
	old := addItem(t, s, "Old item", c.ID, 1, "HUF")
	s.ToggleSelected(old)

	s.LoadSampleData(
		[]entities.Category{{ID: "1", DisplayName: "Reggelik"}},
		[]entities.MenuItem{{ID: "1", DisplayName: "Reggeli", CategoryID: "1", OrderNumber: 101, Price: 2890, Currency: "HUF"}},
	)
	require.Len(t, s.Categories(), 1)
	require.Len(t, s.MenuItems(), 1)
	assert.Empty(t, s.SelectedItems())
	assert.Equal(t, 102, s.NextOrderNumber("1"))

	s.ToggleSelected(s.MenuItems()[0])
	s.ClearAll()
	assert.Empty(t, s.Categories())
	assert.Empty(t, s.MenuItems())
	assert.Empty(t, s.SelectedItems())
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewCatalogStore()
	s.AddCategory("Reggelik", "")

	categories := s.Categories()
	categories[0].DisplayName = "changed"

	assert.Equal(t, "Reggelik", s.Categories()[0].DisplayName)
}

func TestCaloriesAreNotShared(t *testing.T) {
	s := NewCatalogStore()
	calories := 320
	added, ok := s.AddMenuItem(entities.MenuItemFields{
		DisplayName: "Lángos", CategoryID: "1", Price: 990, Currency: "HUF", Calories: &calories,
	})
	require.True(t, ok)

	calories = 1
	*added.Calories = 2
	*s.MenuItems()[0].Calories = 3
	found, _ := s.MenuItem(added.ID)
	*found.Calories = 4

	s.ToggleSelected(found)
	*s.SelectedItems()[0].Calories = 5

	stored, _ := s.MenuItem(added.ID)
	assert.Equal(t, 320, *stored.Calories)
	assert.Equal(t, 4, *s.SelectedItems()[0].Calories)

	sample := []entities.MenuItem{{ID: "1", DisplayName: "Leves", CategoryID: "1", Calories: &calories}}
	s.LoadSampleData(nil, sample)
	*sample[0].Calories = 6
	assert.Equal(t, 1, *s.MenuItems()[0].Calories)
}

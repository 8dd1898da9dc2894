package offer

import (
	"strings"
	"sync"
	"testing"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOffer(t *testing.T, s OfferStore, name string, days ...int) entities.Offer {
	t.Helper()
	o, ok := s.AddOffer(entities.OfferFields{
		DisplayName: name,
		IsRecurring: true,
		DaysOfWeek:  days,
		IsActive:    true,
	})
	require.True(t, ok)
	return o
}

func nextOrderNumber(t *testing.T, s OfferStore, offerID, categoryID string) int {
	t.Helper()
	n, err := s.NextOfferOrderNumber(offerID, categoryID)
	require.NoError(t, err)
	return n
}

func TestAddOffer(t *testing.T) {
	s := NewOfferStore()
	discount := 20.0

	o, ok := s.AddOffer(entities.OfferFields{
		DisplayName:        "  Hétfő-Csütörtök Reggeli Akció ",
		DaysOfWeek:         []int{4, 1, 9, 2, 1, -1, 3},
		DiscountPercentage: &discount,
		IsActive:           true,
	})
	require.True(t, ok)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "Hétfő-Csütörtök Reggeli Akció", o.DisplayName)
	assert.Equal(t, []int{1, 2, 3, 4}, o.DaysOfWeek)
	assert.Empty(t, o.Categories)
	assert.Empty(t, o.MenuItems)
	require.NotNil(t, o.DiscountPercentage)
	assert.Equal(t, 20.0, *o.DiscountPercentage)

	_, ok = s.AddOffer(entities.OfferFields{DisplayName: " "})
	assert.False(t, ok)
	assert.Len(t, s.Offers(), 1)
}

func TestUpdateOfferShallowMerge(t *testing.T) {
	s := NewOfferStore()
	o := newOffer(t, s, "Hétvégi Családi Menü", 6, 0)

	inactive := false
	updated, err := s.UpdateOffer(o.ID, entities.OfferPatch{
		IsActive:   &inactive,
		DaysOfWeek: []int{5},
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, []int{5}, updated.DaysOfWeek, "days are replaced, not merged")
	assert.Equal(t, "Hétvégi Családi Menü", updated.DisplayName)
	assert.True(t, updated.IsRecurring)

	stored, _ := s.Offer(o.ID)
	assert.Equal(t, updated, stored)
}

func TestUpdateOfferUnknownOrInvalid(t *testing.T) {
	s := NewOfferStore()
	o := newOffer(t, s, "Akció", 1)

	name := "x"
	_, err := s.UpdateOffer("missing", entities.OfferPatch{DisplayName: &name})
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)

	blank := "  "
	_, err = s.UpdateOffer(o.ID, entities.OfferPatch{DisplayName: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidOffer)

	// a missing offer wins over an invalid patch
	_, err = s.UpdateOffer("missing", entities.OfferPatch{DisplayName: &blank})
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)

	stored, _ := s.Offer(o.ID)
	assert.Equal(t, "Akció", stored.DisplayName)
}

func TestDeleteOffer(t *testing.T) {
	s := NewOfferStore()
	a := newOffer(t, s, "A", 1)
	b := newOffer(t, s, "B", 2)

	assert.True(t, s.DeleteOffer(a.ID))
	assert.False(t, s.DeleteOffer(a.ID))

	offers := s.Offers()
	require.Len(t, offers, 1)
	assert.Equal(t, b.ID, offers[0].ID)
}

func TestOfferScopedCategoriesAndOrderNumbers(t *testing.T) {
	s := NewOfferStore()
	first := newOffer(t, s, "Reggeli Akció", 1, 2, 3, 4)
	second := newOffer(t, s, "Desszert Akció", 4)

	cat1, err := s.AddCategoryToOffer(first.ID, "Akciós Reggelik", "Coffee")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cat1.ID, first.ID+"-cat-"))

	cat2, _ := s.AddCategoryToOffer(first.ID, "Akciós Italok", "")
	otherCat, _ := s.AddCategoryToOffer(second.ID, "Akciós Desszertek", "")

	assert.Equal(t, 101, nextOrderNumber(t, s, first.ID, cat1.ID))
	assert.Equal(t, 201, nextOrderNumber(t, s, first.ID, cat2.ID))
	assert.Equal(t, 101, nextOrderNumber(t, s, second.ID, otherCat.ID))

	item, err := s.AddMenuItemToOffer(first.ID, entities.MenuItemFields{
		DisplayName: "Akciós Magyar Reggeli", CategoryID: cat1.ID, Price: 2312, Currency: "HUF",
	})
	require.NoError(t, err)
	assert.Equal(t, 101, item.OrderNumber)
	assert.True(t, strings.HasPrefix(item.ID, first.ID+"-item-"))

	next, _ := s.AddMenuItemToOffer(first.ID, entities.MenuItemFields{
		DisplayName: "Akciós Palacsinta", CategoryID: cat1.ID, Price: 1512, Currency: "HUF",
	})
	assert.Equal(t, 102, next.OrderNumber)

	// numbering in one offer does not leak into another
	assert.Equal(t, 101, nextOrderNumber(t, s, second.ID, otherCat.ID))
	_, err = s.NextOfferOrderNumber("missing", cat1.ID)
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)

	stored, _ := s.Offer(first.ID)
	assert.Len(t, stored.Categories, 2)
	assert.Len(t, stored.MenuItems, 2)
}

func TestAddToUnknownOfferIsNoOp(t *testing.T) {
	s := NewOfferStore()

	_, err := s.AddCategoryToOffer("missing", "Akció", "")
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
	_, err = s.AddMenuItemToOffer("missing", entities.MenuItemFields{DisplayName: "x", CategoryID: "c", Price: 1})
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
	_, err = s.AddMenuItemToOffer("missing", entities.MenuItemFields{})
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
	assert.Empty(t, s.Offers())
}

func TestAddMenuItemToOfferValidation(t *testing.T) {
	s := NewOfferStore()
	o := newOffer(t, s, "Akció", 1)
	c, _ := s.AddCategoryToOffer(o.ID, "Akciós", "")

	_, err := s.AddMenuItemToOffer(o.ID, entities.MenuItemFields{DisplayName: "", CategoryID: c.ID, Price: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)
	_, err = s.AddMenuItemToOffer(o.ID, entities.MenuItemFields{DisplayName: "x", CategoryID: c.ID, Price: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)
	_, err = s.AddCategoryToOffer(o.ID, " ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	stored, _ := s.Offer(o.ID)
	assert.Empty(t, stored.MenuItems)
}

func TestOffersAreIsolatedCopies(t *testing.T) {
	s := NewOfferStore()
	o := newOffer(t, s, "Akció", 1, 2)

	got := s.Offers()
	got[0].DaysOfWeek[0] = 6
	got[0].Categories = append(got[0].Categories, entities.Category{ID: "x"})

	stored, _ := s.Offer(o.ID)
	assert.Equal(t, []int{1, 2}, stored.DaysOfWeek)
	assert.Empty(t, stored.Categories)
}

func TestReplaceAndClear(t *testing.T) {
	s := NewOfferStore()
	newOffer(t, s, "Old", 1)

	s.Replace([]entities.Offer{{ID: "1", DisplayName: "Sample", DaysOfWeek: []int{1}}})
	offers := s.Offers()
	require.Len(t, offers, 1)
	assert.Equal(t, "1", offers[0].ID)

	s.Clear()
	assert.Empty(t, s.Offers())
}

func TestUpdateRacingDeleteReportsNotFound(t *testing.T) {
	s := NewOfferStore()
	name := "Frissített"

	for round := 0; round < 50; round++ {
		o := newOffer(t, s, "Akció", 1)

		var wg sync.WaitGroup
		errs := make(chan error, 3)
		wg.Add(4)
		go func() {
			defer wg.Done()
			s.DeleteOffer(o.ID)
		}()
		go func() {
			defer wg.Done()
			_, err := s.UpdateOffer(o.ID, entities.OfferPatch{DisplayName: &name})
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.AddCategoryToOffer(o.ID, "Akciós", "")
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.AddMenuItemToOffer(o.ID, entities.MenuItemFields{DisplayName: "x", CategoryID: "c", Price: 1})
			errs <- err
		}()
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrOfferNotFound)
			}
		}
	}
}

func TestMenuItemAcrossOffers(t *testing.T) {
	s := NewOfferStore()
	first := newOffer(t, s, "Reggeli Akció", 1)
	second := newOffer(t, s, "Desszert Akció", 4)
	c, err := s.AddCategoryToOffer(second.ID, "Akciós Desszertek", "")
	require.NoError(t, err)

	calories := 450
	item, err := s.AddMenuItemToOffer(second.ID, entities.MenuItemFields{
		DisplayName: "Somlói Galuska", CategoryID: c.ID, Price: 1290, Currency: "HUF", Calories: &calories,
	})
	require.NoError(t, err)

	found, ok := s.MenuItem(item.ID)
	require.True(t, ok)
	assert.Equal(t, item, found)

	*found.Calories = 1
	again, _ := s.MenuItem(item.ID)
	assert.Equal(t, 450, *again.Calories)

	_, ok = s.MenuItem(first.ID + "-item-missing")
	assert.False(t, ok)
}

func TestOfferItemCaloriesAreNotShared(t *testing.T) {
	s := NewOfferStore()
	calories := 650
	s.Replace([]entities.Offer{{
		ID:          "1",
		DisplayName: "Reggeli Akció",
		MenuItems:   []entities.MenuItem{{ID: "offer1-item1", DisplayName: "Akciós Magyar Reggeli", Calories: &calories}},
	}})
	calories = 1

	*s.Offers()[0].MenuItems[0].Calories = 2
	o, _ := s.Offer("1")
	*o.MenuItems[0].Calories = 3

	stored, _ := s.Offer("1")
	assert.Equal(t, 650, *stored.MenuItems[0].Calories)
}

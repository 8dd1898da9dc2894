package menu

import (
	"context"
	"testing"
	"time"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/catalog"
	"Digital-Menu-Builder/pkg/offer"
	"Digital-Menu-Builder/pkg/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var thursday = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func newTestService() (MenuService, catalog.CatalogStore, offer.OfferStore) {
	catalogStore := catalog.NewCatalogStore()
	offerStore := offer.NewOfferStore()
	return NewMenuService(catalogStore, offerStore, style.NewStyleStore()), catalogStore, offerStore
}

func TestLoadSampleDataReplacesCatalogAndOffers(t *testing.T) {
	svc, catalogStore, offerStore := newTestService()
	ctx := context.Background()

	catalogStore.AddCategory("Levesek", "Soup")
	item, ok := catalogStore.AddMenuItem(entities.MenuItemFields{DisplayName: "Leves", CategoryID: "x", Price: 100, Currency: "HUF"})
	require.True(t, ok)
	catalogStore.ToggleSelected(item)

	svc.LoadSampleData(ctx)

	assert.Len(t, catalogStore.Categories(), 3)
	assert.Len(t, catalogStore.MenuItems(), 6)
	assert.Empty(t, catalogStore.SelectedItems())
	assert.Len(t, offerStore.Offers(), 3)
	assert.Equal(t, 303, catalogStore.NextOrderNumber("3"))
}

func TestClearScopes(t *testing.T) {
	svc, catalogStore, offerStore := newTestService()
	ctx := context.Background()

	svc.LoadSampleData(ctx)
	svc.ClearCatalog(ctx)
	assert.Empty(t, catalogStore.Categories())
	assert.Empty(t, catalogStore.MenuItems())
	assert.Len(t, offerStore.Offers(), 3, "catalog clear keeps offers")

	svc.ClearEverything(ctx)
	assert.Empty(t, offerStore.Offers())
}

func TestDinerMenuOnThursday(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	svc.LoadSampleData(ctx)

	view := svc.DinerMenu(ctx, thursday)

	assert.Equal(t, 4, view.Weekday)
	require.Len(t, view.Categories, 3)
	assert.Equal(t, "Reggelik", view.Categories[0].DisplayName)
	require.Len(t, view.Categories[1].Items, 2)
	assert.Equal(t, 201, view.Categories[1].Items[0].OrderNumber)

	require.Len(t, view.ActiveOffers, 2)
	require.Len(t, view.InactiveOffers, 1)
	assert.Equal(t, "2", view.InactiveOffers[0].ID)
	assert.Equal(t, "wrong-day", view.InactiveOffers[0].Status)
	assert.Equal(t, []string{"wrong-day"}, view.InactiveOffers[0].Reasons)
	assert.Equal(t, entities.DefaultMenuStyle(), view.MenuStyle)
}

func TestDinerMenuOnEmptyState(t *testing.T) {
	svc, _, _ := newTestService()

	view := svc.DinerMenu(context.Background(), thursday)

	assert.NotNil(t, view.Categories)
	assert.Empty(t, view.Categories)
	assert.NotNil(t, view.ActiveOffers)
	assert.NotNil(t, view.InactiveOffers)
}

func TestGroupByCategorySortsAndDropsOrphans(t *testing.T) {
	categories := []entities.Category{{ID: "b", DisplayName: "B"}, {ID: "a", DisplayName: "A"}}
	items := []entities.MenuItem{
		{ID: "1", CategoryID: "a", OrderNumber: 203},
		{ID: "2", CategoryID: "ghost", OrderNumber: 901},
		{ID: "3", CategoryID: "a", OrderNumber: 201},
		{ID: "4", CategoryID: "b", OrderNumber: 101},
	}

	grouped := GroupByCategory(categories, items)

	require.Len(t, grouped, 2)
	assert.Equal(t, "b", grouped[0].ID)
	assert.Equal(t, []string{"3", "1"}, []string{grouped[1].Items[0].ID, grouped[1].Items[1].ID})
	assert.Len(t, grouped[0].Items, 1)
}

func TestSnapshotCarriesBothStyles(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	svc.LoadSampleData(ctx)

	payload := svc.Snapshot(ctx, thursday)

	assert.Len(t, payload.MenuItems, 6)
	assert.Len(t, payload.Offers, 3)
	assert.Equal(t, entities.DefaultQRCardStyle(), payload.QRCardStyle)
	assert.Equal(t, 4, payload.Diner.Weekday)
}

func TestBasketAcceptsOfferItems(t *testing.T) {
	svc, catalogStore, offerStore := newTestService()
	ctx := context.Background()
	svc.LoadSampleData(ctx)

	offerItem := offerStore.Offers()[0].MenuItems[0]
	basketService := catalog.NewCatalogService(catalogStore, offerStore)

	basket, err := basketService.ToggleBasketItem(ctx, domain.ToggleBasketRequest{ItemID: offerItem.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, basket.Count)
	assert.Equal(t, offerItem.Price, basket.Total)

	everyday := catalogStore.MenuItems()[0]
	basket, err = basketService.ToggleBasketItem(ctx, domain.ToggleBasketRequest{ItemID: everyday.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, basket.Count)
	assert.Equal(t, offerItem.Price+everyday.Price, basket.Total)
}

package catalog

import (
	"context"
	"testing"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemsByID map[string]entities.MenuItem

func (m itemsByID) MenuItem(id string) (entities.MenuItem, bool) {
	item, ok := m[id]
	return item, ok
}

func TestToggleBasketItemResolvesOutsideItems(t *testing.T) {
	store := NewCatalogStore()
	ctx := context.Background()
	gulyas := addItem(t, store, "Gulyásleves", "1", 1890, "HUF")
	offerItem := entities.MenuItem{ID: "offer1-item1", DisplayName: "Akciós Magyar Reggeli", CategoryID: "offer1-cat1", Price: 2312, Currency: "HUF"}

	svc := NewCatalogService(store, itemsByID{offerItem.ID: offerItem})

	basket, err := svc.ToggleBasketItem(ctx, domain.ToggleBasketRequest{ItemID: offerItem.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, basket.Count)
	assert.Equal(t, 2312.0, basket.Total)

	basket, err = svc.ToggleBasketItem(ctx, domain.ToggleBasketRequest{ItemID: gulyas.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, basket.Count)
	assert.Equal(t, 4202.0, basket.Total)
	assert.Equal(t, "4202 Ft", basket.FormattedTotal)

	basket, err = svc.ToggleBasketItem(ctx, domain.ToggleBasketRequest{ItemID: offerItem.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, basket.Count)
	assert.Equal(t, gulyas.ID, basket.Items[0].ID)
}

func TestToggleBasketItemUnknownID(t *testing.T) {
	svc := NewCatalogService(NewCatalogStore(), itemsByID{})

	_, err := svc.ToggleBasketItem(context.Background(), domain.ToggleBasketRequest{ItemID: "missing"})
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
	assert.Equal(t, 0, svc.GetBasket(context.Background()).Count)
}

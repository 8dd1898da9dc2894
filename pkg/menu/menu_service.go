package menu

import (
	"context"
	"sort"
	"time"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/activation"
	"Digital-Menu-Builder/pkg/catalog"
	"Digital-Menu-Builder/pkg/offer"
	"Digital-Menu-Builder/pkg/sample"
	"Digital-Menu-Builder/pkg/style"
)

type (
	// MenuService composes the three stores into whole-menu operations.
	MenuService interface {
		LoadSampleData(ctx context.Context)
		ClearCatalog(ctx context.Context)
		ClearEverything(ctx context.Context)
		DinerMenu(ctx context.Context, now time.Time) domain.DinerMenuResponse
		Snapshot(ctx context.Context, now time.Time) domain.MenuSnapshotPayload
	}

	menuService struct {
		catalogStore catalog.CatalogStore
		offerStore   offer.OfferStore
		styleStore   style.StyleStore
	}
)

func NewMenuService(catalogStore catalog.CatalogStore, offerStore offer.OfferStore, styleStore style.StyleStore) MenuService {
	return &menuService{
		catalogStore: catalogStore,
		offerStore:   offerStore,
		styleStore:   styleStore,
	}
}

func (s *menuService) LoadSampleData(ctx context.Context) {
	s.catalogStore.LoadSampleData(sample.Categories(), sample.MenuItems())
	s.offerStore.Replace(sample.Offers())
}

func (s *menuService) ClearCatalog(ctx context.Context) {
	s.catalogStore.ClearAll()
}

func (s *menuService) ClearEverything(ctx context.Context) {
	s.catalogStore.ClearAll()
	s.offerStore.Clear()
}

func (s *menuService) DinerMenu(ctx context.Context, now time.Time) domain.DinerMenuResponse {
	weekday := activation.Weekday(now)
	active, inactive := activation.Partition(s.offerStore.Offers(), weekday)

	inactiveOffers := make([]domain.InactiveOffer, 0, len(inactive))
	for _, o := range inactive {
		inactiveOffers = append(inactiveOffers, domain.InactiveOffer{
			Offer:   o,
			Status:  string(activation.StatusOf(o, weekday)),
			Reasons: offer.ReasonStrings(o, weekday),
		})
	}

	return domain.DinerMenuResponse{
		Weekday:        weekday,
		Categories:     GroupByCategory(s.catalogStore.Categories(), s.catalogStore.MenuItems()),
		ActiveOffers:   active,
		InactiveOffers: inactiveOffers,
		MenuStyle:      s.styleStore.MenuStyle(),
	}
}

func (s *menuService) Snapshot(ctx context.Context, now time.Time) domain.MenuSnapshotPayload {
	return domain.MenuSnapshotPayload{
		Diner:       s.DinerMenu(ctx, now),
		Categories:  s.catalogStore.Categories(),
		MenuItems:   s.catalogStore.MenuItems(),
		Offers:      s.offerStore.Offers(),
		MenuStyle:   s.styleStore.MenuStyle(),
		QRCardStyle: s.styleStore.QRCardStyle(),
	}
}

// GroupByCategory keeps category order and sorts each category's items by
// order number. Items whose category is unknown are left out.
func GroupByCategory(categories []entities.Category, items []entities.MenuItem) []domain.CategoryWithItems {
	grouped := make([]domain.CategoryWithItems, 0, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		grouped = append(grouped, domain.CategoryWithItems{Category: c, Items: []entities.MenuItem{}})
	}

	for _, item := range items {
		i, ok := index[item.CategoryID]
		if !ok {
			continue
		}
		grouped[i].Items = append(grouped[i].Items, item)
	}

	for i := range grouped {
		sort.SliceStable(grouped[i].Items, func(a, b int) bool {
			return grouped[i].Items[a].OrderNumber < grouped[i].Items[b].OrderNumber
		})
	}
	return grouped
}

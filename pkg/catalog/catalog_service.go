package catalog

import (
	"context"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/pricing"
)

type (
	CatalogService interface {
		AddCategory(ctx context.Context, req domain.AddCategoryRequest) (entities.Category, error)
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (entities.MenuItem, error)
		NextOrderNumber(ctx context.Context, categoryID string) domain.NextOrderNumberResponse
		GetCategories(ctx context.Context) []entities.Category
		GetMenuItems(ctx context.Context) []entities.MenuItem

		ToggleBasketItem(ctx context.Context, req domain.ToggleBasketRequest) (domain.BasketResponse, error)
		ClearBasket(ctx context.Context) domain.BasketResponse
		GetBasket(ctx context.Context) domain.BasketResponse
	}

	// MenuItemFinder resolves items kept outside the catalog, such as the
	// items of an offer, so they can be put in the basket too.
	MenuItemFinder interface {
		MenuItem(id string) (entities.MenuItem, bool)
	}

	catalogService struct {
		catalogStore CatalogStore
		finders      []MenuItemFinder
	}
)

func NewCatalogService(catalogStore CatalogStore, finders ...MenuItemFinder) CatalogService {
	return &catalogService{
		catalogStore: catalogStore,
		finders:      finders,
	}
}

func (s *catalogService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) (entities.Category, error) {
	category, ok := s.catalogStore.AddCategory(req.DisplayName, req.Icon)
	if !ok {
		return entities.Category{}, domain.ErrInvalidCategory
	}
	return category, nil
}

func (s *catalogService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (entities.MenuItem, error) {
	item, ok := s.catalogStore.AddMenuItem(req.Fields())
	if !ok {
		return entities.MenuItem{}, domain.ErrInvalidMenuItem
	}
	return item, nil
}

func (s *catalogService) NextOrderNumber(ctx context.Context, categoryID string) domain.NextOrderNumberResponse {
	return domain.NextOrderNumberResponse{
		CategoryID:  categoryID,
		OrderNumber: s.catalogStore.NextOrderNumber(categoryID),
	}
}

func (s *catalogService) GetCategories(ctx context.Context) []entities.Category {
	return s.catalogStore.Categories()
}

func (s *catalogService) GetMenuItems(ctx context.Context) []entities.MenuItem {
	return s.catalogStore.MenuItems()
}

func (s *catalogService) ToggleBasketItem(ctx context.Context, req domain.ToggleBasketRequest) (domain.BasketResponse, error) {
	item, ok := s.findMenuItem(req.ItemID)
	if !ok {
		return domain.BasketResponse{}, domain.ErrMenuItemNotFound
	}
	s.catalogStore.ToggleSelected(item)
	return s.basket(), nil
}

func (s *catalogService) findMenuItem(id string) (entities.MenuItem, bool) {
	if item, ok := s.catalogStore.MenuItem(id); ok {
		return item, true
	}
	for _, finder := range s.finders {
		if item, ok := finder.MenuItem(id); ok {
			return item, true
		}
	}
	return entities.MenuItem{}, false
}

func (s *catalogService) ClearBasket(ctx context.Context) domain.BasketResponse {
	s.catalogStore.ClearSelected()
	return s.basket()
}

func (s *catalogService) GetBasket(ctx context.Context) domain.BasketResponse {
	return s.basket()
}

func (s *catalogService) basket() domain.BasketResponse {
	items := s.catalogStore.SelectedItems()
	total := s.catalogStore.TotalPrice()

	currency := pricing.FallbackCurrency
	if len(items) > 0 {
		currency = items[0].Currency
	}

	return domain.BasketResponse{
		Items:          items,
		Count:          len(items),
		Total:          total,
		FormattedTotal: pricing.FormatPrice(total, currency),
	}
}

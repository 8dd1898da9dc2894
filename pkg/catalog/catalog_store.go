package catalog

import (
	"math"
	"strings"
	"sync"

	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/ordering"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	// CatalogStore owns the everyday menu and the diner's basket. Categories
	// and items are append-only. Invalid input is ignored and reported through
	// the boolean result, never as an error.
	CatalogStore interface {
		AddCategory(displayName string, icon string) (entities.Category, bool)
		AddMenuItem(fields entities.MenuItemFields) (entities.MenuItem, bool)
		NextOrderNumber(categoryID string) int

		Categories() []entities.Category
		MenuItems() []entities.MenuItem
		MenuItem(id string) (entities.MenuItem, bool)

		ToggleSelected(item entities.MenuItem)
		ClearSelected()
		SelectedItems() []entities.MenuItem
		TotalPrice() float64

		LoadSampleData(categories []entities.Category, items []entities.MenuItem)
		ClearAll()
	}

	catalogStore struct {
		mu         sync.RWMutex
		categories []entities.Category
		items      []entities.MenuItem
		selected   []entities.MenuItem
		newID      func() string
	}
)

func NewCatalogStore() CatalogStore {
	return &catalogStore{
		categories: []entities.Category{},
		items:      []entities.MenuItem{},
		selected:   []entities.MenuItem{},
		newID:      uuid.NewString,
	}
}

func (s *catalogStore) AddCategory(displayName string, icon string) (entities.Category, bool) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return entities.Category{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category := entities.Category{
		ID:          s.newID(),
		DisplayName: displayName,
		Icon:        strings.TrimSpace(icon),
	}
	s.categories = append(s.categories, category)
	return category, true
}

func (s *catalogStore) AddMenuItem(fields entities.MenuItemFields) (entities.MenuItem, bool) {
	item, ok := NewMenuItem(fields)
	if !ok {
		return entities.MenuItem{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.newID()
	item.OrderNumber = ordering.NextOrderNumber(s.categories, s.items, item.CategoryID)
	s.items = append(s.items, item)
	return item.Clone(), true
}

func (s *catalogStore) NextOrderNumber(categoryID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ordering.NextOrderNumber(s.categories, s.items, categoryID)
}

func (s *catalogStore) Categories() []entities.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Category{}, s.categories...)
}

func (s *catalogStore) MenuItems() []entities.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entities.CloneMenuItems(s.items)
}

func (s *catalogStore) MenuItem(id string) (entities.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return entities.MenuItem{}, false
}

func (s *catalogStore) ToggleSelected(item entities.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, selected := range s.selected {
		if selected.ID == item.ID {
			s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, item.Clone())
}

func (s *catalogStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = []entities.MenuItem{}
}

func (s *catalogStore) SelectedItems() []entities.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entities.CloneMenuItems(s.selected)
}

// TotalPrice adds up the raw prices of the selection. Currencies are not
// converted; a basket holding HUF and EUR items sums the bare numbers.
func (s *catalogStore) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, item := range s.selected {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total.InexactFloat64()
}

func (s *catalogStore) LoadSampleData(categories []entities.Category, items []entities.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]entities.Category{}, categories...)
	s.items = entities.CloneMenuItems(items)
	s.selected = []entities.MenuItem{}
}

func (s *catalogStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = []entities.Category{}
	s.items = []entities.MenuItem{}
	s.selected = []entities.MenuItem{}
}

// NewMenuItem validates fields and builds an item without ID or order
// number. The offer store shares it so both stores accept the same input.
func NewMenuItem(fields entities.MenuItemFields) (entities.MenuItem, bool) {
	name := strings.TrimSpace(fields.DisplayName)
	if name == "" || fields.CategoryID == "" {
		return entities.MenuItem{}, false
	}
	if math.IsNaN(fields.Price) || math.IsInf(fields.Price, 0) || fields.Price < 0 {
		return entities.MenuItem{}, false
	}

	item := entities.MenuItem{
		DisplayName:           name,
		CategoryID:            fields.CategoryID,
		Price:                 fields.Price,
		Currency:              strings.TrimSpace(fields.Currency),
		PhoneticPronunciation: strings.TrimSpace(fields.PhoneticPronunciation),
		Ingredients:           strings.TrimSpace(fields.Ingredients),
		Allergens:             strings.TrimSpace(fields.Allergens),
		ExtraDescription:      strings.TrimSpace(fields.ExtraDescription),
		Image:                 fields.Image,
	}
	if fields.Calories != nil {
		calories := *fields.Calories
		item.Calories = &calories
	}
	return item, true
}

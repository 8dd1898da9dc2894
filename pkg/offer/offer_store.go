package offer

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/catalog"
	"Digital-Menu-Builder/pkg/ordering"

	"github.com/google/uuid"
)

type (
	// OfferStore owns promotional offers. Each offer carries its own
	// categories and items; their ids never refer into the catalog.
	// Calls scoped to one offer return domain.ErrOfferNotFound when the
	// offer is gone, decided under the same lock as the mutation.
	OfferStore interface {
		AddOffer(fields entities.OfferFields) (entities.Offer, bool)
		UpdateOffer(id string, patch entities.OfferPatch) (entities.Offer, error)
		DeleteOffer(id string) bool
		AddCategoryToOffer(offerID string, displayName string, icon string) (entities.Category, error)
		AddMenuItemToOffer(offerID string, fields entities.MenuItemFields) (entities.MenuItem, error)
		NextOfferOrderNumber(offerID string, categoryID string) (int, error)

		Offers() []entities.Offer
		Offer(id string) (entities.Offer, bool)
		MenuItem(id string) (entities.MenuItem, bool)

		Replace(offers []entities.Offer)
		Clear()
	}

	offerStore struct {
		mu     sync.RWMutex
		offers []entities.Offer
		newID  func() string
	}
)

func NewOfferStore() OfferStore {
	return &offerStore{
		offers: []entities.Offer{},
		newID:  uuid.NewString,
	}
}

func (s *offerStore) AddOffer(fields entities.OfferFields) (entities.Offer, bool) {
	name := strings.TrimSpace(fields.DisplayName)
	if name == "" {
		return entities.Offer{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := entities.Offer{
		ID:                 s.newID(),
		DisplayName:        name,
		Description:        strings.TrimSpace(fields.Description),
		IsRecurring:        fields.IsRecurring,
		DaysOfWeek:         normalizeDays(fields.DaysOfWeek),
		StartDate:          fields.StartDate,
		EndDate:            fields.EndDate,
		DiscountPercentage: copyFloat(fields.DiscountPercentage),
		Categories:         []entities.Category{},
		MenuItems:          []entities.MenuItem{},
		IsActive:           fields.IsActive,
	}
	s.offers = append(s.offers, o)
	return o.Clone(), true
}

func (s *offerStore) UpdateOffer(id string, patch entities.OfferPatch) (entities.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return entities.Offer{}, domain.ErrOfferNotFound
	}

	if patch.DisplayName != nil {
		name := strings.TrimSpace(*patch.DisplayName)
		if name == "" {
			return entities.Offer{}, domain.ErrInvalidOffer
		}
		patch.DisplayName = &name
	}
	if patch.DaysOfWeek != nil {
		patch.DaysOfWeek = normalizeDays(patch.DaysOfWeek)
	}

	s.offers[i] = entities.MergeOffer(s.offers[i], patch)
	return s.offers[i].Clone(), nil
}

func (s *offerStore) DeleteOffer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	s.offers = append(s.offers[:i:i], s.offers[i+1:]...)
	return true
}

func (s *offerStore) AddCategoryToOffer(offerID string, displayName string, icon string) (entities.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(offerID)
	if i == -1 {
		return entities.Category{}, domain.ErrOfferNotFound
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return entities.Category{}, domain.ErrInvalidCategory
	}

	category := entities.Category{
		ID:          fmt.Sprintf("%s-cat-%s", offerID, s.newID()),
		DisplayName: displayName,
		Icon:        strings.TrimSpace(icon),
	}
	o := s.offers[i].Clone()
	o.Categories = append(o.Categories, category)
	s.offers[i] = o
	return category, nil
}

func (s *offerStore) AddMenuItemToOffer(offerID string, fields entities.MenuItemFields) (entities.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(offerID)
	if i == -1 {
		return entities.MenuItem{}, domain.ErrOfferNotFound
	}

	item, ok := catalog.NewMenuItem(fields)
	if !ok {
		return entities.MenuItem{}, domain.ErrInvalidMenuItem
	}

	o := s.offers[i].Clone()
	item.ID = fmt.Sprintf("%s-item-%s", offerID, s.newID())
	item.OrderNumber = ordering.NextOrderNumber(o.Categories, o.MenuItems, item.CategoryID)
	o.MenuItems = append(o.MenuItems, item)
	s.offers[i] = o
	return item.Clone(), nil
}

func (s *offerStore) NextOfferOrderNumber(offerID string, categoryID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(offerID)
	if i == -1 {
		return 0, domain.ErrOfferNotFound
	}
	return ordering.NextOrderNumber(s.offers[i].Categories, s.offers[i].MenuItems, categoryID), nil
}

func (s *offerStore) Offers() []entities.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offers := make([]entities.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		offers = append(offers, o.Clone())
	}
	return offers
}

func (s *offerStore) Offer(id string) (entities.Offer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return entities.Offer{}, false
	}
	return s.offers[i].Clone(), true
}

// MenuItem finds an item in any offer. Offer item ids are prefixed with
// their offer id, so they never collide with catalog ids.
func (s *offerStore) MenuItem(id string) (entities.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.offers {
		for _, item := range o.MenuItems {
			if item.ID == id {
				return item.Clone(), true
			}
		}
	}
	return entities.MenuItem{}, false
}

func (s *offerStore) Replace(offers []entities.Offer) {
	replaced := make([]entities.Offer, 0, len(offers))
	for _, o := range offers {
		replaced = append(replaced, o.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = replaced
}

func (s *offerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = []entities.Offer{}
}

func (s *offerStore) indexOf(id string) int {
	for i, o := range s.offers {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// normalizeDays drops values outside 0..6 and duplicates, returning the
// remaining days in ascending order.
func normalizeDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := []int{}
	for _, d := range days {
		if d < 0 || d > 6 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

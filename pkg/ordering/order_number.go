// Package ordering assigns per-category order numbers. Catalog and offer
// stores both call NextOrderNumber so the two numbering schemes stay identical.
package ordering

import (
	"Digital-Menu-Builder/entities"
)

const (
	categoryBlock = 100
	// DefaultOrderNumber is returned when the category is not in scope.
	DefaultOrderNumber = categoryBlock + 1
)

// NextOrderNumber returns the number the next item added to categoryID
// would receive. The first item of the n-th category (1-based) gets n*100+1,
// every later item gets one more than the current maximum in that category.
// Numbers freed by removed items are never reused.
func NextOrderNumber(categories []entities.Category, items []entities.MenuItem, categoryID string) int {
	index := -1
	for i, c := range categories {
		if c.ID == categoryID {
			index = i
			break
		}
	}
	if index == -1 {
		return DefaultOrderNumber
	}

	found := false
	highest := 0
	for _, item := range items {
		if item.CategoryID != categoryID {
			continue
		}
		if !found || item.OrderNumber > highest {
			highest = item.OrderNumber
			found = true
		}
	}

	if !found {
		return (index+1)*categoryBlock + 1
	}
	return highest + 1
}

package domain

import (
	"errors"

	"Digital-Menu-Builder/entities"
)

var (
	MessageSuccessAddCategory     = "category added successfully"
	MessageSuccessAddMenuItem     = "menu item added successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessGetNextOrder    = "next order number retrieved successfully"
	MessageSuccessToggleBasket    = "basket updated successfully"
	MessageSuccessClearBasket     = "basket cleared successfully"
	MessageSuccessGetBasket       = "basket retrieved successfully"
	MessageSuccessLoadSampleData  = "sample data loaded successfully"
	MessageSuccessClearCatalog    = "catalog cleared successfully"
	MessageSuccessClearEverything = "all menu data cleared successfully"
	MessageSuccessGetDinerMenu    = "menu retrieved successfully"

	MessageFailedAddCategory  = "failed to add category"
	MessageFailedAddMenuItem  = "failed to add menu item"
	MessageFailedToggleBasket = "failed to update basket"
	MessageFailedGetNextOrder = "failed to get next order number"

	ErrInvalidCategory  = errors.New("category display name is required")
	ErrInvalidMenuItem  = errors.New("menu item requires a display name, a category and a non-negative price")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

const DefaultCurrency = "HUF"

type (
	AddCategoryRequest struct {
		DisplayName string `json:"displayName" validate:"required"`
		Icon        string `json:"icon" validate:"omitempty,max=64"`
	}

	AddMenuItemRequest struct {
		DisplayName           string   `json:"displayName" validate:"required"`
		CategoryID            string   `json:"categoryId" validate:"required"`
		Price                 *float64 `json:"price" validate:"required,min=0"`
		Currency              string   `json:"currency" validate:"omitempty,len=3,uppercase"`
		PhoneticPronunciation string   `json:"phoneticPronunciation"`
		Ingredients           string   `json:"ingredients"`
		Allergens             string   `json:"allergens"`
		Calories              *int     `json:"calories" validate:"omitempty,min=0"`
		ExtraDescription      string   `json:"extraDescription"`
		Image                 string   `json:"image"`
	}

	ToggleBasketRequest struct {
		ItemID string `json:"itemId" validate:"required"`
	}

	NextOrderNumberResponse struct {
		CategoryID  string `json:"categoryId"`
		OrderNumber int    `json:"orderNumber"`
	}

	BasketResponse struct {
		Items          []entities.MenuItem `json:"items"`
		Count          int                 `json:"count"`
		Total          float64             `json:"total"`
		FormattedTotal string              `json:"formattedTotal"`
	}

	CategoryWithItems struct {
		entities.Category
		Items []entities.MenuItem `json:"items"`
	}

	InactiveOffer struct {
		entities.Offer
		Status  string   `json:"status"`
		Reasons []string `json:"reasons"`
	}

	DinerMenuResponse struct {
		Weekday        int                 `json:"weekday"`
		Categories     []CategoryWithItems `json:"categories"`
		ActiveOffers   []entities.Offer    `json:"activeOffers"`
		InactiveOffers []InactiveOffer     `json:"inactiveOffers"`
		MenuStyle      entities.MenuStyle  `json:"menuStyle"`
	}
)

// Fields converts the request into store input, defaulting the currency.
func (r AddMenuItemRequest) Fields() entities.MenuItemFields {
	f := entities.MenuItemFields{
		DisplayName:           r.DisplayName,
		CategoryID:            r.CategoryID,
		Currency:              r.Currency,
		PhoneticPronunciation: r.PhoneticPronunciation,
		Ingredients:           r.Ingredients,
		Allergens:             r.Allergens,
		Calories:              r.Calories,
		ExtraDescription:      r.ExtraDescription,
		Image:                 r.Image,
	}
	if r.Price != nil {
		f.Price = *r.Price
	} else {
		f.Price = -1
	}
	if f.Currency == "" {
		f.Currency = DefaultCurrency
	}
	return f
}

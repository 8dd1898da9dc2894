package entities

type MenuItem struct {
	ID                    string  `json:"id"`
	DisplayName           string  `json:"displayName"`
	OrderNumber           int     `json:"orderNumber"`
	CategoryID            string  `json:"categoryId"`
	Price                 float64 `json:"price"`
	Currency              string  `json:"currency"`
	PhoneticPronunciation string  `json:"phoneticPronunciation,omitempty"`
	Ingredients           string  `json:"ingredients,omitempty"`
	Allergens             string  `json:"allergens,omitempty"`
	Calories              *int    `json:"calories,omitempty"`
	ExtraDescription      string  `json:"extraDescription,omitempty"`
	Image                 string  `json:"image,omitempty"` // URL or data URL
}

// MenuItemFields is everything a caller supplies when adding an item; the
// owning store assigns ID and OrderNumber.
type MenuItemFields struct {
	DisplayName           string
	CategoryID            string
	Price                 float64
	Currency              string
	PhoneticPronunciation string
	Ingredients           string
	Allergens             string
	Calories              *int
	ExtraDescription      string
	Image                 string
}

// Clone returns a copy that shares no pointers with the receiver.
func (m MenuItem) Clone() MenuItem {
	if m.Calories != nil {
		calories := *m.Calories
		m.Calories = &calories
	}
	return m
}

// CloneMenuItems deep-copies items into a new, never-nil slice.
func CloneMenuItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

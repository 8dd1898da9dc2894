package entities

type Offer struct {
	ID                 string     `json:"id"`
	DisplayName        string     `json:"displayName"`
	Description        string     `json:"description,omitempty"`
	IsRecurring        bool       `json:"isRecurring"`
	DaysOfWeek         []int      `json:"daysOfWeek"` // 0 = Sunday
	StartDate          string     `json:"startDate,omitempty"`
	EndDate            string     `json:"endDate,omitempty"`
	DiscountPercentage *float64   `json:"discountPercentage,omitempty"`
	Categories         []Category `json:"categories"`
	MenuItems          []MenuItem `json:"menuItems"`
	IsActive           bool       `json:"isActive"`
}

// OfferFields is the caller-supplied part of a new offer. Categories and
// items are always added afterwards through the offer store.
type OfferFields struct {
	DisplayName        string
	Description        string
	IsRecurring        bool
	DaysOfWeek         []int
	StartDate          string
	EndDate            string
	DiscountPercentage *float64
	IsActive           bool
}

// OfferPatch holds the fields of a partial offer update. A nil field is left
// untouched; a non-nil slice replaces the stored slice wholesale.
type OfferPatch struct {
	DisplayName        *string
	Description        *string
	IsRecurring        *bool
	DaysOfWeek         []int
	StartDate          *string
	EndDate            *string
	DiscountPercentage *float64
	IsActive           *bool
}

// MergeOffer applies p on top of o and returns the result. o is not modified.
func MergeOffer(o Offer, p OfferPatch) Offer {
	if p.DisplayName != nil {
		o.DisplayName = *p.DisplayName
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.IsRecurring != nil {
		o.IsRecurring = *p.IsRecurring
	}
	if p.DaysOfWeek != nil {
		o.DaysOfWeek = append([]int(nil), p.DaysOfWeek...)
	}
	if p.StartDate != nil {
		o.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		o.EndDate = *p.EndDate
	}
	if p.DiscountPercentage != nil {
		v := *p.DiscountPercentage
		o.DiscountPercentage = &v
	}
	if p.IsActive != nil {
		o.IsActive = *p.IsActive
	}
	return o
}

// Clone returns a deep copy so callers can't reach into store-owned slices.
func (o Offer) Clone() Offer {
	o.DaysOfWeek = append([]int(nil), o.DaysOfWeek...)
	o.Categories = append([]Category{}, o.Categories...)
	o.MenuItems = CloneMenuItems(o.MenuItems)
	if o.DiscountPercentage != nil {
		v := *o.DiscountPercentage
		o.DiscountPercentage = &v
	}
	return o
}

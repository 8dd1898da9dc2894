package domain

import (
	"errors"

	"Digital-Menu-Builder/entities"
)

var (
	MessageSuccessAddOffer         = "offer added successfully"
	MessageSuccessUpdateOffer      = "offer updated successfully"
	MessageSuccessDeleteOffer      = "offer deleted successfully"
	MessageSuccessGetOffers        = "offers retrieved successfully"
	MessageSuccessAddOfferCategory = "offer category added successfully"
	MessageSuccessAddOfferMenuItem = "offer menu item added successfully"
	MessageSuccessGetOfferStatuses = "offer statuses retrieved successfully"

	MessageFailedAddOffer         = "failed to add offer"
	MessageFailedUpdateOffer      = "failed to update offer"
	MessageFailedDeleteOffer      = "failed to delete offer"
	MessageFailedAddOfferCategory = "failed to add offer category"
	MessageFailedAddOfferMenuItem = "failed to add offer menu item"

	ErrOfferNotFound = errors.New("offer not found")
	ErrInvalidOffer  = errors.New("offer display name is required")
)

type (
	AddOfferRequest struct {
		DisplayName        string   `json:"displayName" validate:"required"`
		Description        string   `json:"description"`
		IsRecurring        bool     `json:"isRecurring"`
		DaysOfWeek         []int    `json:"daysOfWeek" validate:"dive,weekday"`
		StartDate          string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
		EndDate            string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
		DiscountPercentage *float64 `json:"discountPercentage" validate:"omitempty,min=0,max=100"`
		IsActive           bool     `json:"isActive"`
	}

	UpdateOfferRequest struct {
		DisplayName        *string  `json:"displayName" validate:"omitempty,min=1"`
		Description        *string  `json:"description"`
		IsRecurring        *bool    `json:"isRecurring"`
		DaysOfWeek         []int    `json:"daysOfWeek" validate:"omitempty,dive,weekday"`
		StartDate          *string  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
		EndDate            *string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
		DiscountPercentage *float64 `json:"discountPercentage" validate:"omitempty,min=0,max=100"`
		IsActive           *bool    `json:"isActive"`
	}

	OfferStatusResponse struct {
		Offer   entities.Offer `json:"offer"`
		Status  string         `json:"status"`
		Reasons []string       `json:"reasons"`
	}

	OfferStatusesResponse struct {
		Weekday int                   `json:"weekday"`
		Offers  []OfferStatusResponse `json:"offers"`
	}
)

func (r AddOfferRequest) Fields() entities.OfferFields {
	return entities.OfferFields{
		DisplayName:        r.DisplayName,
		Description:        r.Description,
		IsRecurring:        r.IsRecurring,
		DaysOfWeek:         r.DaysOfWeek,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		DiscountPercentage: r.DiscountPercentage,
		IsActive:           r.IsActive,
	}
}

func (r UpdateOfferRequest) Patch() entities.OfferPatch {
	return entities.OfferPatch{
		DisplayName:        r.DisplayName,
		Description:        r.Description,
		IsRecurring:        r.IsRecurring,
		DaysOfWeek:         r.DaysOfWeek,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		DiscountPercentage: r.DiscountPercentage,
		IsActive:           r.IsActive,
	}
}

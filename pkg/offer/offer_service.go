package offer

import (
	"context"
	"time"

	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/activation"
)

type (
	OfferService interface {
		AddOffer(ctx context.Context, req domain.AddOfferRequest) (entities.Offer, error)
		UpdateOffer(ctx context.Context, id string, req domain.UpdateOfferRequest) (entities.Offer, error)
		DeleteOffer(ctx context.Context, id string) error
		AddCategoryToOffer(ctx context.Context, offerID string, req domain.AddCategoryRequest) (entities.Category, error)
		AddMenuItemToOffer(ctx context.Context, offerID string, req domain.AddMenuItemRequest) (entities.MenuItem, error)
		NextOfferOrderNumber(ctx context.Context, offerID string, categoryID string) (domain.NextOrderNumberResponse, error)
		GetOffers(ctx context.Context) []entities.Offer
		GetOfferStatuses(ctx context.Context, now time.Time) domain.OfferStatusesResponse
	}

	offerService struct {
		offerStore OfferStore
	}
)

func NewOfferService(offerStore OfferStore) OfferService {
	return &offerService{
		offerStore: offerStore,
	}
}

func (s *offerService) AddOffer(ctx context.Context, req domain.AddOfferRequest) (entities.Offer, error) {
	o, ok := s.offerStore.AddOffer(req.Fields())
	if !ok {
		return entities.Offer{}, domain.ErrInvalidOffer
	}
	return o, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, id string, req domain.UpdateOfferRequest) (entities.Offer, error) {
	return s.offerStore.UpdateOffer(id, req.Patch())
}

func (s *offerService) DeleteOffer(ctx context.Context, id string) error {
	if !s.offerStore.DeleteOffer(id) {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (s *offerService) AddCategoryToOffer(ctx context.Context, offerID string, req domain.AddCategoryRequest) (entities.Category, error) {
	return s.offerStore.AddCategoryToOffer(offerID, req.DisplayName, req.Icon)
}

func (s *offerService) AddMenuItemToOffer(ctx context.Context, offerID string, req domain.AddMenuItemRequest) (entities.MenuItem, error) {
	return s.offerStore.AddMenuItemToOffer(offerID, req.Fields())
}

func (s *offerService) NextOfferOrderNumber(ctx context.Context, offerID string, categoryID string) (domain.NextOrderNumberResponse, error) {
	orderNumber, err := s.offerStore.NextOfferOrderNumber(offerID, categoryID)
	if err != nil {
		return domain.NextOrderNumberResponse{}, err
	}

	return domain.NextOrderNumberResponse{
		CategoryID:  categoryID,
		OrderNumber: orderNumber,
	}, nil
}

func (s *offerService) GetOffers(ctx context.Context) []entities.Offer {
	return s.offerStore.Offers()
}

func (s *offerService) GetOfferStatuses(ctx context.Context, now time.Time) domain.OfferStatusesResponse {
	weekday := activation.Weekday(now)
	offers := s.offerStore.Offers()

	statuses := make([]domain.OfferStatusResponse, 0, len(offers))
	for _, o := range offers {
		statuses = append(statuses, domain.OfferStatusResponse{
			Offer:   o,
			Status:  string(activation.StatusOf(o, weekday)),
			Reasons: ReasonStrings(o, weekday),
		})
	}

	return domain.OfferStatusesResponse{
		Weekday: weekday,
		Offers:  statuses,
	}
}

// ReasonStrings is activation.Reasons as plain strings for JSON output.
func ReasonStrings(o entities.Offer, weekday int) []string {
	reasons := activation.Reasons(o, weekday)
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, string(r))
	}
	return out
}

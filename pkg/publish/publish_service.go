package publish

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/entities"
	"Digital-Menu-Builder/pkg/menu"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PublishService interface {
		Publish(ctx context.Context, req domain.PublishMenuRequest, now time.Time) (domain.SnapshotResponse, error)
		Latest(ctx context.Context) (domain.SnapshotResponse, error)
		List(ctx context.Context, page, limit int) ([]domain.SnapshotResponse, int64, error)
	}

	publishService struct {
		publishRepository PublishRepository
		menuService       menu.MenuService
	}
)

// NewPublishService returns a service that answers ErrPublishingDisabled for
// every call when publishRepository is nil.
func NewPublishService(publishRepository PublishRepository, menuService menu.MenuService) PublishService {
	return &publishService{
		publishRepository: publishRepository,
		menuService:       menuService,
	}
}

func (s *publishService) Publish(ctx context.Context, req domain.PublishMenuRequest, now time.Time) (domain.SnapshotResponse, error) {
	if s.publishRepository == nil {
		return domain.SnapshotResponse{}, domain.ErrPublishingDisabled
	}

	payload, err := json.Marshal(s.menuService.Snapshot(ctx, now))
	if err != nil {
		return domain.SnapshotResponse{}, fmt.Errorf("marshal snapshot: %w", err)
	}

	label := req.Label
	if label == "" {
		label = now.Format("2006-01-02 15:04")
	}

	snapshot := &entities.MenuSnapshot{
		ID:      uuid.New(),
		Label:   label,
		Weekday: int(now.Weekday()),
		Payload: string(payload),
	}
	if err := s.publishRepository.CreateSnapshot(ctx, snapshot); err != nil {
		return domain.SnapshotResponse{}, err
	}

	return toResponse(snapshot, false), nil
}

func (s *publishService) Latest(ctx context.Context) (domain.SnapshotResponse, error) {
	if s.publishRepository == nil {
		return domain.SnapshotResponse{}, domain.ErrPublishingDisabled
	}

	snapshot, err := s.publishRepository.GetLatestSnapshot(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SnapshotResponse{}, domain.ErrSnapshotNotFound
		}
		return domain.SnapshotResponse{}, err
	}

	return toResponse(snapshot, true), nil
}

func (s *publishService) List(ctx context.Context, page, limit int) ([]domain.SnapshotResponse, int64, error) {
	if s.publishRepository == nil {
		return nil, 0, domain.ErrPublishingDisabled
	}

	snapshots, count, err := s.publishRepository.GetSnapshots(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.SnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		response = append(response, toResponse(snapshot, false))
	}
	return response, count, nil
}

func toResponse(snapshot *entities.MenuSnapshot, withPayload bool) domain.SnapshotResponse {
	res := domain.SnapshotResponse{
		ID:        snapshot.ID.String(),
		Label:     snapshot.Label,
		Weekday:   snapshot.Weekday,
		CreatedAt: snapshot.CreatedAt,
	}
	if withPayload && snapshot.Payload != "" {
		res.Payload = json.RawMessage(snapshot.Payload)
	}
	return res
}

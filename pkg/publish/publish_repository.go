package publish

import (
	"Digital-Menu-Builder/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PublishRepository interface {
		CreateSnapshot(ctx context.Context, snapshot *entities.MenuSnapshot) error
		GetLatestSnapshot(ctx context.Context) (*entities.MenuSnapshot, error)
		GetSnapshots(ctx context.Context, page, limit int) ([]*entities.MenuSnapshot, int64, error)
	}

	publishRepository struct {
		db *gorm.DB
	}
)

func NewPublishRepository(db *gorm.DB) PublishRepository {
	return &publishRepository{db: db}
}

func (r *publishRepository) CreateSnapshot(ctx context.Context, snapshot *entities.MenuSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *publishRepository) GetLatestSnapshot(ctx context.Context) (*entities.MenuSnapshot, error) {
	var snapshot entities.MenuSnapshot
	if err := r.db.WithContext(ctx).Order("created_at desc").First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetSnapshots lists snapshots newest first without their payloads.
func (r *publishRepository) GetSnapshots(ctx context.Context, page, limit int) ([]*entities.MenuSnapshot, int64, error) {
	var snapshots []*entities.MenuSnapshot
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Model(&entities.MenuSnapshot{})

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Select("id", "label", "weekday", "created_at", "updated_at").
		Offset(offset).Limit(limit).Order("created_at desc").
		Find(&snapshots).Error; err != nil {
		return nil, 0, err
	}

	return snapshots, count, nil
}

package database

import (
	"context"
	"time"

	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate moq -rm -out activityrepository_mock.go . ActivityRepository

type ActivityRepository interface {
	AddActivity(ctx context.Context, activity types.DeviceActivity) error
	GetActivities(ctx context.Context, serialNumber string) ([]types.DeviceActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) AddActivity(ctx context.Context, activity types.DeviceActivity) error {
	return r.db.WithContext(ctx).Create(&DeviceActivity{
		SerialNumber: activity.SerialNumber,
		Activity:     activity.Activity,
		UserName:     activity.UserName,
		Details:      activity.Details,
	}).Error
}

func (r *activityRepository) GetActivities(ctx context.Context, serialNumber string) ([]types.DeviceActivity, error) {
	var activities []DeviceActivity

	err := r.db.WithContext(ctx).
		Where(&DeviceActivity{SerialNumber: serialNumber}).
		Order("created_at desc").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(activities, func(a DeviceActivity, _ int) types.DeviceActivity {
		return types.DeviceActivity{
			SerialNumber: a.SerialNumber,
			Activity:     a.Activity,
			UserName:     a.UserName,
			Details:      a.Details,
			Timestamp:    a.CreatedAt.UTC().Format(time.RFC3339),
		}
	}), nil
}

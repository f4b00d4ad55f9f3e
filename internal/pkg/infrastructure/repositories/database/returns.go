package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate moq -rm -out devicereturnrepository_mock.go . DeviceReturnRepository

type DeviceReturnRepository interface {
	GetDeviceReturn(ctx context.Context, deviceSeqID, participantSeqID int) (*types.DeviceReturn, error)
	GetDeviceReturns(ctx context.Context, participantSeqID int) ([]types.DeviceReturn, error)
	InsertDeviceReturn(ctx context.Context, deviceReturn types.DeviceReturn) (types.DeviceReturn, error)
	UpdateDeviceReturn(ctx context.Context, deviceReturn types.DeviceReturn) error
	MarkDeviceReceived(ctx context.Context, deviceSeqID, participantSeqID int, receivedAt time.Time) error
}

type deviceReturnRepository struct {
	db *gorm.DB
}

func NewDeviceReturnRepository(db *gorm.DB) DeviceReturnRepository {
	return &deviceReturnRepository{db: db}
}

// GetDeviceReturn returns nil, nil if the device has never left service for the participant.
func (r *deviceReturnRepository) GetDeviceReturn(ctx context.Context, deviceSeqID, participantSeqID int) (*types.DeviceReturn, error) {
	logger := logging.GetFromContext(ctx)

	dr := DeviceReturn{}

	result := r.db.WithContext(ctx).
		Where("device_seq_id = ? AND participant_seq_id = ?", deviceSeqID, participantSeqID).
		First(&dr)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		logger.Error().Err(result.Error).Msg("gorm error")

		return nil, ErrRepositoryError
	}

	deviceReturn := toDeviceReturn(dr)
	return &deviceReturn, nil
}

func (r *deviceReturnRepository) GetDeviceReturns(ctx context.Context, participantSeqID int) ([]types.DeviceReturn, error) {
	var returns []DeviceReturn

	result := r.db.WithContext(ctx).
		Where("participant_seq_id = ?", participantSeqID).
		Order("device_return_seq_id").
		Find(&returns)

	if result.Error != nil {
		return nil, result.Error
	}

	return lo.Map(returns, func(dr DeviceReturn, _ int) types.DeviceReturn {
		return toDeviceReturn(dr)
	}), nil
}

func (r *deviceReturnRepository) InsertDeviceReturn(ctx context.Context, deviceReturn types.DeviceReturn) (types.DeviceReturn, error) {
	dr := DeviceReturn{
		DeviceSeqID:      deviceReturn.DeviceSeqID,
		ParticipantSeqID: deviceReturn.ParticipantSeqID,
		VehicleSeqID:     deviceReturn.VehicleSeqID,
		ReasonCode:       string(deviceReturn.DeviceReturnReasonCode),
		ReceivedAt:       deviceReturn.DeviceReceivedDateTime,
		AbandonedAt:      deviceReturn.DeviceAbandonedDateTime,
	}

	err := r.db.WithContext(ctx).Create(&dr).Error
	if err != nil {
		return types.DeviceReturn{}, fmt.Errorf("could not insert device return for device %d: %w", deviceReturn.DeviceSeqID, err)
	}

	return toDeviceReturn(dr), nil
}

func (r *deviceReturnRepository) UpdateDeviceReturn(ctx context.Context, deviceReturn types.DeviceReturn) error {
	result := r.db.WithContext(ctx).
		Model(&DeviceReturn{}).
		Where("device_return_seq_id = ?", deviceReturn.DeviceReturnSeqID).
		Updates(map[string]any{
			"vehicle_seq_id": deviceReturn.VehicleSeqID,
			"reason_code":    string(deviceReturn.DeviceReturnReasonCode),
			"received_at":    deviceReturn.DeviceReceivedDateTime,
			"abandoned_at":   deviceReturn.DeviceAbandonedDateTime,
		})

	if result.Error != nil {
		return fmt.Errorf("could not update device return %d: %w", deviceReturn.DeviceReturnSeqID, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("device return %d: %w", deviceReturn.DeviceReturnSeqID, ErrNotFound)
	}

	return nil
}

func (r *deviceReturnRepository) MarkDeviceReceived(ctx context.Context, deviceSeqID, participantSeqID int, receivedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&DeviceReturn{}).
		Where("device_seq_id = ? AND participant_seq_id = ?", deviceSeqID, participantSeqID).
		Update("received_at", receivedAt.UTC())

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("no return recorded for device %d and participant %d: %w", deviceSeqID, participantSeqID, ErrNotFound)
	}

	return nil
}

func toDeviceReturn(dr DeviceReturn) types.DeviceReturn {
	return types.DeviceReturn{
		DeviceReturnSeqID:       dr.DeviceReturnSeqID,
		DeviceSeqID:             dr.DeviceSeqID,
		ParticipantSeqID:        dr.ParticipantSeqID,
		VehicleSeqID:            dr.VehicleSeqID,
		DeviceReturnReasonCode:  types.ReturnReasonCode(dr.ReasonCode),
		DeviceReceivedDateTime:  dr.ReceivedAt,
		DeviceAbandonedDateTime: dr.AbandonedAt,
	}
}

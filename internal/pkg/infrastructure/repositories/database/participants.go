package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate moq -rm -out participantrepository_mock.go . ParticipantRepository

type ParticipantRepository interface {
	GetParticipant(ctx context.Context, participantSeqID int) (*types.Participant, error)
	UpdateParticipantStatus(ctx context.Context, user string, participantSeqID int, status types.ParticipantStatus) error
	SwapDeviceAssignments(ctx context.Context, user string, sourceSeqID, destinationSeqID int) error
	Save(ctx context.Context, participant types.Participant) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// GetParticipant returns nil, nil when no participant with the given id exists.
func (r *participantRepository) GetParticipant(ctx context.Context, participantSeqID int) (*types.Participant, error) {
	logger := logging.GetFromContext(ctx)

	p := Participant{}

	result := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where(&Participant{ParticipantSeqID: participantSeqID}).
		First(&p)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		logger.Error().Err(result.Error).Msg("gorm error")

		return nil, ErrRepositoryError
	}

	participant := toParticipant(p)
	return &participant, nil
}

func (r *participantRepository) UpdateParticipantStatus(ctx context.Context, user string, participantSeqID int, status types.ParticipantStatus) error {
	result := r.db.WithContext(ctx).
		Model(&Participant{}).
		Where("participant_seq_id = ?", participantSeqID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_by": user,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("participant %d: %w", participantSeqID, ErrNotFound)
	}

	return nil
}

// SwapDeviceAssignments exchanges device, vehicle and nickname between two
// participants of the same participant group in a single transaction.
func (r *participantRepository) SwapDeviceAssignments(ctx context.Context, user string, sourceSeqID, destinationSeqID int) error {
	if sourceSeqID == destinationSeqID {
		return fmt.Errorf("source and destination are the same participant: %w", ErrSwapNotAllowed)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var participants []Participant

		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("participant_seq_id IN ?", []int{sourceSeqID, destinationSeqID}).
			Find(&participants)
		if result.Error != nil {
			return result.Error
		}

		if len(participants) != 2 {
			return fmt.Errorf("expected two participants, found %d: %w", len(participants), ErrNotFound)
		}

		src, dst := participants[0], participants[1]
		if src.ParticipantSeqID != sourceSeqID {
			src, dst = dst, src
		}

		if src.ParticipantGroupSeqID != dst.ParticipantGroupSeqID {
			return fmt.Errorf("participants %d and %d belong to different groups: %w", sourceSeqID, destinationSeqID, ErrSwapNotAllowed)
		}

		assign := func(to, from Participant) error {
			return tx.Model(&Participant{}).
				Where("participant_seq_id = ?", to.ParticipantSeqID).
				Updates(map[string]any{
					"device_seq_id":        from.DeviceSeqID,
					"device_serial_number": from.DeviceSerialNumber,
					"vehicle_seq_id":       from.VehicleSeqID,
					"nickname":             from.Nickname,
					"updated_by":           user,
				}).Error
		}

		if err := assign(src, dst); err != nil {
			return err
		}

		return assign(dst, src)
	})
}

func (r *participantRepository) Save(ctx context.Context, participant types.Participant) error {
	p := fromParticipant(participant)

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&p).Error
}

func toParticipant(p Participant) types.Participant {
	participant := types.Participant{
		ParticipantSeqID:      p.ParticipantSeqID,
		ParticipantGroupSeqID: p.ParticipantGroupSeqID,
		ParticipantID:         p.ParticipantID,
		Status:                types.ParticipantStatus(p.Status),
		DeviceExperience:      types.DeviceExperience(p.DeviceExperience),
		Program:               types.Program(p.Program),
		Nickname:              p.Nickname,
		VehicleSeqID:          p.VehicleSeqID,
		DeviceSeqID:           p.DeviceSeqID,
		DeviceSerialNumber:    p.DeviceSerialNumber,
	}

	if p.Vehicle != nil {
		participant.Vehicle = &types.Vehicle{
			VehicleSeqID: p.Vehicle.ID,
			VIN:          p.Vehicle.VIN,
			Year:         p.Vehicle.Year,
			Make:         p.Vehicle.Make,
			Model:        p.Vehicle.Model,
		}
	}

	return participant
}

func fromParticipant(participant types.Participant) Participant {
	p := Participant{
		ParticipantSeqID:      participant.ParticipantSeqID,
		ParticipantGroupSeqID: participant.ParticipantGroupSeqID,
		ParticipantID:         participant.ParticipantID,
		Status:                string(participant.Status),
		DeviceExperience:      string(participant.DeviceExperience),
		Program:               string(participant.Program),
		Nickname:              participant.Nickname,
		VehicleSeqID:          participant.VehicleSeqID,
		DeviceSeqID:           participant.DeviceSeqID,
		DeviceSerialNumber:    participant.DeviceSerialNumber,
	}

	if participant.Vehicle != nil {
		p.Vehicle = &Vehicle{
			ID:    participant.Vehicle.VehicleSeqID,
			VIN:   participant.Vehicle.VIN,
			Year:  participant.Vehicle.Year,
			Make:  participant.Vehicle.Make,
			Model: participant.Vehicle.Model,
		}
		p.VehicleSeqID = &p.Vehicle.ID
	}

	return p
}

package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/diwise/telematics-device-ops/internal/pkg/infrastructure/logging"
	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate moq -rm -out inventoryrepository_mock.go . InventoryRepository

type InventoryRepository interface {
	GetDeviceBySerialNumber(ctx context.Context, serialNumber string) (*types.Device, error)
	Save(ctx context.Context, device types.Device) error
	Seed(ctx context.Context, devices io.Reader) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// GetDeviceBySerialNumber returns nil, nil if the serial number is not in the inventory.
func (r *inventoryRepository) GetDeviceBySerialNumber(ctx context.Context, serialNumber string) (*types.Device, error) {
	logger := logging.GetFromContext(ctx)

	d := InventoryDevice{}

	result := r.db.WithContext(ctx).
		Where(&InventoryDevice{SerialNumber: serialNumber}).
		First(&d)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		logger.Error().Err(result.Error).Msg("gorm error")

		return nil, ErrRepositoryError
	}

	device := toDevice(d)
	return &device, nil
}

func (r *inventoryRepository) Save(ctx context.Context, device types.Device) error {
	d := fromDevice(device)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&d).Error
}

// Seed loads inventory devices from a semicolon separated file with a header row.
// Columns are deviceSeqID;serialNumber;sim;status;location.
func (r *inventoryRepository) Seed(ctx context.Context, devices io.Reader) error {
	logger := logging.GetFromContext(ctx)

	reader := csv.NewReader(devices)
	reader.Comma = ';'

	rows, err := reader.ReadAll()
	if err != nil {
		return err
	}

	records := make([]InventoryDevice, 0, len(rows))

	for i, row := range rows {
		if i == 0 {
			continue
		}

		d, err := newInventoryRecord(row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		records = append(records, d)
	}

	duplicates := lo.FindDuplicatesBy(records, func(d InventoryDevice) string { return d.SerialNumber })
	if len(duplicates) > 0 {
		return fmt.Errorf("duplicate serial number %s in inventory file", duplicates[0].SerialNumber)
	}

	logger.Info().Msgf("seeding %d inventory devices", len(records))

	if len(records) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&records).Error
}

func newInventoryRecord(row []string) (InventoryDevice, error) {
	if len(row) < 5 {
		return InventoryDevice{}, fmt.Errorf("expected 5 columns, got %d", len(row))
	}

	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return InventoryDevice{}, fmt.Errorf("invalid device id %q", row[0])
	}

	serial := strings.TrimSpace(row[1])
	if serial == "" {
		return InventoryDevice{}, errors.New("serial number is required")
	}

	status := types.DeviceStatus(strings.TrimSpace(row[3]))
	if !lo.Contains(knownStatuses, status) {
		return InventoryDevice{}, fmt.Errorf("device %s has invalid status %q", serial, status)
	}

	location := types.DeviceLocation(strings.TrimSpace(row[4]))
	if location == "" {
		location = types.DeviceLocationUnknown
	}

	if !lo.Contains(knownLocations, location) {
		return InventoryDevice{}, fmt.Errorf("device %s has invalid location %q", serial, location)
	}

	return InventoryDevice{
		DeviceSeqID:  id,
		SerialNumber: serial,
		SIM:          strings.TrimSpace(row[2]),
		Status:       string(status),
		Location:     string(location),
	}, nil
}

var knownStatuses = []types.DeviceStatus{
	types.DeviceStatusAvailable,
	types.DeviceStatusInactive,
	types.DeviceStatusAssigned,
	types.DeviceStatusAbandoned,
	types.DeviceStatusCustomerReturn,
	types.DeviceStatusUnavailable,
	types.DeviceStatusDefective,
	types.DeviceStatusBatched,
	types.DeviceStatusReadyForPrep,
	types.DeviceStatusReadyForBenchTest,
}

var knownLocations = []types.DeviceLocation{
	types.DeviceLocationProgressive,
	types.DeviceLocationDistributor,
	types.DeviceLocationShippedFromMfgToDist,
	types.DeviceLocationShippedFromPrgToDist,
	types.DeviceLocationShippedToCustomer,
	types.DeviceLocationInVehicle,
	types.DeviceLocationUnknown,
}

func toDevice(d InventoryDevice) types.Device {
	return types.Device{
		DeviceSeqID:          d.DeviceSeqID,
		SerialNumber:         d.SerialNumber,
		SIM:                  d.SIM,
		Status:               types.DeviceStatus(d.Status),
		Location:             types.DeviceLocation(d.Location),
		ManufacturerLotSeqID: d.ManufacturerLotSeqID,
		ReturnLotSeqID:       d.ReturnLotSeqID,
	}
}

func fromDevice(device types.Device) InventoryDevice {
	return InventoryDevice{
		DeviceSeqID:          device.DeviceSeqID,
		SerialNumber:         device.SerialNumber,
		SIM:                  device.SIM,
		Status:               string(device.Status),
		Location:             string(device.Location),
		ManufacturerLotSeqID: device.ManufacturerLotSeqID,
		ReturnLotSeqID:       device.ReturnLotSeqID,
	}
}

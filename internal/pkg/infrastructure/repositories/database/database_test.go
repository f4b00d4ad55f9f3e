package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func TestGetParticipantReturnsNilWhenMissing(t *testing.T) {
	is, ctx, db := setupTest(t)

	p, err := NewParticipantRepository(db).GetParticipant(ctx, 404)
	is.NoErr(err)
	is.True(p == nil)
}

func TestThatParticipantCanBeSavedAndRetrieved(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewParticipantRepository(db)

	is.NoErr(repo.Save(ctx, participant(1111, 1, 4444, "SER123", vehicle(77, "Honda", "Civic", 2021))))

	p, err := repo.GetParticipant(ctx, 1111)
	is.NoErr(err)
	is.Equal(p.DeviceSerialNumber, "SER123")
	is.Equal(*p.DeviceSeqID, 4444)
	is.True(p.HasVehicle())
	is.Equal(p.Vehicle.Make, "Honda")
	is.Equal(p.Vehicle.Year, 2021)
}

func TestParticipantWithoutVehicleCanBeSavedAndUpdated(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewParticipantRepository(db)

	p := participant(5, 1, 50, "SER50", vehicle(1, "Volvo", "V70", 2008))
	p.Vehicle = nil
	p.VehicleSeqID = nil

	is.NoErr(repo.Save(ctx, p))
	is.NoErr(repo.UpdateParticipantStatus(ctx, "operator", 5, types.ParticipantStatusOptOut))

	saved, err := repo.GetParticipant(ctx, 5)
	is.NoErr(err)
	is.True(!saved.HasVehicle())
	is.Equal(saved.Status, types.ParticipantStatusOptOut)
}

func TestParticipantsCanShareVehicleTable(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewParticipantRepository(db)

	is.NoErr(repo.Save(ctx, participant(1, 1, 10, "SER10", vehicle(77, "Honda", "Civic", 2021))))
	is.NoErr(repo.Save(ctx, participant(2, 1, 20, "SER20", vehicle(78, "Honda", "Jazz", 2019))))

	var count int64
	is.NoErr(db.Model(&Vehicle{}).Count(&count).Error)
	is.Equal(count, int64(2))

	second, err := repo.GetParticipant(ctx, 2)
	is.NoErr(err)
	is.Equal(*second.VehicleSeqID, 78)
	is.Equal(second.Vehicle.Model, "Jazz")
}

func TestUpdateParticipantStatus(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewParticipantRepository(db)

	is.NoErr(repo.Save(ctx, participant(1, 1, 10, "SER10", vehicle(1, "Volvo", "V70", 2008))))
	is.NoErr(repo.UpdateParticipantStatus(ctx, "operator", 1, types.ParticipantStatusOptOut))

	p, _ := repo.GetParticipant(ctx, 1)
	is.Equal(p.Status, types.ParticipantStatusOptOut)

	err := repo.UpdateParticipantStatus(ctx, "operator", 2, types.ParticipantStatusOptOut)
	is.True(errors.Is(err, ErrNotFound))
}

func TestSwapDeviceAssignmentsExchangesDeviceAndVehicle(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewParticipantRepository(db)

	is.NoErr(repo.Save(ctx, participant(1, 5, 10, "SER10", vehicle(1, "Volvo", "V70", 2008))))
	is.NoErr(repo.Save(ctx, participant(2, 5, 20, "SER20", vehicle(2, "Saab", "9-5", 2004))))

	is.NoErr(repo.SwapDeviceAssignments(ctx, "operator", 1, 2))

	first, _ := repo.GetParticipant(ctx, 1)
	second, _ := repo.GetParticipant(ctx, 2)

	is.Equal(first.DeviceSerialNumber, "SER20")
	is.Equal(first.Vehicle.Make, "Saab")
	is.Equal(second.DeviceSerialNumber, "SER10")
	is.Equal(second.Vehicle.Make, "Volvo")
}

func TestSwapDeviceAssignmentsAcrossGroupsIsNotAllowed(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewParticipantRepository(db)

	is.NoErr(repo.Save(ctx, participant(1, 5, 10, "SER10", vehicle(1, "Volvo", "V70", 2008))))
	is.NoErr(repo.Save(ctx, participant(2, 6, 20, "SER20", vehicle(2, "Saab", "9-5", 2004))))

	err := repo.SwapDeviceAssignments(ctx, "operator", 1, 2)
	is.True(errors.Is(err, ErrSwapNotAllowed))

	first, _ := repo.GetParticipant(ctx, 1)
	is.Equal(first.DeviceSerialNumber, "SER10")
}

func TestGetDeviceReturnReturnsNilWhenNoneRecorded(t *testing.T) {
	is, ctx, db := setupTest(t)

	dr, err := NewDeviceReturnRepository(db).GetDeviceReturn(ctx, 1, 2)
	is.NoErr(err)
	is.True(dr == nil)
}

func TestInsertAndUpdateDeviceReturn(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewDeviceReturnRepository(db)

	abandonedAt := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)

	inserted, err := repo.InsertDeviceReturn(ctx, types.DeviceReturn{
		DeviceSeqID:             4444,
		ParticipantSeqID:        1111,
		DeviceReturnReasonCode:  types.ReturnReasonAbandoned,
		DeviceAbandonedDateTime: &abandonedAt,
	})
	is.NoErr(err)
	is.True(inserted.DeviceReturnSeqID > 0)

	inserted.DeviceReturnReasonCode = types.ReturnReasonDeviceReplaced
	is.NoErr(repo.UpdateDeviceReturn(ctx, inserted))

	dr, err := repo.GetDeviceReturn(ctx, 4444, 1111)
	is.NoErr(err)
	is.Equal(dr.DeviceReturnReasonCode, types.ReturnReasonDeviceReplaced)
	is.True(dr.DeviceAbandonedDateTime.Equal(abandonedAt))
	is.True(dr.DeviceReceivedDateTime == nil)
}

func TestInsertDeviceReturnTwiceForSamePairFails(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewDeviceReturnRepository(db)

	dr := types.DeviceReturn{DeviceSeqID: 1, ParticipantSeqID: 2, DeviceReturnReasonCode: types.ReturnReasonOptOut}

	_, err := repo.InsertDeviceReturn(ctx, dr)
	is.NoErr(err)

	_, err = repo.InsertDeviceReturn(ctx, dr)
	is.True(err != nil)
}

func TestUpdateUnknownDeviceReturnFails(t *testing.T) {
	is, ctx, db := setupTest(t)

	err := NewDeviceReturnRepository(db).UpdateDeviceReturn(ctx, types.DeviceReturn{DeviceReturnSeqID: 99})
	is.True(errors.Is(err, ErrNotFound))
}

func TestMarkDeviceReceived(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewDeviceReturnRepository(db)

	_, err := repo.InsertDeviceReturn(ctx, types.DeviceReturn{DeviceSeqID: 1, ParticipantSeqID: 2, DeviceReturnReasonCode: types.ReturnReasonOptOut})
	is.NoErr(err)

	receivedAt := time.Date(2023, 4, 1, 8, 30, 0, 0, time.UTC)
	is.NoErr(repo.MarkDeviceReceived(ctx, 1, 2, receivedAt))

	returns, err := repo.GetDeviceReturns(ctx, 2)
	is.NoErr(err)
	is.Equal(len(returns), 1)
	is.True(returns[0].DeviceReceivedDateTime.Equal(receivedAt))

	err = repo.MarkDeviceReceived(ctx, 3, 2, receivedAt)
	is.True(errors.Is(err, ErrNotFound))
}

func TestCreateReplacementOrderAndCancelPending(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewOrderRepository(db)

	order, err := repo.CreateReplacementOrder(ctx, types.ReplacementOrder{
		OrderNumber:      "order-1",
		Kind:             types.OrderKindDiscount,
		ParticipantSeqID: 1111,
		VehicleSeqID:     77,
		Make:             "Honda",
		Model:            "Civic",
		Year:             2021,
		Details: []types.OrderDetail{
			{ParticipantSeqID: 1111, VehicleSeqID: 77, ProductCode: "UBI-PLUGIN", Quantity: 1},
		},
	})
	is.NoErr(err)
	is.Equal(order.Status, types.OrderStatusNew)
	is.Equal(len(order.Details), 1)

	cancelled, err := repo.CancelPendingOrders(ctx, "operator", 1111)
	is.NoErr(err)
	is.Equal(cancelled, 1)

	orders, err := repo.GetOrders(ctx, 1111)
	is.NoErr(err)
	is.Equal(orders[0].Status, types.OrderStatusCancelled)
	is.Equal(orders[0].Details[0].ProductCode, "UBI-PLUGIN")

	cancelled, err = repo.CancelPendingOrders(ctx, "operator", 1111)
	is.NoErr(err)
	is.Equal(cancelled, 0)
}

func TestSeedInventoryAndLookupBySerialNumber(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewInventoryRepository(db)

	is.NoErr(repo.Seed(ctx, strings.NewReader(inventoryCSV)))

	d, err := repo.GetDeviceBySerialNumber(ctx, "SER123")
	is.NoErr(err)
	is.Equal(d.DeviceSeqID, 4444)
	is.Equal(d.SIM, "89011")
	is.Equal(d.Location, types.DeviceLocationInVehicle)

	d, err = repo.GetDeviceBySerialNumber(ctx, "SER999")
	is.NoErr(err)
	is.True(d == nil)
}

func TestSeedInventoryFailsOnDuplicateSerialNumber(t *testing.T) {
	is, ctx, db := setupTest(t)

	err := NewInventoryRepository(db).Seed(ctx, strings.NewReader(inventoryCSVWithDuplicates))
	is.True(err != nil)
}

func TestSeedInventoryFailsOnBadStatus(t *testing.T) {
	is, ctx, db := setupTest(t)

	err := NewInventoryRepository(db).Seed(ctx, strings.NewReader(inventoryCSVWithBadStatus))
	is.True(err != nil)
}

func TestAddActivity(t *testing.T) {
	is, ctx, db := setupTest(t)
	repo := NewActivityRepository(db)

	is.NoErr(repo.AddActivity(ctx, types.DeviceActivity{SerialNumber: "SER123", Activity: "AudioUpdated", UserName: "operator"}))

	activities, err := repo.GetActivities(ctx, "SER123")
	is.NoErr(err)
	is.Equal(len(activities), 1)
	is.Equal(activities[0].UserName, "operator")
}

func setupTest(t *testing.T) (*is.I, context.Context, *gorm.DB) {
	is := is.New(t)

	db, err := Open(NewSQLiteConnector(zerolog.Nop(), strings.ReplaceAll(t.Name(), "/", "_")))
	is.NoErr(err)

	return is, context.Background(), db
}

func participant(id, group, deviceID int, serial string, v *types.Vehicle) types.Participant {
	return types.Participant{
		ParticipantSeqID:      id,
		ParticipantGroupSeqID: group,
		ParticipantID:         "P" + serial,
		Status:                types.ParticipantStatusActive,
		DeviceExperience:      types.DeviceExperiencePlugIn,
		Program:               types.ProgramDiscount,
		DeviceSeqID:           &deviceID,
		DeviceSerialNumber:    serial,
		VehicleSeqID:          &v.VehicleSeqID,
		Vehicle:               v,
	}
}

func vehicle(id int, brand, model string, year int) *types.Vehicle {
	return &types.Vehicle{VehicleSeqID: id, VIN: "VIN" + model, Make: brand, Model: model, Year: year}
}

const inventoryCSV string = `deviceSeqID;serialNumber;sim;status;location
4444;SER123;89011;Assigned;InVehicle
4445;SER124;;Available;`

const inventoryCSVWithDuplicates string = `deviceSeqID;serialNumber;sim;status;location
4444;SER123;89011;Assigned;InVehicle
4445;SER123;89012;Assigned;InVehicle`

const inventoryCSVWithBadStatus string = `deviceSeqID;serialNumber;sim;status;location
4444;SER123;89011;Lost;InVehicle`

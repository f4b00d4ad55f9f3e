package orders

import (
	"errors"
	"fmt"

	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/google/uuid"
)

var ErrUnsupportedProgram = errors.New("no replacement order kind for program")

const (
	discountProductCode        string = "UBI-PLUGIN"
	commercialLinesProductCode string = "CL-PLUGIN"
)

// Order is one of DiscountOrder or CommercialLinesOrder.
type Order interface {
	Kind() types.OrderKind
	ReplacementOrder() types.ReplacementOrder
}

type DiscountOrder struct {
	Participant types.Participant
	Vehicle     types.Vehicle
	CreatedBy   string
	OrderNumber string
}

func (DiscountOrder) Kind() types.OrderKind { return types.OrderKindDiscount }

func (o DiscountOrder) ReplacementOrder() types.ReplacementOrder {
	return types.ReplacementOrder{
		OrderNumber:           o.OrderNumber,
		Kind:                  o.Kind(),
		Status:                types.OrderStatusNew,
		ParticipantSeqID:      o.Participant.ParticipantSeqID,
		ParticipantGroupSeqID: o.Participant.ParticipantGroupSeqID,
		VehicleSeqID:          o.Vehicle.VehicleSeqID,
		VIN:                   o.Vehicle.VIN,
		Year:                  o.Vehicle.Year,
		Make:                  o.Vehicle.Make,
		Model:                 o.Vehicle.Model,
		CreatedBy:             o.CreatedBy,
		Details: []types.OrderDetail{{
			ParticipantSeqID: o.Participant.ParticipantSeqID,
			VehicleSeqID:     o.Vehicle.VehicleSeqID,
			ProductCode:      discountProductCode,
			Quantity:         1,
		}},
	}
}

// CommercialLinesOrder is placed on behalf of the participant group, which owns the fleet.
type CommercialLinesOrder struct {
	Participant types.Participant
	Vehicle     types.Vehicle
	CreatedBy   string
	OrderNumber string
}

func (CommercialLinesOrder) Kind() types.OrderKind { return types.OrderKindCommercialLines }

func (o CommercialLinesOrder) ReplacementOrder() types.ReplacementOrder {
	return types.ReplacementOrder{
		OrderNumber:           o.OrderNumber,
		Kind:                  o.Kind(),
		Status:                types.OrderStatusNew,
		ParticipantSeqID:      o.Participant.ParticipantSeqID,
		ParticipantGroupSeqID: o.Participant.ParticipantGroupSeqID,
		VehicleSeqID:          o.Vehicle.VehicleSeqID,
		VIN:                   o.Vehicle.VIN,
		Year:                  o.Vehicle.Year,
		Make:                  o.Vehicle.Make,
		Model:                 o.Vehicle.Model,
		CreatedBy:             o.CreatedBy,
		Details: []types.OrderDetail{{
			ParticipantSeqID: o.Participant.ParticipantSeqID,
			VehicleSeqID:     o.Vehicle.VehicleSeqID,
			ProductCode:      commercialLinesProductCode,
			Quantity:         1,
		}},
	}
}

// NewReplacementOrder selects the order variant from the participant's program.
// The participant must have a vehicle.
func NewReplacementOrder(user string, participant types.Participant) (Order, error) {
	if !participant.HasVehicle() {
		return nil, fmt.Errorf("participant %d: %w", participant.ParticipantSeqID, types.ErrVehicleNotFound)
	}

	orderNumber := uuid.New().String()

	switch participant.Program {
	case types.ProgramDiscount, "":
		return DiscountOrder{
			Participant: participant,
			Vehicle:     *participant.Vehicle,
			CreatedBy:   user,
			OrderNumber: orderNumber,
		}, nil
	case types.ProgramCommercialLines:
		return CommercialLinesOrder{
			Participant: participant,
			Vehicle:     *participant.Vehicle,
			CreatedBy:   user,
			OrderNumber: orderNumber,
		}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnsupportedProgram, participant.Program)
}

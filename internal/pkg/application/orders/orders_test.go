package orders

import (
	"errors"
	"testing"

	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/matryer/is"
)

func TestDiscountParticipantGetsDiscountOrder(t *testing.T) {
	is := is.New(t)

	order, err := NewReplacementOrder("operator", participant(types.ProgramDiscount))
	is.NoErr(err)
	is.Equal(order.Kind(), types.OrderKindDiscount)

	ro := order.ReplacementOrder()
	is.Equal(ro.Make, "Honda")
	is.Equal(ro.Model, "Civic")
	is.Equal(ro.Year, 2021)
	is.Equal(ro.Status, types.OrderStatusNew)
	is.Equal(ro.CreatedBy, "operator")
	is.Equal(ro.Details[0].ProductCode, discountProductCode)
	is.True(ro.OrderNumber != "")
}

func TestCommercialLinesParticipantGetsCommercialLinesOrder(t *testing.T) {
	is := is.New(t)

	order, err := NewReplacementOrder("operator", participant(types.ProgramCommercialLines))
	is.NoErr(err)

	_, ok := order.(CommercialLinesOrder)
	is.True(ok)

	ro := order.ReplacementOrder()
	is.Equal(ro.Kind, types.OrderKindCommercialLines)
	is.Equal(ro.ParticipantGroupSeqID, 12)
	is.Equal(ro.Details[0].ProductCode, commercialLinesProductCode)
}

func TestOrderRequiresVehicle(t *testing.T) {
	is := is.New(t)

	p := participant(types.ProgramDiscount)
	p.Vehicle = nil

	_, err := NewReplacementOrder("operator", p)
	is.True(errors.Is(err, types.ErrVehicleNotFound))
}

func TestUnknownProgramIsRejected(t *testing.T) {
	is := is.New(t)

	_, err := NewReplacementOrder("operator", participant(types.Program("Pilot")))
	is.True(errors.Is(err, ErrUnsupportedProgram))
}

func participant(program types.Program) types.Participant {
	vehicleSeqID := 77
	return types.Participant{
		ParticipantSeqID:      1111,
		ParticipantGroupSeqID: 12,
		Program:               program,
		VehicleSeqID:          &vehicleSeqID,
		Vehicle:               &types.Vehicle{VehicleSeqID: 77, VIN: "2HGFC2F59MH000001", Year: 2021, Make: "Honda", Model: "Civic"},
	}
}

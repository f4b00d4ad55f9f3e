package database

import (
	"context"
	"fmt"

	"github.com/diwise/telematics-device-ops/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:generate moq -rm -out orderrepository_mock.go . OrderRepository

type OrderRepository interface {
	CreateReplacementOrder(ctx context.Context, order types.ReplacementOrder) (types.ReplacementOrder, error)
	CancelPendingOrders(ctx context.Context, user string, participantSeqID int) (int, error)
	GetOrders(ctx context.Context, participantSeqID int) ([]types.ReplacementOrder, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateReplacementOrder(ctx context.Context, order types.ReplacementOrder) (types.ReplacementOrder, error) {
	o := DeviceOrder{
		OrderNumber:           order.OrderNumber,
		Kind:                  string(order.Kind),
		Status:                string(order.Status),
		ParticipantSeqID:      order.ParticipantSeqID,
		ParticipantGroupSeqID: order.ParticipantGroupSeqID,
		VehicleSeqID:          order.VehicleSeqID,
		VIN:                   order.VIN,
		Year:                  order.Year,
		Make:                  order.Make,
		Model:                 order.Model,
		CreatedBy:             order.CreatedBy,
		Details: lo.Map(order.Details, func(d types.OrderDetail, _ int) DeviceOrderDetail {
			return DeviceOrderDetail{
				ParticipantSeqID: d.ParticipantSeqID,
				VehicleSeqID:     d.VehicleSeqID,
				ProductCode:      d.ProductCode,
				Quantity:         d.Quantity,
			}
		}),
	}

	if o.Status == "" {
		o.Status = string(types.OrderStatusNew)
	}

	err := r.db.WithContext(ctx).Create(&o).Error
	if err != nil {
		return types.ReplacementOrder{}, fmt.Errorf("could not create replacement order for participant %d: %w", order.ParticipantSeqID, err)
	}

	return toReplacementOrder(o), nil
}

// CancelPendingOrders moves every New order of the participant to Cancelled and
// returns the number of orders affected.
func (r *orderRepository) CancelPendingOrders(ctx context.Context, user string, participantSeqID int) (int, error) {
	result := r.db.WithContext(ctx).
		Model(&DeviceOrder{}).
		Where("participant_seq_id = ? AND status = ?", participantSeqID, string(types.OrderStatusNew)).
		Updates(map[string]any{
			"status":     string(types.OrderStatusCancelled),
			"updated_by": user,
		})

	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

func (r *orderRepository) GetOrders(ctx context.Context, participantSeqID int) ([]types.ReplacementOrder, error) {
	var orders []DeviceOrder

	result := r.db.WithContext(ctx).
		Preload("Details").
		Where("participant_seq_id = ?", participantSeqID).
		Order("order_seq_id").
		Find(&orders)

	if result.Error != nil {
		return nil, result.Error
	}

	return lo.Map(orders, func(o DeviceOrder, _ int) types.ReplacementOrder {
		return toReplacementOrder(o)
	}), nil
}

func toReplacementOrder(o DeviceOrder) types.ReplacementOrder {
	return types.ReplacementOrder{
		OrderSeqID:            o.OrderSeqID,
		OrderNumber:           o.OrderNumber,
		Kind:                  types.OrderKind(o.Kind),
		Status:                types.OrderStatus(o.Status),
		ParticipantSeqID:      o.ParticipantSeqID,
		ParticipantGroupSeqID: o.ParticipantGroupSeqID,
		VehicleSeqID:          o.VehicleSeqID,
		VIN:                   o.VIN,
		Year:                  o.Year,
		Make:                  o.Make,
		Model:                 o.Model,
		CreatedBy:             o.CreatedBy,
		Details: lo.Map(o.Details, func(d DeviceOrderDetail, _ int) types.OrderDetail {
			return types.OrderDetail{
				OrderDetailSeqID: d.OrderDetailSeqID,
				ParticipantSeqID: d.ParticipantSeqID,
				VehicleSeqID:     d.VehicleSeqID,
				ProductCode:      d.ProductCode,
				Quantity:         d.Quantity,
			}
		}),
	}
}

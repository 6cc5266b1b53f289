package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo menjaga urutan status:
// pending → processing → shipped → delivered, cancel hanya dari
// pending/processing. Status sama selalu boleh (update tanpa ganti status).
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order soft-delete pakai flag active, bukan deleted_at
type Order struct {
	BaseNoDelete
	UserID          uuid.UUID       `db:"user_id"`
	FullName        string          `db:"fullname"`
	Email           string          `db:"email"`
	PhoneNumber     string          `db:"phone_number"`
	Address         string          `db:"address"`
	Note            string          `db:"note"`
	OrderDate       time.Time       `db:"order_date"`
	Status          OrderStatus     `db:"status"`
	TotalMoney      decimal.Decimal `db:"total_money"`
	ShippingMethod  string          `db:"shipping_method"`
	ShippingAddress string          `db:"shipping_address"`
	ShippingDate    time.Time       `db:"shipping_date"`
	TrackingNumber  string          `db:"tracking_number"`
	PaymentMethod   string          `db:"payment_method"`
	Active          bool            `db:"active"`
}

package request

import (
	"github.com/shopspring/decimal"
)

type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Color     string `json:"color" validate:"max=50"`
}

type CreateOrderRequest struct {
	UserID          string            `json:"user_id" validate:"required,uuid"`
	FullName        string            `json:"fullname" validate:"required,max=100"`
	Email           string            `json:"email" validate:"omitempty,email"`
	PhoneNumber     string            `json:"phone_number" validate:"required,min=8,max=15"`
	Address         string            `json:"address" validate:"required,max=200"`
	Note            string            `json:"note" validate:"max=300"`
	TotalMoney      decimal.Decimal   `json:"total_money"`
	ShippingMethod  string            `json:"shipping_method" validate:"max=100"`
	ShippingAddress string            `json:"shipping_address" validate:"max=200"`
	ShippingDate    string            `json:"shipping_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod   string            `json:"payment_method" validate:"max=100"`
	CartItems       []CartItemRequest `json:"cart_items" validate:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	UserID          string          `json:"user_id" validate:"required,uuid"`
	FullName        string          `json:"fullname" validate:"required,max=100"`
	Email           string          `json:"email" validate:"omitempty,email"`
	PhoneNumber     string          `json:"phone_number" validate:"required,min=8,max=15"`
	Address         string          `json:"address" validate:"required,max=200"`
	Note            string          `json:"note" validate:"max=300"`
	Status          string          `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	TotalMoney      decimal.Decimal `json:"total_money"`
	ShippingMethod  string          `json:"shipping_method" validate:"max=100"`
	ShippingAddress string          `json:"shipping_address" validate:"max=200"`
	ShippingDate    string          `json:"shipping_date" validate:"omitempty,datetime=2006-01-02"`
	TrackingNumber  string          `json:"tracking_number" validate:"max=100"`
	PaymentMethod   string          `json:"payment_method" validate:"max=100"`
}

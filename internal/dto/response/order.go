package response

import (
	"time"

	"shop-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	FullName        string                `json:"fullname"`
	Email           string                `json:"email,omitempty"`
	PhoneNumber     string                `json:"phone_number"`
	Address         string                `json:"address"`
	Note            string                `json:"note,omitempty"`
	OrderDate       time.Time             `json:"order_date"`
	Status          entity.OrderStatus    `json:"status"`
	TotalMoney      decimal.Decimal       `json:"total_money"`
	ShippingMethod  string                `json:"shipping_method,omitempty"`
	ShippingAddress string                `json:"shipping_address,omitempty"`
	ShippingDate    time.Time             `json:"shipping_date"`
	TrackingNumber  string                `json:"tracking_number,omitempty"`
	PaymentMethod   string                `json:"payment_method,omitempty"`
	Active          bool                  `json:"active"`
	OrderDetails    []OrderDetailResponse `json:"order_details,omitempty"`
}

func OrderToResponse(order *entity.Order, details []*entity.OrderDetail) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		FullName:        order.FullName,
		Email:           order.Email,
		PhoneNumber:     order.PhoneNumber,
		Address:         order.Address,
		Note:            order.Note,
		OrderDate:       order.OrderDate,
		Status:          order.Status,
		TotalMoney:      order.TotalMoney,
		ShippingMethod:  order.ShippingMethod,
		ShippingAddress: order.ShippingAddress,
		ShippingDate:    order.ShippingDate,
		TrackingNumber:  order.TrackingNumber,
		PaymentMethod:   order.PaymentMethod,
		Active:          order.Active,
	}

	for _, detail := range details {
		resp.OrderDetails = append(resp.OrderDetails, OrderDetailToResponse(detail))
	}

	return resp
}

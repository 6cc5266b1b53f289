package response

import (
	"shop-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type OrderDetailResponse struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"order_id"`
	ProductID        string          `json:"product_id"`
	Price            decimal.Decimal `json:"price"`
	NumberOfProducts int             `json:"number_of_products"`
	TotalMoney       decimal.Decimal `json:"total_money"`
	Color            string          `json:"color,omitempty"`
}

func OrderDetailToResponse(detail *entity.OrderDetail) OrderDetailResponse {
	return OrderDetailResponse{
		ID:               detail.ID.String(),
		OrderID:          detail.OrderID.String(),
		ProductID:        detail.ProductID.String(),
		Price:            detail.Price,
		NumberOfProducts: detail.NumberOfProducts,
		TotalMoney:       detail.TotalMoney,
		Color:            detail.Color,
	}
}

package request

import (
	"github.com/shopspring/decimal"
)

type OrderDetailRequest struct {
	OrderID          string          `json:"order_id" validate:"required,uuid"`
	ProductID        string          `json:"product_id" validate:"required,uuid"`
	Price            decimal.Decimal `json:"price"`
	NumberOfProducts int             `json:"number_of_products" validate:"required,min=1"`
	TotalMoney       decimal.Decimal `json:"total_money"`
	Color            string          `json:"color" validate:"max=50"`
}

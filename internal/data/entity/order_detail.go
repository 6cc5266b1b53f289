package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDetail struct {
	BaseNoDelete
	OrderID          uuid.UUID       `db:"order_id"`
	ProductID        uuid.UUID       `db:"product_id"`
	Price            decimal.Decimal `db:"price"`
	NumberOfProducts int             `db:"number_of_products"`
	TotalMoney       decimal.Decimal `db:"total_money"`
	Color            string          `db:"color"`
}

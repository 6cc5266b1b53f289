package request

import (
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=200"`
	Price       decimal.Decimal `json:"price"`
	Thumbnail   string          `json:"thumbnail" validate:"max=300"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
}

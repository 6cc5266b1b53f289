package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	Base
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Thumbnail   string          `db:"thumbnail"`
	Description string          `db:"description"`
	CategoryID  uuid.UUID       `db:"category_id"`
}

package response

import (
	"time"

	"shop-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Price:       product.Price,
		Thumbnail:   product.Thumbnail,
		Description: product.Description,
		CategoryID:  product.CategoryID.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

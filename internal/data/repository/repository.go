package repository

import (
	"shop-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Role        RoleRepository
	Category    CategoryRepository
	Product     ProductRepository
	Order       OrderRepository
	OrderDetail OrderDetailRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Role:        NewRoleRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Product:     NewProductRepository(db, log),
		Order:       NewOrderRepository(db, log),
		OrderDetail: NewOrderDetailRepository(db, log),
	}
}

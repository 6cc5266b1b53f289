package usecase

import (
	"shop-api/internal/data/repository"
	"shop-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Category    CategoryService
	Product     ProductService
	Order       OrderService
	OrderDetail OrderDetailService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo, log),
		Category:    NewCategoryService(repo, log),
		Product:     NewProductService(repo, log),
		Order:       NewOrderService(repo, log),
		OrderDetail: NewOrderDetailService(repo, log),
	}
}

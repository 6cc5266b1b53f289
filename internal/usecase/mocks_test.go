package usecase

import (
	"context"

	"shop-api/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	args := m.Called(ctx, phoneNumber)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*entity.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if r := args.Get(0); r != nil {
		return r.(*entity.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) FindAll(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, keyword string, categoryID *uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, keyword, categoryID, limit, offset)
	if p := args.Get(0); p != nil {
		return p.([]*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) CountAll(ctx context.Context, keyword string, categoryID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, keyword, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateWithDetails(ctx context.Context, order *entity.Order, details []*entity.OrderDetail) error {
	args := m.Called(ctx, order, details)
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if o := args.Get(0); o != nil {
		return o.([]*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, keyword string, limit, offset int) ([]*entity.Order, error) {
	args := m.Called(ctx, keyword, limit, offset)
	if o := args.Get(0); o != nil {
		return o.([]*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) CountAll(ctx context.Context, keyword string) (int64, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrderDetailRepo struct {
	mock.Mock
}

func (m *mockOrderDetailRepo) Create(ctx context.Context, detail *entity.OrderDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *mockOrderDetailRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*entity.OrderDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderDetailRepo) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	if d := args.Get(0); d != nil {
		return d.([]*entity.OrderDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderDetailRepo) Update(ctx context.Context, detail *entity.OrderDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *mockOrderDetailRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

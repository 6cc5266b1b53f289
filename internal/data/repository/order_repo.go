package repository

import (
	"context"
	"fmt"

	"shop-api/internal/data/entity"
	"shop-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateWithDetails menulis order + line items dalam satu transaksi
	CreateWithDetails(ctx context.Context, order *entity.Order, details []*entity.OrderDetail) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindAll(ctx context.Context, keyword string, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context, keyword string) (int64, error)
	Update(ctx context.Context, order *entity.Order) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderInsertQuery = `
	INSERT INTO orders (id, user_id, fullname, email, phone_number, address,
	                    note, order_date, status, total_money, shipping_method,
	                    shipping_address, shipping_date, tracking_number,
	                    payment_method, active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`

const orderDetailInsertQuery = `
	INSERT INTO order_details (id, order_id, product_id, price,
	                           number_of_products, total_money, color,
	                           created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *orderRepository) CreateWithDetails(ctx context.Context, order *entity.Order, details []*entity.OrderDetail) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, orderInsertQuery,
		order.ID,
		order.UserID,
		order.FullName,
		order.Email,
		order.PhoneNumber,
		order.Address,
		order.Note,
		order.OrderDate,
		order.Status,
		order.TotalMoney,
		order.ShippingMethod,
		order.ShippingAddress,
		order.ShippingDate,
		order.TrackingNumber,
		order.PaymentMethod,
		order.Active,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), err)
	}

	for _, detail := range details {
		_, err = tx.Exec(ctx, orderDetailInsertQuery,
			detail.ID,
			detail.OrderID,
			detail.ProductID,
			detail.Price,
			detail.NumberOfProducts,
			detail.TotalMoney,
			detail.Color,
			detail.CreatedAt,
			detail.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create order detail",
				zap.Error(err),
				zap.String("order_id", detail.OrderID.String()),
				zap.String("product_id", detail.ProductID.String()),
			)
			return fmt.Errorf("create order detail for product %s: %w",
				detail.ProductID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

const orderSelectColumns = `
	id, user_id, fullname, email, phone_number, address, note, order_date,
	status, total_money, shipping_method, shipping_address, shipping_date,
	tracking_number, payment_method, active, created_at, updated_at
`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.FullName,
		&order.Email,
		&order.PhoneNumber,
		&order.Address,
		&order.Note,
		&order.OrderDate,
		&order.Status,
		&order.TotalMoney,
		&order.ShippingMethod,
		&order.ShippingAddress,
		&order.ShippingDate,
		&order.TrackingNumber,
		&order.PaymentMethod,
		&order.Active,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByID mengembalikan order apa pun statusnya, termasuk yang sudah
// di-soft-delete (active = false). Filter active adalah urusan listing.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderSelectColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderSelectColumns + `
		FROM orders
		WHERE user_id = $1 AND active = TRUE
		ORDER BY order_date DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get orders by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *orderRepository) FindAll(ctx context.Context, keyword string, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderSelectColumns + `
		FROM orders
		WHERE active = TRUE
		  AND ($1 = '' OR fullname ILIKE '%' || $1 || '%'
		       OR phone_number ILIKE '%' || $1 || '%'
		       OR address ILIKE '%' || $1 || '%'
		       OR note ILIKE '%' || $1 || '%')
		ORDER BY order_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, keyword, limit, offset)
	if err != nil {
		r.log.Error("Failed to get all orders",
			zap.Error(err),
			zap.String("keyword", keyword),
		)
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountAll(ctx context.Context, keyword string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE active = TRUE
		  AND ($1 = '' OR fullname ILIKE '%' || $1 || '%'
		       OR phone_number ILIKE '%' || $1 || '%'
		       OR address ILIKE '%' || $1 || '%'
		       OR note ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, keyword).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET user_id = $2, fullname = $3, email = $4, phone_number = $5,
		    address = $6, note = $7, status = $8, total_money = $9,
		    shipping_method = $10, shipping_address = $11, shipping_date = $12,
		    tracking_number = $13, payment_method = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.UserID,
		order.FullName,
		order.Email,
		order.PhoneNumber,
		order.Address,
		order.Note,
		order.Status,
		order.TotalMoney,
		order.ShippingMethod,
		order.ShippingAddress,
		order.ShippingDate,
		order.TrackingNumber,
		order.PaymentMethod,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("update order %s: %w", order.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", order.ID.String())
	}

	return nil
}

// SoftDelete hanya flip flag active, row tidak pernah dihapus
func (r *orderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE orders SET active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("soft delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	r.log.Info("Order soft deleted", zap.String("order_id", id.String()))
	return nil
}

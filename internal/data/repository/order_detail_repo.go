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

type OrderDetailRepository interface {
	Create(ctx context.Context, detail *entity.OrderDetail) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error)
	Update(ctx context.Context, detail *entity.OrderDetail) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderDetailRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderDetailRepository(db database.PgxIface, log *zap.Logger) OrderDetailRepository {
	return &orderDetailRepository{
		db:  db,
		log: log.With(zap.String("repository", "order_detail")),
	}
}

func (r *orderDetailRepository) Create(ctx context.Context, detail *entity.OrderDetail) error {
	_, err := r.db.Exec(ctx, orderDetailInsertQuery,
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
		)
		return fmt.Errorf("create order detail for order %s: %w",
			detail.OrderID.String(), err)
	}

	return nil
}

const orderDetailSelectColumns = `
	id, order_id, product_id, price, number_of_products, total_money, color,
	created_at, updated_at
`

func scanOrderDetail(row pgx.Row) (*entity.OrderDetail, error) {
	var detail entity.OrderDetail
	err := row.Scan(
		&detail.ID,
		&detail.OrderID,
		&detail.ProductID,
		&detail.Price,
		&detail.NumberOfProducts,
		&detail.TotalMoney,
		&detail.Color,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *orderDetailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error) {
	query := `SELECT ` + orderDetailSelectColumns + ` FROM order_details WHERE id = $1`

	detail, err := scanOrderDetail(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order detail by ID",
			zap.Error(err),
			zap.String("order_detail_id", id.String()),
		)
		return nil, fmt.Errorf("find order detail by ID %s: %w", id.String(), err)
	}

	return detail, nil
}

func (r *orderDetailRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error) {
	query := `
		SELECT ` + orderDetailSelectColumns + `
		FROM order_details
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to get order details by order",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find order details by order %s: %w",
			orderID.String(), err)
	}
	defer rows.Close()

	var details []*entity.OrderDetail
	for rows.Next() {
		detail, err := scanOrderDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan order detail row", zap.Error(err))
			return nil, fmt.Errorf("scan order detail row: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order details rows: %w", err)
	}

	return details, nil
}

func (r *orderDetailRepository) Update(ctx context.Context, detail *entity.OrderDetail) error {
	query := `
		UPDATE order_details
		SET order_id = $2, product_id = $3, price = $4,
		    number_of_products = $5, total_money = $6, color = $7,
		    updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		detail.ID,
		detail.OrderID,
		detail.ProductID,
		detail.Price,
		detail.NumberOfProducts,
		detail.TotalMoney,
		detail.Color,
		detail.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update order detail",
			zap.Error(err),
			zap.String("order_detail_id", detail.ID.String()),
		)
		return fmt.Errorf("update order detail %s: %w", detail.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order detail %s not found", detail.ID.String())
	}

	return nil
}

func (r *orderDetailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM order_details WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order detail",
			zap.Error(err),
			zap.String("order_detail_id", id.String()),
		)
		return fmt.Errorf("delete order detail %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order detail %s not found", id.String())
	}

	return nil
}

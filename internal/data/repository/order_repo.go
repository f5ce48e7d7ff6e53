package repository

import (
	"context"
	"fmt"

	"solar-shop/internal/data/entity"
	"solar-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateWithItems inserts the order header and all its items in one
	// transaction. A failure on any insert rolls back the whole order, so a
	// persisted order always carries its full item set.
	CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	Update(ctx context.Context, order *entity.Order) error
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

func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	headerQuery := `
		INSERT INTO orders (user_id, status, total, shipping_address,
		                    payment_method, payment_status, shipping_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err = tx.QueryRow(ctx, headerQuery,
		order.UserID,
		order.Status,
		order.Total,
		order.ShippingAddress,
		order.PaymentMethod,
		order.PaymentStatus,
		order.ShippingStatus,
		order.CreatedAt,
	).Scan(&order.ID)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
		)
		return fmt.Errorf("create order for user %d: %w", order.UserID, err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for _, item := range items {
		item.OrderID = order.ID
		err := tx.QueryRow(ctx, itemQuery,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.Price,
		).Scan(&item.ID)

		if err != nil {
			r.log.Error("Failed to create order item",
				zap.Error(err),
				zap.Int64("order_id", order.ID),
				zap.Int64("product_id", item.ProductID),
			)
			return fmt.Errorf("create order item for product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
		)
		return fmt.Errorf("commit order %d: %w", order.ID, err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, user_id, status, total, shipping_address,
		       payment_method, payment_status, shipping_status, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.Total,
		&order.ShippingAddress,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.ShippingStatus,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, total, shipping_address,
		       payment_method, payment_status, shipping_status, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	return r.queryOrders(ctx, query)
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, total, shipping_address,
		       payment_method, payment_status, shipping_status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.queryOrders(ctx, query, userID)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.Total,
			&order.ShippingAddress,
			&order.PaymentMethod,
			&order.PaymentStatus,
			&order.ShippingStatus,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to get order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order items rows: %w", err)
	}

	return items, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, total = $3, shipping_address = $4,
		    payment_method = $5, payment_status = $6, shipping_status = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.Status,
		order.Total,
		order.ShippingAddress,
		order.PaymentMethod,
		order.PaymentStatus,
		order.ShippingStatus,
	)

	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
		)
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", order.ID)
	}

	return nil
}

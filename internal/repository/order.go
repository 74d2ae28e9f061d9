package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/massafina/massafina-api/internal/models"
)

type PostgresOrderRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewOrderRepository(db *sql.DB, logger *slog.Logger) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		db:     db,
		logger: logger.With("repository", "orders"),
	}
}

// Create inserts the order and all of its items in a single transaction, so
// a failure on any item leaves no partial order behind.
func (r *PostgresOrderRepository) Create(ctx context.Context, o *models.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (
			id, customer_id, total_price, delivery_fee,
			payment_method, delivery_method, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.ExecContext(ctx, orderQuery,
		o.ID,
		o.CustomerID,
		o.TotalPrice,
		o.DeliveryFee,
		o.PaymentMethod,
		o.DeliveryMethod,
		o.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert order", "customer_id", o.CustomerID, "error", err)
		return err
	}

	itemQuery := `
		INSERT INTO order_items (
			id, order_id, quantity, product_type, product_name,
			product_price_at_order, item_price, pizza_id, dessert_id, drink_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for i := range o.Items {
		item := &o.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}

		_, err = tx.ExecContext(ctx, itemQuery,
			item.ID,
			o.ID,
			item.Quantity,
			item.ProductType,
			item.ProductName,
			item.ProductPriceAtOrder,
			item.ItemPrice,
			item.PizzaID,
			item.SobremesaID,
			item.BebidaID,
		)
		if err != nil {
			r.logger.Error("failed to insert order item", "order_id", o.ID, "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.logger.Info("order created",
		"order_id", o.ID,
		"customer_id", o.CustomerID,
		"total", o.TotalPrice,
		"items", len(o.Items),
	)
	return nil
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	orderQuery := `
		SELECT id, customer_id, total_price, delivery_fee,
		       payment_method, delivery_method, created_at
		FROM orders
		WHERE id = $1
	`

	var o models.Order
	err := r.db.QueryRowContext(ctx, orderQuery, id).Scan(
		&o.ID,
		&o.CustomerID,
		&o.TotalPrice,
		&o.DeliveryFee,
		&o.PaymentMethod,
		&o.DeliveryMethod,
		&o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	itemQuery := `
		SELECT id, quantity, product_type, product_name,
		       product_price_at_order, item_price, pizza_id, dessert_id, drink_id
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	o.Items = make([]models.OrderItem, 0)
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.Quantity,
			&item.ProductType,
			&item.ProductName,
			&item.ProductPriceAtOrder,
			&item.ItemPrice,
			&item.PizzaID,
			&item.SobremesaID,
			&item.BebidaID,
		)
		if err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}

// Delete removes the order and its items. The items go first because of the
// order_id foreign key.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.logger.Info("order deleted", "order_id", id)
	return nil
}

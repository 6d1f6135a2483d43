package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"heladeria/internal/model"
)

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrInvalidTable   = errors.New("invalid table number")
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderDelivered = errors.New("order already delivered")
)

type OrderService struct {
	db *sql.DB
}

func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

// Confirm turns the session's cart into a persisted order and clears the
// cart, all in one transaction. The order total is the sum of
// price×quantity over the snapshotted lines.
func (s *OrderService) Confirm(ctx context.Context, sessionID string, tableNumber int) (*model.Order, error) {
	if tableNumber < 1 {
		return nil, ErrInvalidTable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT name, price, quantity
		FROM cart_items
		WHERE session_id = $1
		ORDER BY item_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}

	var lines []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.Name, &l.Price, &l.Quantity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		lines = append(lines, l)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}

	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	order := &model.Order{
		TableNumber: tableNumber,
		Items:       lines,
		Total:       total,
		Timestamp:   time.Now(),
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (table_number, items, total, ordered_at, delivered)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id
	`, tableNumber, itemsJSON, total, order.Timestamp).Scan(&order.ID)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, table_number, items, total, ordered_at, delivered
		FROM orders
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		var itemsJSON []byte
		if err := rows.Scan(&o.ID, &o.TableNumber, &itemsJSON, &o.Total, &o.Timestamp, &o.Delivered); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

// Deliver marks an undelivered order as delivered. The transition is
// one-way: a second attempt fails with ErrOrderDelivered.
func (s *OrderService) Deliver(ctx context.Context, orderID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var delivered bool
	err = tx.QueryRowContext(ctx, `SELECT delivered FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&delivered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("check order: %w", err)
	}
	if delivered {
		return ErrOrderDelivered
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET delivered = TRUE WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

package service

import (
	"context"
	"database/sql"
	"fmt"

	"heladeria/internal/model"
)

// CartService owns the per-session cart. Every mutation returns the full
// cart afterwards so clients can re-render from authoritative state.
type CartService struct {
	db *sql.DB
}

func NewCartService(db *sql.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) Get(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, name, price, quantity
		FROM cart_items
		WHERE session_id = $1
		ORDER BY item_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return items, nil
}

// Add merges the item into the cart: an existing line gets its quantity
// incremented, otherwise a new line with quantity 1 is created.
func (s *CartService) Add(ctx context.Context, sessionID string, item model.MenuItem) ([]model.CartItem, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (session_id, item_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (session_id, item_id)
		DO UPDATE SET quantity = cart_items.quantity + 1
	`, sessionID, item.ID, item.Name, item.Price)
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return s.Get(ctx, sessionID)
}

// Remove deletes the line with the given item id. Removing an absent id
// is a no-op; the unchanged cart comes back.
func (s *CartService) Remove(ctx context.Context, sessionID string, itemID int64) ([]model.CartItem, error) {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE session_id = $1 AND item_id = $2`,
		sessionID, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}

	return s.Get(ctx, sessionID)
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

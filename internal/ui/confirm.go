package ui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"heladeria/internal/client"
)

// Confirm submits the cart as an order for the table entered in the
// table-number field.
type Confirm struct {
	api   *client.Client
	cart  *CartView
	field Field
	alert Alerter
	log   *slog.Logger
}

func NewConfirm(api *client.Client, cart *CartView, field Field, alert Alerter, log *slog.Logger) *Confirm {
	return &Confirm{api: api, cart: cart, field: field, alert: alert, log: log}
}

// Submit validates the table number locally first; an invalid value
// aborts with an alert before any network call. On success the cart view
// goes to its empty state and the field is cleared; on failure both are
// left untouched.
func (c *Confirm) Submit(ctx context.Context) {
	raw := strings.TrimSpace(c.field.Value())
	table, err := strconv.Atoi(raw)
	if raw == "" || err != nil || table < 1 {
		c.alert.Alert("Por favor, ingrese un número de mesa válido.")
		return
	}

	msg, err := c.api.Confirm(ctx, table)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			c.alert.Alert(apiErr.Message)
			return
		}
		c.log.Error("failed to confirm order", "error", err)
		c.alert.Alert("Error al confirmar el pedido")
		return
	}

	c.alert.Alert(msg)
	c.cart.Clear()
	c.field.Clear()
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"heladeria/internal/client"
	"heladeria/internal/model"
)

// OrderBoard is the kitchen/staff view of confirmed orders. Undelivered
// orders carry a deliver action; delivered ones show a static label. The
// order total is displayed as reported by the server.
type OrderBoard struct {
	api    *client.Client
	region Region
	alert  Alerter
	log    *slog.Logger
}

func NewOrderBoard(api *client.Client, region Region, alert Alerter, log *slog.Logger) *OrderBoard {
	return &OrderBoard{api: api, region: region, alert: alert, log: log}
}

func (b *OrderBoard) Load(ctx context.Context) {
	orders, err := b.api.Orders(ctx)
	if err != nil {
		b.log.Error("failed to load orders", "error", err)
		b.region.Replace("Error al cargar los pedidos")
		return
	}

	if len(orders) == 0 {
		b.region.Replace("No hay pedidos confirmados.")
		return
	}

	var sb strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&sb, "Pedido #%d - Mesa %d - %s\n", o.ID, o.TableNumber, o.Timestamp.Format(model.TimeLayout))
		for _, line := range o.Items {
			fmt.Fprintf(&sb, "  %s x%d - $%.2f\n", line.Name, line.Quantity, line.Subtotal())
		}
		fmt.Fprintf(&sb, "  Total: $%.2f\n", o.Total)
		if o.Delivered {
			sb.WriteString("  Entregado\n")
		} else {
			fmt.Fprintf(&sb, "  [entregar %d]\n", o.ID)
		}
	}
	b.region.Replace(sb.String())
}

// Deliver marks the order delivered. The server's message is surfaced in
// both outcomes; the board reloads only on success.
func (b *OrderBoard) Deliver(ctx context.Context, orderID int64) {
	msg, err := b.api.Deliver(ctx, orderID)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			b.alert.Alert(apiErr.Message)
			return
		}
		b.log.Error("failed to mark order delivered", "order_id", orderID, "error", err)
		b.alert.Alert("Error al marcar el pedido como entregado")
		return
	}

	b.alert.Alert(msg)
	b.Load(ctx)
}

package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"heladeria/internal/client"
	"heladeria/internal/model"
)

// CartView renders the session cart. The grand total is always
// recomputed locally from the returned line items, never taken from a
// server-sent total.
type CartView struct {
	api    *client.Client
	region Region
	total  Region
	log    *slog.Logger
}

func NewCartView(api *client.Client, region, total Region, log *slog.Logger) *CartView {
	return &CartView{api: api, region: region, total: total, log: log}
}

// Load fetches and renders the current cart, e.g. on page load.
func (v *CartView) Load(ctx context.Context) {
	items, err := v.api.Cart(ctx)
	if err != nil {
		v.log.Error("failed to load cart", "error", err)
		return
	}
	v.render(items)
}

// Add round-trips the full item through the server and re-renders the
// cart from the response. Failures are logged only; the previous
// rendered state stays.
func (v *CartView) Add(ctx context.Context, item model.MenuItem) {
	items, err := v.api.AddToCart(ctx, item)
	if err != nil {
		v.log.Error("failed to add to cart", "item_id", item.ID, "error", err)
		return
	}
	v.render(items)
}

func (v *CartView) Remove(ctx context.Context, itemID int64) {
	items, err := v.api.RemoveFromCart(ctx, itemID)
	if err != nil {
		v.log.Error("failed to remove from cart", "item_id", itemID, "error", err)
		return
	}
	v.render(items)
}

// Clear puts the view into the empty-cart state without a server call,
// used after a successful order confirmation.
func (v *CartView) Clear() {
	v.render(nil)
}

func (v *CartView) render(items []model.CartItem) {
	if len(items) == 0 {
		v.region.Replace("El carrito está vacío")
		v.total.Replace("0.00")
		return
	}

	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s x%d - $%.2f  [quitar %d]\n", it.Name, it.Quantity, it.Subtotal(), it.ID)
	}
	v.region.Replace(b.String())
	v.total.Replace(fmt.Sprintf("%.2f", model.CartTotal(items)))
}

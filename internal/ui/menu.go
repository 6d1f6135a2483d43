package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"heladeria/internal/client"
	"heladeria/internal/model"
)

// MenuView lists the menu with a numbered add action per item. Add
// forwards the exact fetched item to the cart, so prices shown and
// prices sent cannot diverge.
type MenuView struct {
	api    *client.Client
	region Region
	cart   *CartView
	log    *slog.Logger
	items  []model.MenuItem
}

func NewMenuView(api *client.Client, region Region, cart *CartView, log *slog.Logger) *MenuView {
	return &MenuView{api: api, region: region, cart: cart, log: log}
}

// Load fetches the menu and fully replaces the region's content. On
// failure the region shows a localized error instead.
func (v *MenuView) Load(ctx context.Context) {
	items, err := v.api.Menu(ctx)
	if err != nil {
		v.log.Error("failed to load menu", "error", err)
		v.region.Replace("Error al cargar el menú")
		return
	}

	v.items = items
	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "[%d] %s - $%.2f\n", i+1, it.Name, it.Price)
	}
	v.region.Replace(b.String())
}

// Add puts the n-th listed item (1-based) into the cart.
func (v *MenuView) Add(ctx context.Context, n int) {
	if n < 1 || n > len(v.items) {
		v.log.Warn("unknown menu entry", "n", n)
		return
	}
	v.cart.Add(ctx, v.items[n-1])
}

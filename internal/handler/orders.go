package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"heladeria/internal/service"
)

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := orderSvc.List(r.Context())
		if err != nil {
			slog.Error("orders fetch failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

func DeliverOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusNotFound, "Pedido no encontrado")
			return
		}

		err = orderSvc.Deliver(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				writeMessage(w, http.StatusNotFound, "Pedido no encontrado")
			case errors.Is(err, service.ErrOrderDelivered):
				writeMessage(w, http.StatusConflict, fmt.Sprintf("Pedido #%d ya está entregado", id))
			default:
				slog.Error("order deliver failed", "order_id", id, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeMessage(w, http.StatusOK, fmt.Sprintf("Pedido #%d marcado como entregado", id))
	}
}

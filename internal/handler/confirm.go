package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"heladeria/internal/model"
	"heladeria/internal/mw"
	"heladeria/internal/service"
)

// OrderNotifier announces confirmed orders to an out-of-band channel.
type OrderNotifier interface {
	OrderConfirmed(order model.Order)
}

type confirmRequest struct {
	TableNumber *int `json:"table_number"`
}

func ConfirmHandler(orderSvc *service.OrderService, notifier OrderNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confirmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Número de mesa inválido")
			return
		}
		if req.TableNumber == nil || *req.TableNumber < 1 {
			writeMessage(w, http.StatusBadRequest, "Número de mesa inválido")
			return
		}

		order, err := orderSvc.Confirm(r.Context(), mw.SessionID(r.Context()), *req.TableNumber)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrCartEmpty):
				writeMessage(w, http.StatusBadRequest, "Carrito vacío")
			case errors.Is(err, service.ErrInvalidTable):
				writeMessage(w, http.StatusBadRequest, "Número de mesa inválido")
			default:
				slog.Error("order confirm failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if notifier != nil {
			go notifier.OrderConfirmed(*order)
		}

		writeMessage(w, http.StatusOK, fmt.Sprintf("Pedido confirmado! Total: $%.2f", order.Total))
	}
}

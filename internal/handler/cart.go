package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"heladeria/internal/model"
	"heladeria/internal/mw"
	"heladeria/internal/service"
)

// addCartRequest uses pointers so that absent fields are distinguishable
// from zero values; all three are required.
type addCartRequest struct {
	ID    *int64   `json:"id"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type removeCartRequest struct {
	ID *int64 `json:"id"`
}

func GetCartHandler(cartSvc *service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := cartSvc.Get(r.Context(), mw.SessionID(r.Context()))
		if err != nil {
			slog.Error("cart fetch failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func AddCartItemHandler(cartSvc *service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Item inválido"})
			return
		}
		if req.ID == nil || req.Name == nil || req.Price == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Item inválido"})
			return
		}

		item := model.MenuItem{ID: *req.ID, Name: *req.Name, Price: *req.Price}
		items, err := cartSvc.Add(r.Context(), mw.SessionID(r.Context()), item)
		if err != nil {
			slog.Error("cart add failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func RemoveCartItemHandler(cartSvc *service.CartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req removeCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ID no proporcionado"})
			return
		}

		items, err := cartSvc.Remove(r.Context(), mw.SessionID(r.Context()), *req.ID)
		if err != nil {
			slog.Error("cart remove failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"heladeria/internal/model"
)

func TestMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/menu" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"Helado","price":2.5}]`)
	}))
	defer srv.Close()

	items, err := New(srv.URL, nil).Menu(context.Background())
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Helado" || items[0].Price != 2.5 {
		t.Errorf("unexpected menu: %+v", items)
	}
}

func TestConfirmSendsIntegerTableNumber(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Pedido confirmado! Total: $5.00"}`)
	}))
	defer srv.Close()

	msg, err := New(srv.URL, nil).Confirm(context.Background(), 5)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if msg != "Pedido confirmado! Total: $5.00" {
		t.Errorf("message = %q", msg)
	}

	var sent map[string]json.RawMessage
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("request body not json: %s", body)
	}
	if string(sent["table_number"]) != "5" {
		t.Errorf("table_number sent as %s, want integer 5", sent["table_number"])
	}
}

func TestConfirmSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"Carrito vacío"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Confirm(context.Background(), 5)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Carrito vacío" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestDeliverHitsOrderPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/42/deliver" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Pedido #42 marcado como entregado"}`)
	}))
	defer srv.Close()

	msg, err := New(srv.URL, nil).Deliver(context.Background(), 42)
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if msg != "Pedido #42 marcado como entregado" {
		t.Errorf("message = %q", msg)
	}
}

func TestAddToCartSendsFullItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var item model.MenuItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if item.ID != 2 || item.Name != "Malteada" || item.Price != 4 {
			t.Errorf("unexpected item payload: %+v", item)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":2,"name":"Malteada","price":4,"quantity":1}]`)
	}))
	defer srv.Close()

	cart, err := New(srv.URL, nil).AddToCart(context.Background(), model.MenuItem{ID: 2, Name: "Malteada", Price: 4})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Errorf("unexpected cart: %+v", cart)
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := New(srv.URL, nil).Menu(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure must not be an APIError: %v", err)
	}
}

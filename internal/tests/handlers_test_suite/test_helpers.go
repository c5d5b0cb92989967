package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/cart-tracker/internal/cart"
	api "github.com/rogerio-castellano/cart-tracker/internal/http"
	"github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/cart-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/cart-tracker/internal/kv"
)

// newTestRouter builds a router over a fresh in-memory backend so each test
// starts from an empty cart. Rate-limit buckets are reset as well; the suite
// shares one client address across tests.
func newTestRouter() http.Handler {
	rl.CleanupAllVisitors()

	store := cart.NewStore(kv.NewInMemoryStore())
	if err := store.Load(context.Background()); err != nil {
		panic(fmt.Sprintf("error loading cart store: %v", err))
	}
	return api.NewRouter(store)
}

func addItem(r http.Handler, item handlers.AddToCartRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(item)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adjustItem(r http.Handler, id, op string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/items/%s/%s", id, op), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getCart(r http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(w *httptest.ResponseRecorder) (handlers.CartResult, error) {
	var resp handlers.CartResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

func decodeJSON(w *httptest.ResponseRecorder, out any) error {
	return json.NewDecoder(w.Body).Decode(out)
}
